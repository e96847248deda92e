package listview

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	name  string
	size  int64
	inUse bool
}

func rowSpec() Spec[row] {
	return Spec[row]{
		Columns: []Column[row]{
			{Key: "name", Title: "Name", Value: func(r row) Value { return Text(r.name) }},
			{Key: "size", Title: "Size", Value: func(r row) Value { return Number(r.size) }},
			{Key: "status", Title: "Status", Value: func(r row) Value { return StatusValue(r.inUse) }},
		},
		DefaultSort: Sort{Key: "name", Order: Ascending},
		Search:      func(r row) string { return r.name },
		Key:         func(r row) string { return r.name },
	}
}

func names(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.name)
	}
	return out
}

func TestDeriveSortScenario(t *testing.T) {
	items := []row{{name: "b", size: 200}, {name: "a", size: 100}}
	ctrl := NewController(rowSpec(), nil)

	assert.Equal(t, []string{"a", "b"}, names(ctrl.Visible(items)))

	require.True(t, ctrl.ToggleSort("name"))
	assert.Equal(t, Descending, ctrl.Sort().Order)
	assert.Equal(t, []string{"b", "a"}, names(ctrl.Visible(items)))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	items := []row{{name: "c"}, {name: "a"}, {name: "b"}}
	before := append([]row(nil), items...)

	_ = Derive(items, rowSpec(), Query{Sort: Sort{Key: "name"}})

	assert.Equal(t, before, items)
}

func TestDeriveFilterKeepsExactlyMatches(t *testing.T) {
	items := []row{
		{name: "Postgres-Data"},
		{name: "redis"},
		{name: "pgadmin"},
		{name: "cache"},
	}
	for _, term := range []string{"", "p", "G", "data", "zzz", "REDIS"} {
		t.Run(fmt.Sprintf("term %q", term), func(t *testing.T) {
			got := Derive(items, rowSpec(), Query{Search: term, Sort: Sort{Key: "name"}})
			var want []string
			for _, item := range items {
				if strings.Contains(strings.ToLower(item.name), strings.ToLower(term)) {
					want = append(want, item.name)
				}
			}
			assert.ElementsMatch(t, want, names(got))
		})
	}
}

func TestDeriveIgnoresSearchWithoutAccessor(t *testing.T) {
	spec := rowSpec()
	spec.Search = nil
	items := []row{{name: "a"}, {name: "b"}}

	got := Derive(items, spec, Query{Search: "zzz", Sort: Sort{Key: "name"}})

	assert.Len(t, got, 2)
}

func TestDeriveDescendingReversesAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := make([]row, 0, 50)
	for i := 0; i < 50; i++ {
		items = append(items, row{name: fmt.Sprintf("item-%03d", i), size: int64(i * 10)})
	}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	for _, key := range []string{"name", "size"} {
		t.Run(key, func(t *testing.T) {
			asc := names(Derive(items, rowSpec(), Query{Sort: Sort{Key: key, Order: Ascending}}))
			desc := names(Derive(items, rowSpec(), Query{Sort: Sort{Key: key, Order: Descending}}))
			for i := range asc {
				assert.Equal(t, asc[i], desc[len(desc)-1-i])
			}
		})
	}
}

func TestDeriveSortsNumbersNumerically(t *testing.T) {
	items := []row{{name: "big", size: 1000}, {name: "small", size: 9}, {name: "mid", size: 100}}

	got := Derive(items, rowSpec(), Query{Sort: Sort{Key: "size"}})

	assert.Equal(t, []string{"small", "mid", "big"}, names(got))
}

func TestDeriveStatusUsesDerivedLabel(t *testing.T) {
	items := []row{{name: "x", inUse: false}, {name: "y", inUse: true}}

	got := Derive(items, rowSpec(), Query{Sort: Sort{Key: "status"}})

	// "In use" sorts before "Unused".
	assert.Equal(t, []string{"y", "x"}, names(got))
}

func TestDeriveTiesKeepInputOrder(t *testing.T) {
	items := []row{{name: "first", size: 1}, {name: "second", size: 1}, {name: "third", size: 1}}

	got := Derive(items, rowSpec(), Query{Sort: Sort{Key: "size", Order: Descending}})

	assert.Equal(t, []string{"first", "second", "third"}, names(got))
}

func TestSortToggle(t *testing.T) {
	s := Sort{Key: "name", Order: Ascending}

	s = s.Toggle("name")
	assert.Equal(t, Sort{Key: "name", Order: Descending}, s)
	s = s.Toggle("name")
	assert.Equal(t, Sort{Key: "name", Order: Ascending}, s)
	s = s.Toggle("name").Toggle("size")
	assert.Equal(t, Sort{Key: "size", Order: Ascending}, s)
}

func TestCellsFormatsValues(t *testing.T) {
	spec := rowSpec()
	spec.Columns[0].Cell = func(r row) string { return strings.ToUpper(r.name) }

	assert.Equal(t, []string{"A", "42", "In use"}, Cells(spec, row{name: "a", size: 42, inUse: true}))
}

func TestParseOrder(t *testing.T) {
	order, ok := ParseOrder("DESC")
	assert.True(t, ok)
	assert.Equal(t, Descending, order)

	_, ok = ParseOrder("sideways")
	assert.False(t, ok)
}
