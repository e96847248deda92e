package listview

import (
	"strings"
)

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

func (o Order) Flip() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

func ParseOrder(value string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	default:
		return Ascending, false
	}
}

// Sort is the active column key and its direction.
type Sort struct {
	Key   string
	Order Order
}

// Toggle flips the direction when key is already active and otherwise makes
// key active in ascending order.
func (s Sort) Toggle(key string) Sort {
	if s.Key == key {
		return Sort{Key: key, Order: s.Order.Flip()}
	}
	return Sort{Key: key, Order: Ascending}
}

// Value is what a column accessor yields for comparison.
type Value struct {
	text    string
	num     int64
	numeric bool
}

func Text(value string) Value {
	return Value{text: value}
}

func Number(value int64) Value {
	return Value{num: value, numeric: true}
}

// Compare orders numbers before text so a malformed column still sorts
// deterministically.
func Compare(a, b Value) int {
	switch {
	case a.numeric && b.numeric:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	default:
		return strings.Compare(a.text, b.text)
	}
}

// StatusValue is the derived value of every "status" column.
func StatusValue(inUse bool) Value {
	return Text(StatusLabel(inUse))
}

func StatusLabel(inUse bool) string {
	if inUse {
		return "In use"
	}
	return "Unused"
}
