package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unused(r row) bool {
	return !r.inUse
}

func TestControllerDeleteLifecycle(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)
	target := row{name: "old"}

	require.NoError(t, ctrl.RequestDelete(target))
	assert.Equal(t, PhaseConfirmingDelete, ctrl.Phase())
	selected, ok := ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, target, selected)

	got, err := ctrl.ConfirmDelete()
	require.NoError(t, err)
	assert.Equal(t, target, got)
	assert.Equal(t, PhaseDeleting, ctrl.Phase())
	assert.True(t, ctrl.Phase().Busy())

	ctrl.Finish(true)
	assert.Equal(t, PhaseClosing, ctrl.Phase())
	assert.True(t, ctrl.Phase().DialogOpen())

	ctrl.Close()
	assert.Equal(t, PhaseIdle, ctrl.Phase())
	_, ok = ctrl.Selected()
	assert.False(t, ok)
}

func TestControllerFailureClosesImmediately(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)
	require.NoError(t, ctrl.RequestDelete(row{name: "old"}))
	_, err := ctrl.ConfirmDelete()
	require.NoError(t, err)

	ctrl.Finish(false)

	assert.Equal(t, PhaseIdle, ctrl.Phase())
}

func TestControllerCancelDelete(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)
	require.NoError(t, ctrl.RequestDelete(row{name: "old"}))

	ctrl.CancelDelete()

	assert.Equal(t, PhaseIdle, ctrl.Phase())
	_, err := ctrl.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestControllerRejectsInUse(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)

	err := ctrl.RequestDelete(row{name: "live", inUse: true})

	assert.ErrorIs(t, err, ErrNotDeletable)
	assert.Equal(t, PhaseIdle, ctrl.Phase())
	assert.False(t, ctrl.CanDelete(row{name: "live", inUse: true}))
}

func TestControllerWithoutDeletableRejectsEverything(t *testing.T) {
	ctrl := NewController(rowSpec(), nil)

	assert.ErrorIs(t, ctrl.RequestDelete(row{name: "x"}), ErrNotDeletable)
}

func TestControllerDisallowsOverlappingActions(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)
	require.NoError(t, ctrl.RequestDelete(row{name: "a"}))

	assert.ErrorIs(t, ctrl.RequestPrune(), ErrBusy)
	assert.ErrorIs(t, ctrl.RequestDelete(row{name: "b"}), ErrBusy)

	_, err := ctrl.ConfirmDelete()
	require.NoError(t, err)
	assert.ErrorIs(t, ctrl.RequestPrune(), ErrBusy)

	ctrl.Finish(true)
	assert.ErrorIs(t, ctrl.RequestPrune(), ErrBusy)

	ctrl.Close()
	require.NoError(t, ctrl.RequestPrune())
	assert.ErrorIs(t, ctrl.RequestDelete(row{name: "b"}), ErrBusy)
}

func TestControllerPruneLifecycle(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)

	require.NoError(t, ctrl.RequestPrune())
	assert.Equal(t, PhaseConfirmingPrune, ctrl.Phase())
	require.NoError(t, ctrl.ConfirmPrune())
	assert.Equal(t, PhasePruning, ctrl.Phase())
	assert.ErrorIs(t, ctrl.ConfirmPrune(), ErrNoPending)

	ctrl.Finish(false)
	assert.Equal(t, PhaseIdle, ctrl.Phase())

	require.NoError(t, ctrl.RequestPrune())
	ctrl.CancelPrune()
	assert.Equal(t, PhaseIdle, ctrl.Phase())
}

func TestControllerFinishOutsideActionIsNoop(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)
	require.NoError(t, ctrl.RequestPrune())

	ctrl.Finish(true)

	assert.Equal(t, PhaseConfirmingPrune, ctrl.Phase())
}

func TestControllerSortAndSearch(t *testing.T) {
	ctrl := NewController(rowSpec(), unused)

	assert.Equal(t, Sort{Key: "name", Order: Ascending}, ctrl.Sort())
	assert.False(t, ctrl.ToggleSort("missing"))
	assert.True(t, ctrl.ToggleSort("size"))
	assert.Equal(t, Sort{Key: "size", Order: Ascending}, ctrl.Sort())
	assert.True(t, ctrl.SetSort("name", Descending))

	assert.True(t, ctrl.SetSearch("A"))
	visible := ctrl.Visible([]row{{name: "alpha"}, {name: "beta"}, {name: "gamma"}})
	assert.Equal(t, []string{"gamma", "beta", "alpha"}, names(visible))

	spec := rowSpec()
	spec.Search = nil
	noSearch := NewController(spec, unused)
	assert.False(t, noSearch.SetSearch("x"))
	assert.Equal(t, "", noSearch.Search())
}
