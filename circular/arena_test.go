package circular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modcore/circular"
)

// TestProcess verifies the payload rules: ProcessA doubles, ProcessB adds 10.
func TestProcess(t *testing.T) {
	arena := circular.NewArena()

	a := arena.NewA(5)
	arena.ProcessA(a)
	va, err := arena.ValueA(a)
	require.NoError(t, err)
	require.Equal(t, int64(10), va)

	b := arena.NewB(5)
	arena.ProcessB(b)
	vb, err := arena.ValueB(b)
	require.NoError(t, err)
	require.Equal(t, int64(15), vb)
}

// TestProcess_NoHandle verifies that processing NoA/NoB or a stale handle is
// a quiet no-op, mirroring the nil-check of the original records.
func TestProcess_NoHandle(t *testing.T) {
	arena := circular.NewArena()
	arena.ProcessA(circular.NoA)
	arena.ProcessB(circular.NoB)

	a := arena.NewA(1)
	arena.DestroyA(a)
	arena.ProcessA(a)

	_, err := arena.ValueA(a)
	require.ErrorIs(t, err, circular.ErrANotFound)
}

// TestLink_Cycle builds the intended A→B→A cycle and verifies both slots,
// then destroys both records independently.
func TestLink_Cycle(t *testing.T) {
	arena := circular.NewArena()
	a := arena.NewA(5)
	b := arena.NewB(7)

	require.NoError(t, arena.LinkAToB(a, b))
	require.NoError(t, arena.LinkBToA(b, a))

	refB, err := arena.RefOfA(a)
	require.NoError(t, err)
	require.Equal(t, b, refB)

	refA, err := arena.RefOfB(b)
	require.NoError(t, err)
	require.Equal(t, a, refA)

	// The cycle must not block independent teardown in either order.
	arena.DestroyA(a)
	arena.DestroyB(b)
	require.Zero(t, arena.LenA())
	require.Zero(t, arena.LenB())
}

// TestLink_NoBackPointerMaintenance verifies that linking one direction
// leaves the other side's slot untouched.
func TestLink_NoBackPointerMaintenance(t *testing.T) {
	arena := circular.NewArena()
	a := arena.NewA(1)
	b := arena.NewB(2)

	require.NoError(t, arena.LinkAToB(a, b))

	refA, err := arena.RefOfB(b)
	require.NoError(t, err)
	require.Equal(t, circular.NoA, refA)
}

// TestLink_StaleTarget verifies the absence of referential integrity on the
// link target: storing a handle to a destroyed record succeeds, and the
// staleness only shows up when the slot is followed.
func TestLink_StaleTarget(t *testing.T) {
	arena := circular.NewArena()
	a := arena.NewA(1)
	b := arena.NewB(2)
	arena.DestroyB(b)

	require.NoError(t, arena.LinkAToB(a, b))

	refB, err := arena.RefOfA(a)
	require.NoError(t, err)
	require.Equal(t, b, refB)

	_, err = arena.ValueB(refB)
	require.ErrorIs(t, err, circular.ErrBNotFound)
}

// TestLink_MissingSource verifies that linking FROM a dead record fails.
func TestLink_MissingSource(t *testing.T) {
	arena := circular.NewArena()
	b := arena.NewB(2)

	require.ErrorIs(t, arena.LinkAToB(circular.AID(99), b), circular.ErrANotFound)
	require.ErrorIs(t, arena.LinkBToA(circular.BID(99), circular.NoA), circular.ErrBNotFound)
}

// TestDestroy_Idempotent verifies double destruction is harmless and that
// the surviving side keeps its (now stale) handle.
func TestDestroy_Idempotent(t *testing.T) {
	arena := circular.NewArena()
	a := arena.NewA(3)
	b := arena.NewB(4)
	require.NoError(t, arena.LinkBToA(b, a))

	arena.DestroyA(a)
	arena.DestroyA(a)
	require.Zero(t, arena.LenA())
	require.Equal(t, 1, arena.LenB())

	refA, err := arena.RefOfB(b)
	require.NoError(t, err)
	require.Equal(t, a, refA)
	_, err = arena.ValueA(refA)
	require.ErrorIs(t, err, circular.ErrANotFound)
}

// TestHandles_NeverReused locks the handle-allocation rule an Arena relies
// on: a destroyed handle must not come back for a new record.
func TestHandles_NeverReused(t *testing.T) {
	arena := circular.NewArena()
	first := arena.NewA(1)
	arena.DestroyA(first)
	second := arena.NewA(2)

	require.NotEqual(t, first, second)
	_, err := arena.ValueA(first)
	require.ErrorIs(t, err, circular.ErrANotFound)
}
