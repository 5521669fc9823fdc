package circular

import "errors"

// Sentinel errors for arena lookups.
var (
	// ErrANotFound indicates an AID that is NoA, stale, or never issued.
	ErrANotFound = errors.New("circular: record A not found")
	// ErrBNotFound indicates a BID that is NoB, stale, or never issued.
	ErrBNotFound = errors.New("circular: record B not found")
)

// AID is an opaque handle to an A record inside an Arena.
type AID int

// BID is an opaque handle to a B record inside an Arena.
type BID int

// Zero handles meaning "no record"; fresh records start with these in
// their reference slots.
const (
	NoA AID = 0
	NoB BID = 0
)

// recordA is an A: one payload and one non-owning handle to a B.
type recordA struct {
	value int64
	ref   BID
}

// recordB is a B: one payload and one non-owning handle to an A.
type recordB struct {
	value int64
	ref   AID
}

// Arena owns every A and B record and issues the handles that address them.
// Handles are never reused within one Arena.
type Arena struct {
	nextA AID
	nextB BID
	as    map[AID]*recordA
	bs    map[BID]*recordB
}

// NewArena creates an empty Arena.
// Complexity: O(1)
func NewArena() *Arena {
	return &Arena{
		as: make(map[AID]*recordA),
		bs: make(map[BID]*recordB),
	}
}

// NewA creates an A record with the given payload and an empty reference
// slot, returning its handle.
func (ar *Arena) NewA(value int64) AID {
	ar.nextA++
	ar.as[ar.nextA] = &recordA{value: value, ref: NoB}

	return ar.nextA
}

// NewB creates a B record with the given payload and an empty reference
// slot, returning its handle.
func (ar *Arena) NewB(value int64) BID {
	ar.nextB++
	ar.bs[ar.nextB] = &recordB{value: value, ref: NoA}

	return ar.nextB
}

// ProcessA doubles the payload of the addressed A record.
// A stale or NoA handle is a no-op.
func (ar *Arena) ProcessA(id AID) {
	if rec, ok := ar.as[id]; ok {
		rec.value *= 2
	}
}

// ProcessB adds 10 to the payload of the addressed B record.
// A stale or NoB handle is a no-op.
func (ar *Arena) ProcessB(id BID) {
	if rec, ok := ar.bs[id]; ok {
		rec.value += 10
	}
}

// ValueA returns the payload of the addressed A record.
func (ar *Arena) ValueA(id AID) (int64, error) {
	rec, ok := ar.as[id]
	if !ok {
		return 0, ErrANotFound
	}

	return rec.value, nil
}

// ValueB returns the payload of the addressed B record.
func (ar *Arena) ValueB(id BID) (int64, error) {
	rec, ok := ar.bs[id]
	if !ok {
		return 0, ErrBNotFound
	}

	return rec.value, nil
}

// LinkAToB stores b in the reference slot of the A record addressed by a.
// Only a must resolve; b is stored as-is, stale or not, and may later be
// cleared by linking NoB.
func (ar *Arena) LinkAToB(a AID, b BID) error {
	rec, ok := ar.as[a]
	if !ok {
		return ErrANotFound
	}
	rec.ref = b

	return nil
}

// LinkBToA stores a in the reference slot of the B record addressed by b.
// Only b must resolve; a is stored as-is, stale or not, and may later be
// cleared by linking NoA.
func (ar *Arena) LinkBToA(b BID, a AID) error {
	rec, ok := ar.bs[b]
	if !ok {
		return ErrBNotFound
	}
	rec.ref = a

	return nil
}

// RefOfA returns the BID stored in the reference slot of the addressed A
// record; NoB when the slot is empty.
func (ar *Arena) RefOfA(a AID) (BID, error) {
	rec, ok := ar.as[a]
	if !ok {
		return NoB, ErrANotFound
	}

	return rec.ref, nil
}

// RefOfB returns the AID stored in the reference slot of the addressed B
// record; NoA when the slot is empty.
func (ar *Arena) RefOfB(b BID) (AID, error) {
	rec, ok := ar.bs[b]
	if !ok {
		return NoA, ErrBNotFound
	}

	return rec.ref, nil
}

// DestroyA removes the addressed A record. Destroying a stale or NoA handle
// is a no-op, and handles held by B records are left untouched — they
// simply stop resolving.
func (ar *Arena) DestroyA(id AID) {
	delete(ar.as, id)
}

// DestroyB removes the addressed B record. Destroying a stale or NoB handle
// is a no-op, and handles held by A records are left untouched — they
// simply stop resolving.
func (ar *Arena) DestroyB(id BID) {
	delete(ar.bs, id)
}

// LenA returns the number of live A records.
func (ar *Arena) LenA() int { return len(ar.as) }

// LenB returns the number of live B records.
func (ar *Arena) LenB() int { return len(ar.bs) }
