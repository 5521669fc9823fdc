// Package circular models two record kinds, A and B, that may refer to each
// other without either containing the other by value.
//
// What:
//
//   - Arena: an index-addressed store owning every A and B record.
//   - AID / BID: opaque handles into the Arena; the zero values NoA and NoB
//     mean "no record".
//   - Each A carries an int64 payload and one BID slot; each B carries an
//     int64 payload and one AID slot. A↔B cycles are expected and legal.
//
// Why:
//
//   - Mutual by-value containment is unrepresentable (the types would be
//     infinitely sized), and mutual ownership would leak. Handles into one
//     owning Arena break both problems: records reference each other by key
//     while the Arena alone controls lifetime.
//
// Rules of the house:
//
//   - Records are created and destroyed independently; destroying one side
//     never clears handles the other side stored. A handle can therefore go
//     stale: Process on a stale (or NoA/NoB) handle is a no-op, reads fail
//     with ErrANotFound / ErrBNotFound.
//   - Linking enforces no referential integrity beyond the record being
//     linked FROM existing at call time.
//
// An Arena is not safe for concurrent use; guard it externally if shared.
package circular
