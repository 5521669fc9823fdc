// Package logging provides the process-wide staged logger of modcore.
//
// What:
//
//   - Level: fixed ordinal set DEBUG, INFO, WARNING, ERROR.
//   - Logger: a mutex-guarded state machine Unset → Active → Shutdown that
//     emits "[LEVEL] message" lines to its output writer.
//   - A package-level default Logger reachable through Init/Log/Shutdown, so
//     utility packages (mathops, textutil) can record events without holding
//     a Logger themselves.
//
// Why:
//
//   - One logger, reachable from everywhere, configured exactly once from an
//     appconf.Config. The Logger keeps its own copy of the Config, so the
//     configuration can never dangle underneath it.
//   - Emission is a no-op outside the Active stage and whenever the stored
//     Config has debug disabled; there is one on/off switch, no per-level
//     severity filtering.
//
// Errors:
//
//   - ErrInvalidLevel: Log was called with a Level outside the fixed set.
//
// Rendering goes through rs/zerolog's ConsoleWriter; the part layout is
// pinned so output is exactly "[LEVEL] message" per record.
package logging
