// Package modcore is a small instructional module demonstrating clean
// modular program structure in Go: arithmetic utilities, a calculator built
// atop them, string/array helpers, a staged process logger, an immutable
// application configuration, and a deliberately mutual pair of record types.
//
// 🚀 What is modcore?
//
//	A compact teaching codebase that brings together:
//		• appconf  — immutable application configuration (name, version, debug switch)
//		• logging  — one process-wide staged logger emitting "[LEVEL] message" lines
//		• mathops  — arithmetic primitives with explicit error contracts
//		• calc     — rectangle geometry and range sums composed on mathops
//		• textutil — string helpers and array extrema
//		• circular — arena-addressed records that may reference each other in a cycle
//
// ✨ Why study it?
//
//   - Lifetime discipline – the logger snapshots its Config by value, so a
//     registered configuration can never dangle underneath it
//   - Honest failures – division by zero, empty arrays, and out-of-range log
//     levels fail with sentinel errors instead of returning a misleading 0
//   - Cycles without ownership knots – circular.Arena shows how two record
//     kinds point at each other through handles while one store owns them all
//
// Quick taste:
//
//	cfg := appconf.New(appconf.WithDebug(true))
//	logging.Init(cfg)          // [INFO] Logger initialized
//	sum := mathops.Add(10, 20) // [DEBUG] Addition operation
//	_ = sum
//	logging.Shutdown()         // [INFO] Logger shutting down
//
// The cmd/modcore command strings the packages together into runnable
// walkthrough sequences.
package modcore
