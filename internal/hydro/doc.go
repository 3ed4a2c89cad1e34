// Package hydro holds the hydrodynamics parameter records and their
// shared lifecycle: resolve from a parameter file (or mock without
// one), report to the log, export to snapshot metadata.
//
// A record is initialized exactly once, by Resolve or by Mock, and is
// immutable afterwards. Report and Export are read-only; Export's only
// side effect is on the sink it is handed.
package hydro
