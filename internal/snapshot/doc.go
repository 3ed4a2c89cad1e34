// Package snapshot writes named scalar attributes into simulation output
// containers.
//
// The [AttributeWriter] contract mirrors how descriptive metadata sits next
// to the numerical state in a snapshot file: an open group accepts typed,
// named attribute writes. Three sinks implement it:
//
//   - [MemGroup]: in-memory, for tests and inspection
//   - [File]: a JSON snapshot metadata header on disk
//   - [Catalog]: a SQLite catalog of attributes across many runs
//
// Attribute names are part of the output contract consumed downstream;
// exporters must not rewrite them. Writing the same name twice into one
// group fails with [ErrDuplicate]. Writers are not safe for concurrent
// use: a caller holding a group open serializes its exports.
package snapshot
