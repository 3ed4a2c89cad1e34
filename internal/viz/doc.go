// Package viz provides the terminal inspector for resolved parameter
// records.
//
// The package implements a small interactive TUI using the Bubble Tea
// framework: a record list screen and an attribute table screen.
//
// # Key Bindings
//
//	↑↓/kj - Move between records
//	Enter - Open the attribute table of a record
//	M     - Toggle between the resolved and the mock view
//	Esc   - Back to the record list
//	Q     - Quit
package viz
