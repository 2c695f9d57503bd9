// Package controls keeps paired range and number controls consistent with
// a params.Store.
//
// Every numeric field gets one [Pair]: a range control clamped to its
// [Range] bounds and a number control that accepts typed text. Edits go
// through the pair, are validated, and only then reach the store. A
// rejected number edit reverts silently to the last valid value.
package controls
