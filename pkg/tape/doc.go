/*
Package tape provides the two storage strategies of a machine's tape.

  - Bounded: a contiguous slice that only grows at its ends (append / prepend).
  - Sparse: a logically infinite map-backed store where unwritten cells read as a blank.

Both implement ports.Tape and keep a tick counter that advances on every Shift,
including Stay, since a non-moving step still consumes one unit of machine time.
*/
package tape
