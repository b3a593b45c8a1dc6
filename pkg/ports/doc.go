/*
Package ports defines the driven ports (interfaces) of the Turing machine engine.

These interfaces decouple the execution loop from the storage strategy of the tape
and from the concrete head/tape coupling, so one Engine type runs over any of them.

# Key Interfaces

  - Tape: Positional symbol storage with a cursor and a tick counter.
  - Driver: A state plus a tape, able to read, write and move in one operation.
*/
package ports
