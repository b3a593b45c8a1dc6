/*
Package domain contains the core value types of the Turing machine simulator.

It defines the fundamental entities of the transition function, such as States,
Directions, Heads, Tails and Rules. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: An opaque wrapper around the value identifying a machine configuration.
  - Direction: Left, Right or Stay; the position delta applied after a write.
  - Head: "Where the machine is" (state + symbol, or state + position for a Driver).
  - Tail: "What to do next" (direction + next state + symbol to write).
  - Rule: One entry of the transition function, mapping a Head to a Tail.
*/
package domain
