/*
Package program holds the transition function of a machine: a rule table plus an
optional initial state and set of halting states.

A Program is built once from a plain Config and is read-only afterwards. Lookup is
delegated to a Table strategy: Linear scans rules in order, Hashed indexes them by
head. Both reject a second rule for an existing head, so lookup by (state, symbol)
returns at most one Tail.

Programs can be loaded from and exported to flat JSON or YAML dumps:

	{
	  "initial_state": "q0",
	  "halt_states": ["halt"],
	  "rules": [
	    { "head": { "state": "q0", "symbol": 1 },
	      "tail": { "direction": "right", "next_state": "q0", "write_symbol": 0 } }
	  ]
	}

Older dumps may spell next_state as "state" and write_symbol as "symbol"; both
are accepted on load. Exports always use the canonical names.
*/
package program
