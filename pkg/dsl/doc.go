/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing rule tables.

It allows developers to define Turing machines using a type-safe, fluent builder pattern
instead of relying on external YAML, JSON or .tm files. This is particularly useful for
generated machines, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	b := dsl.New[string, int]().Initial("q0").Halt("done")

	b.State("q0").
		On(1).Write(0).Right().Go("q0").
		On(0).Write(1).Go("done")

	p, err := b.Build()
	// ... pass p to turing.FromProgram(...)

A rule that never calls Write keeps the symbol it read; one that never
picks a direction stays in place.
*/
package dsl
