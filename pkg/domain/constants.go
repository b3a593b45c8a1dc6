package domain

// Field names of the flat rule-table dump. Decoders also accept the aliases.
const (
	KeyInitialState = "initial_state"
	KeyHaltStates   = "halt_states"
	KeyRules        = "rules"
	KeyHead         = "head"
	KeyTail         = "tail"
	KeyState        = "state"
	KeySymbol       = "symbol"
	KeyDirection    = "direction"
	KeyNextState    = "next_state"
	KeyWriteSymbol  = "write_symbol"
)
