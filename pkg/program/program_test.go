package program_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incrementRules() []domain.Rule[string, int] {
	return []domain.Rule[string, int]{
		domain.NewRule("q0", 1, domain.Right, "q0", 0),
		domain.NewRule("q0", 0, domain.Stay, "halt", 1),
	}
}

func strategies() []program.Strategy {
	return []program.Strategy{program.StrategyHashed, program.StrategyLinear}
}

func TestProgram_FindTail(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.String(), func(t *testing.T) {
			p, err := program.New(program.Config[string, int]{Rules: incrementRules(), Strategy: s})
			require.NoError(t, err)
			assert.Equal(t, s, p.Strategy())
			assert.Equal(t, 2, p.Len())

			tail, ok := p.FindTail(domain.NewState("q0"), 1)
			require.True(t, ok)
			assert.Equal(t, domain.NewTail(domain.Right, "q0", 0), tail)

			_, ok = p.FindTail(domain.NewState("halt"), 1)
			assert.False(t, ok)
		})
	}
}

func TestProgram_LookupIsDeterministic(t *testing.T) {
	for _, s := range strategies() {
		p, err := program.New(program.Config[string, int]{Rules: incrementRules(), Strategy: s})
		require.NoError(t, err)

		for _, head := range []domain.Head[string, int]{
			domain.NewHead("q0", 0),
			domain.NewHead("q0", 1),
			domain.NewHead("q1", 0),
		} {
			first, firstOK := p.FindTail(head.State, head.Symbol)
			for i := 0; i < 10; i++ {
				again, ok := p.FindTail(head.State, head.Symbol)
				assert.Equal(t, firstOK, ok)
				assert.Equal(t, first, again)
			}
		}
	}
}

func TestProgram_RejectsDuplicateHead(t *testing.T) {
	rules := append(incrementRules(), domain.NewRule("q0", 1, domain.Left, "q1", 1))
	for _, s := range strategies() {
		t.Run(s.String(), func(t *testing.T) {
			_, err := program.New(program.Config[string, int]{Rules: rules, Strategy: s})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDuplicateHead)
			assert.Contains(t, err.Error(), "rule 2")
		})
	}
}

func TestProgram_UnknownStrategy(t *testing.T) {
	_, err := program.New(program.Config[string, int]{Strategy: program.Strategy(9)})
	assert.Error(t, err)
}

func TestProgram_FilterByState(t *testing.T) {
	rules := append(incrementRules(), domain.NewRule("q1", 0, domain.Left, "q0", 0))
	p, err := program.FromRules(rules...)
	require.NoError(t, err)

	got := p.FilterByState(domain.NewState("q0"))
	assert.Equal(t, incrementRules(), got)
	assert.Empty(t, p.FilterByState(domain.NewState("nowhere")))
}

func TestProgram_Introspection(t *testing.T) {
	initial := "q0"
	p, err := program.New(program.Config[string, int]{
		Initial: &initial,
		Rules:   incrementRules(),
		Halt:    []string{"halt", "halt"},
	})
	require.NoError(t, err)

	s, ok := p.Initial()
	require.True(t, ok)
	assert.Equal(t, "q0", s.Value())

	assert.Equal(t, []string{"q0", "halt"}, p.States())
	assert.Equal(t, []int{1, 0}, p.Alphabet())
	assert.Equal(t, []string{"halt"}, p.HaltStates())
	assert.True(t, p.IsHalt(domain.NewState("halt")))
	assert.False(t, p.IsHalt(domain.NewState("q0")))

	rebuilt, err := program.New(p.Config())
	require.NoError(t, err)
	assert.Equal(t, p.Rules(), rebuilt.Rules())
}

func TestProgram_NoInitial(t *testing.T) {
	p, err := program.FromRules(incrementRules()...)
	require.NoError(t, err)

	_, ok := p.Initial()
	assert.False(t, ok)
	assert.False(t, p.HasHaltStates())
}

func TestProgram_FromPairs(t *testing.T) {
	p, err := program.FromPairs(map[domain.Head[string, int]]domain.Tail[string, int]{
		domain.NewHead("q0", 1): domain.NewTail(domain.Right, "q0", 0),
		domain.NewHead("q0", 0): domain.NewTail(domain.Stay, "halt", 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	tail, ok := p.FindTail(domain.NewState("q0"), 0)
	require.True(t, ok)
	assert.Equal(t, domain.NewTail(domain.Stay, "halt", 1), tail)
}
