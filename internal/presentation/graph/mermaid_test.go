package graph_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "State Shapes",
			src:  "initial q0\nhalt done\nq0 1 -> R mid 0\nmid 0 -> S done 1\n",
			contains: []string{
				"q0((\"q0\"))",
				"done(((\"done\")))",
				"mid[\"mid\"]",
				"class done halt;",
			},
		},
		{
			name: "Edge Labels",
			src:  "a 1 -> R a 0\na _ -> L b #\n",
			contains: []string{
				`a -- "1/0,R" --> a`,
				`a -- "_/#,L" --> b`,
			},
			excludes: []string{"classDef halt"},
		},
		{
			name: "ID Sanitization",
			src:  "q-0 x -> S end y\nq.1 x -> S q-0 x\n",
			contains: []string{
				"q_0[\"q-0\"]",
				"end_[\"end\"]",
				"q_1 -- \"x/x,S\" --> q_0",
			},
		},
		{
			name:    "Overlay",
			src:     "initial a\na 0 -> R b 0\nb 0 -> R a 0\n",
			overlay: &graph.GraphOverlay{VisitedStates: []string{"a", "b", "a"}, CurrentState: "b"},
			contains: []string{
				"class a visited;",
				"class b visited;",
				"class b current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := compiler.NewParser().Compile([]byte(tt.src))
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			got := graph.GenerateMermaid(p, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnwanted substring: %v", got, unwanted)
				}
			}
			if strings.Count(got, "class a visited;") > 1 {
				t.Errorf("visited states should be deduplicated:\n%v", got)
			}
		})
	}
}

func TestGenerateMermaid_Golden(t *testing.T) {
	p, err := compiler.NewParser().Compile([]byte(`
initial q0
halt done
q0 1 -> R q0 0
q0 0 -> S done 1
q0 _ -> S done 1
`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "increment", []byte(graph.GenerateMermaid(p, nil)))
	g.Assert(t, "increment_overlay", []byte(graph.GenerateMermaid(p, &graph.GraphOverlay{
		VisitedStates: []string{"q0"},
		CurrentState:  "done",
	})))
}
