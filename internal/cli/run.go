package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/tape"
)

// DefaultBlank is the blank symbol when --blank is not given.
const DefaultBlank = "_"

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ProgramPath string
	Tape        string
	State       string // overrides the program's initial state
	Position    int
	Sparse      bool
	Blank       string
	BlankSet    bool // bounded tapes only grow through blanks when set
	MaxSteps    int
	Timeout     time.Duration
	Trace       bool
	JSON        bool
	Profile     termenv.Profile // the zero value is TrueColor; use termenv.Ascii for plain text
	Logger      *slog.Logger
}

// RunOutput is the JSON document printed by "run --json".
type RunOutput struct {
	turing.Result[string, string]
	Offset int    `json:"offset"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// Execute loads the program, runs it on the tape and prints the result to out.
// The run error, if any, is returned after the final tape is printed.
func Execute(ctx context.Context, opts RunOptions, out io.Writer) error {
	p, err := LoadProgram(opts.ProgramPath)
	if err != nil {
		return err
	}

	start := opts.State
	if start == "" {
		q, ok := p.Initial()
		if !ok {
			return fmt.Errorf("%w: pass --state", domain.ErrNoInitialState)
		}
		start = q.Value()
	}

	if opts.Blank == "" {
		opts.Blank = DefaultBlank
	}
	tp := newTape(opts)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m := turing.New(turing.NewDriver(start, tp),
		turing.WithLogger(logger.With("program", opts.ProgramPath)),
		turing.WithContext(ctx),
	)
	m.Load(p)

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	runner := &turing.Runner[string, string]{MaxSteps: opts.MaxSteps}
	if opts.Trace && !opts.JSON {
		fmt.Fprintf(out, "%6d %s  %s\n", 0, renderTape(tp, opts), start)
		runner.Trace = func(cycle int, _ domain.Head[string, string], m *turing.Machine[string, string]) {
			fmt.Fprintf(out, "%6d %s  %s\n", cycle, renderTape(tp, opts), m.Driver().State())
		}
	}

	res, runErr := runner.Run(ctx, m)

	if opts.JSON {
		doc := RunOutput{Result: res, Offset: offsetOf(tp)}
		if runErr != nil {
			doc.Error = runErr.Error()
			doc.Kind = domain.ErrorKind(runErr)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return runErr
	}

	fmt.Fprintln(out, renderTape(tp, opts))
	switch {
	case runErr == nil:
		printSystemMessage(out, "Halted in '%s' after %d cycles (position %d).", res.State, res.Cycles, res.Position)
	case errors.Is(runErr, domain.ErrExitWithoutHalting):
		printSystemMessage(out, "Stopped in '%s' after %d cycles without halting.", res.State, res.Cycles)
	default:
		printSystemMessage(out, "Failed in '%s' after %d cycles.", res.State, res.Cycles)
	}
	return runErr
}

func newTape(opts RunOptions) ports.Tape[string] {
	cells := ParseTape(opts.Tape)
	if opts.Sparse {
		t := tape.NewSparse(opts.Blank, cells...)
		t.Seek(opts.Position)
		return t
	}
	var t *tape.Bounded[string]
	if opts.BlankSet {
		t = tape.NewBoundedBlank(opts.Blank, cells...)
	} else {
		t = tape.NewBounded(cells...)
	}
	t.Seek(opts.Position)
	return t
}

func offsetOf(tp ports.Tape[string]) int {
	if sp, ok := tp.(*tape.Sparse[string]); ok {
		if lo, _, written := sp.Bounds(); written {
			return lo
		}
	}
	return 0
}

func renderTape(tp ports.Tape[string], opts RunOptions) string {
	return tui.RenderTape(tp.Cells(), tp.Position(), tui.TapeOptions{
		Profile: opts.Profile,
		Offset:  offsetOf(tp),
		Blank:   opts.Blank,
	})
}
