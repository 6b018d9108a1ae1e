// Package runner executes the program currently held in the editor when a
// run is requested. The real compile-and-execute pipeline lives outside this
// repository; the check runner stands in for it by validating program text
// and reporting structured output, so the host wiring (events, output panes,
// success indicator) is exercised end to end.
package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/BlockstreamResearch/simplicity-webide/internal/errors"
	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/logging"
)

// Result is the outcome of one program run.
type Result struct {
	Success bool   // Whether the run succeeded
	Debug   string // Debug output collected during the run
	Err     string // Error output; empty on success
}

// Runner executes program text.
type Runner interface {
	// Run executes source and returns the outcome. Run reports failures
	// in the Result; the error return is reserved for context
	// cancellation and infrastructure faults.
	Run(ctx context.Context, source string) (Result, error)
}

// CheckRunner validates program text: it rejects empty programs and
// unbalanced brackets, and collects per-line debug output. Runs publish
// run.started and run.finished on the bus.
type CheckRunner struct {
	bus    *event.Bus
	logger *logging.Logger
}

// NewCheckRunner creates a CheckRunner publishing on the given bus.
func NewCheckRunner(bus *event.Bus, logger *logging.Logger) *CheckRunner {
	if bus == nil {
		panic("runner: event.Bus must not be nil")
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &CheckRunner{
		bus:    bus,
		logger: logger.WithComponent("runner"),
	}
}

// Run implements Runner.
func (r *CheckRunner) Run(ctx context.Context, source string) (Result, error) {
	r.bus.Publish(event.NewRunStartedEvent(source))

	if err := ctx.Err(); err != nil {
		return Result{}, errors.ErrRunCanceled
	}

	result := check(source)
	r.bus.Publish(event.NewRunFinishedEvent(result.Success, result.Debug, result.Err))
	r.logger.Info("run finished", "success", result.Success)
	return result, nil
}

// check performs the validation pass.
func check(source string) Result {
	if strings.TrimSpace(source) == "" {
		return Result{Err: errors.ErrEmptyProgram.Error()}
	}

	var debug []string
	var stack []rune
	line := 1
	for _, c := range source {
		switch c {
		case '\n':
			line++
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return Result{
					Debug: strings.Join(debug, "\n"),
					Err:   fmt.Sprintf("line %d: unexpected '%c'", line, c),
				}
			}
			open := stack[len(stack)-1]
			if closingFor(open) != c {
				return Result{
					Debug: strings.Join(debug, "\n"),
					Err:   fmt.Sprintf("line %d: expected '%c', found '%c'", line, closingFor(open), c),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return Result{
			Err: fmt.Sprintf("unclosed '%c'", stack[len(stack)-1]),
		}
	}

	lines := strings.Count(source, "\n") + 1
	debug = append(debug, fmt.Sprintf("checked %d lines", lines))
	return Result{Success: true, Debug: strings.Join(debug, "\n")}
}

// closingFor returns the closing bracket for an opening one.
func closingFor(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}
