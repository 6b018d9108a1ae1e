package runner

import (
	"context"
	"strings"
	"testing"

	"github.com/BlockstreamResearch/simplicity-webide/internal/errors"
	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/logging"
)

func newRunner(bus *event.Bus) *CheckRunner {
	return NewCheckRunner(bus, logging.NopLogger())
}

func TestRun_ValidProgram(t *testing.T) {
	r := newRunner(event.NewBus())

	result, err := r.Run(context.Background(), "fn main() {\n    jet::verify(true)\n}")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Success {
		t.Errorf("expected success, got error output %q", result.Err)
	}
	if !strings.Contains(result.Debug, "checked 3 lines") {
		t.Errorf("debug output should report the line count, got %q", result.Debug)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{"empty program", "   \n  ", "program is empty"},
		{"unclosed bracket", "fn main() {", "unclosed '{'"},
		{"unexpected closer", "}", "line 1: unexpected '}'"},
		{"mismatched pair", "fn main() {\n  )\n}", "line 2: expected '}', found ')'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(event.NewBus())

			result, err := r.Run(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if result.Success {
				t.Fatal("expected a failed run")
			}
			if result.Err != tt.wantErr {
				t.Errorf("Err = %q, want %q", result.Err, tt.wantErr)
			}
		})
	}
}

func TestRun_PublishesLifecycleEvents(t *testing.T) {
	bus := event.NewBus()
	r := newRunner(bus)

	var types []string
	bus.SubscribeAll(func(e event.Event) { types = append(types, e.EventType()) })

	result, err := r.Run(context.Background(), "ok")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(types) != 2 || types[0] != event.TypeRunStarted || types[1] != event.TypeRunFinished {
		t.Fatalf("expected started then finished events, got %v", types)
	}
	if !result.Success {
		t.Errorf("expected success, got %q", result.Err)
	}
}

func TestRun_FinishedEventCarriesOutcome(t *testing.T) {
	bus := event.NewBus()
	r := newRunner(bus)

	var finished event.RunFinishedEvent
	bus.Subscribe(event.TypeRunFinished, func(e event.Event) {
		finished = e.(event.RunFinishedEvent)
	})

	if _, err := r.Run(context.Background(), "("); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if finished.Success {
		t.Error("finished event should report failure")
	}
	if finished.Err == "" {
		t.Error("finished event should carry the error output")
	}
}

func TestRun_CanceledContext(t *testing.T) {
	r := newRunner(event.NewBus())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "ok")
	if !errors.Is(err, errors.ErrRunCanceled) {
		t.Errorf("expected ErrRunCanceled, got %v", err)
	}
}
