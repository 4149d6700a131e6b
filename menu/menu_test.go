package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"evaluator/prompt"
)

type countingReporter struct {
	calls []string
	err   error
}

func (c *countingReporter) Level() error {
	c.calls = append(c.calls, "level")
	return c.err
}

func (c *countingReporter) Plan() error {
	c.calls = append(c.calls, "plan")
	return c.err
}

func (c *countingReporter) Recovery() error {
	c.calls = append(c.calls, "recovery")
	return c.err
}

func run(t *testing.T, input string, rep Reporter) (string, error) {
	t.Helper()
	var out bytes.Buffer
	reader := prompt.NewReader(strings.NewReader(input), &out)
	err := Run(reader, rep, &out, zap.NewNop())
	return out.String(), err
}

func TestRunDispatchesOnePerChoice(t *testing.T) {
	rep := &countingReporter{}
	out, err := run(t, "1\n2\n3\n2\n0\n", rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"level", "plan", "recovery", "plan"}
	if strings.Join(rep.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", rep.calls, want)
	}
	if n := strings.Count(out, "Enter choice: "); n != 5 {
		t.Errorf("menu shown %d times, want 5", n)
	}
	if !strings.HasSuffix(out, "\nExiting...\n") {
		t.Errorf("output does not end with exit message:\n%s", out)
	}
}

func TestRunInvalidChoiceKeepsWaiting(t *testing.T) {
	rep := &countingReporter{}
	out, err := run(t, "7\nx\n-1\n0\n", rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.calls) != 0 {
		t.Errorf("calls = %v, want none", rep.calls)
	}
	if n := strings.Count(out, "Invalid. Enter 0-3: "); n != 3 {
		t.Errorf("retry messages = %d, want 3", n)
	}
	if n := strings.Count(out, "Enter choice: "); n != 1 {
		t.Errorf("menu shown %d times, want 1", n)
	}
}

// TestRunIgnoresReportErrors verifies a failed report write neither stops the
// loop nor prints anything extra.
func TestRunIgnoresReportErrors(t *testing.T) {
	rep := &countingReporter{err: errors.New("disk full")}
	out, err := run(t, "1\n3\n0\n", rep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.calls) != 2 {
		t.Errorf("calls = %v, want 2", rep.calls)
	}
	if strings.Contains(out, "disk full") {
		t.Errorf("report error leaked to console:\n%s", out)
	}
}

func TestRunInputClosed(t *testing.T) {
	rep := &countingReporter{}
	if _, err := run(t, "1\n", rep); !errors.Is(err, prompt.ErrInputClosed) {
		t.Errorf("err = %v, want ErrInputClosed", err)
	}
	if len(rep.calls) != 1 {
		t.Errorf("calls = %v, want 1", rep.calls)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		choice int
		want   State
	}{
		{0, Quit},
		{1, ShowLevel},
		{2, ShowPlan},
		{3, ShowRecovery},
		{4, AwaitingChoice},
	}
	for _, tt := range tests {
		if got := Next(tt.choice); got != tt.want {
			t.Errorf("Next(%d) = %v, want %v", tt.choice, got, tt.want)
		}
	}
}

type scriptedChooser struct {
	choices []int
}

func (s *scriptedChooser) ReadIntInRange(_, _ string, _, _ int) (int, error) {
	if len(s.choices) == 0 {
		return 0, prompt.ErrInputClosed
	}
	choice := s.choices[0]
	s.choices = s.choices[1:]
	return choice, nil
}

// TestRunOutOfRangeChoiceDispatchesNothing verifies a choice outside the
// menu, even from a chooser that does not bound it, runs no report.
func TestRunOutOfRangeChoiceDispatchesNothing(t *testing.T) {
	rep := &countingReporter{}
	var out bytes.Buffer
	err := Run(&scriptedChooser{choices: []int{7, 2, 0}}, rep, &out, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(rep.calls, ",") != "plan" {
		t.Errorf("calls = %v, want [plan]", rep.calls)
	}
}
