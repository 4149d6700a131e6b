package player

import (
	"errors"
	"fmt"

	"evaluator/config"
)

var (
	ErrSessionsFull     = errors.New("session list is full")
	ErrNegativeDuration = errors.New("session duration must not be negative")
	ErrInvalidRecord    = errors.New("invalid player week")
)

// Level is the athlete classification
type Level int

const (
	Amateur Level = iota
	SemiPro
	Pro
)

func (l Level) String() string {
	switch l {
	case Pro:
		return "Pro"
	case SemiPro:
		return "Semi-Pro"
	case Amateur:
		return "Amateur"
	default:
		return "Unknown"
	}
}

// Sessions is a bounded list of training durations in hours
type Sessions struct {
	hours [config.MaxSessions]float64
	count int
}

// Add appends one session duration
func (s *Sessions) Add(hours float64) error {
	if s.count >= len(s.hours) {
		return ErrSessionsFull
	}
	if hours < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDuration, hours)
	}
	s.hours[s.count] = hours
	s.count++
	return nil
}

// Count returns the number of recorded sessions
func (s Sessions) Count() int {
	return s.count
}

// Hours returns a copy of the recorded durations in entry order
func (s Sessions) Hours() []float64 {
	return append([]float64(nil), s.hours[:s.count]...)
}

// Week is one athlete's weekly record. It is evaluated once by NewWeek and
// treated as read-only afterwards.
type Week struct {
	Name          string
	Age           int
	Sessions      Sessions
	TotalTraining float64
	AvgTraining   float64
	SleepHours    float64
	Level         Level
	Readiness     float64
	Advice        string
}

// SessionCount returns the number of sessions in the record
func (w *Week) SessionCount() int {
	return w.Sessions.Count()
}

// NewWeek validates the collected input, computes the training stats and
// evaluates the level exactly once.
func NewWeek(name string, age int, sessions Sessions, sleepHours float64) (*Week, error) {
	if age < config.MinAge {
		return nil, fmt.Errorf("%w: age %d below %d", ErrInvalidRecord, age, config.MinAge)
	}
	if n := sessions.Count(); n < config.MinSessions || n > config.MaxSessions {
		return nil, fmt.Errorf("%w: session count %d outside %d-%d",
			ErrInvalidRecord, n, config.MinSessions, config.MaxSessions)
	}
	if sleepHours < config.MinSleepHours {
		return nil, fmt.Errorf("%w: sleep hours %v below %v", ErrInvalidRecord, sleepHours, config.MinSleepHours)
	}

	total, avg := ComputeStats(sessions)
	eval := Evaluate(avg, sleepHours)

	return &Week{
		Name:          name,
		Age:           age,
		Sessions:      sessions,
		TotalTraining: total,
		AvgTraining:   avg,
		SleepHours:    sleepHours,
		Level:         eval.Level,
		Readiness:     eval.Readiness,
		Advice:        eval.Advice,
	}, nil
}
