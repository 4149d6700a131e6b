package prompt

import (
	"fmt"

	"evaluator/config"
	"evaluator/player"
)

// GatherWeek interactively collects the athlete basics, the training
// sessions and sleep, and returns the evaluated record.
func (r *Reader) GatherWeek() (*player.Week, error) {
	name, err := r.ReadString("Enter player's full name: ")
	if err != nil {
		return nil, err
	}

	age, err := r.ReadInt("Enter player's age: ", config.MinAge)
	if err != nil {
		return nil, err
	}

	sessions, err := r.gatherSessions()
	if err != nil {
		return nil, err
	}

	sleep, err := r.ReadFloat("Avg sleep hours per night: ", config.MinSleepHours)
	if err != nil {
		return nil, err
	}

	return player.NewWeek(name, age, sessions, sleep)
}

// gatherSessions asks for the session count and then each duration
func (r *Reader) gatherSessions() (player.Sessions, error) {
	var sessions player.Sessions

	count, err := r.ReadIntInRange(
		fmt.Sprintf("\nHow many training sessions did you have this week (%d-%d)? ", config.MinSessions, config.MaxSessions),
		fmt.Sprintf("Invalid. Enter a number between %d and %d: ", config.MinSessions, config.MaxSessions),
		config.MinSessions, config.MaxSessions,
	)
	if err != nil {
		return sessions, err
	}

	fmt.Fprint(r.out, "\nEnter training hours for each session:\n")
	for i := 1; i <= count; i++ {
		hours, err := r.ReadFloat(fmt.Sprintf("  Session %d: ", i), config.MinSessionHours)
		if err != nil {
			return sessions, err
		}
		if err := sessions.Add(hours); err != nil {
			return sessions, fmt.Errorf("failed to record session %d: %w", i, err)
		}
	}

	return sessions, nil
}
