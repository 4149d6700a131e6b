package program

import (
	"errors"
	"fmt"

	"evaluator/config"
	"evaluator/player"
)

var ErrUnknownLevel = errors.New("unknown player level")

// Plan is the single overall session plan for the coming week
type Plan struct {
	Focus               string
	TechnicalMinutes    float64
	ConditioningMinutes float64
}

// BasePlan returns the unadjusted plan for a level
func BasePlan(level player.Level) (Plan, error) {
	switch level {
	case player.Pro:
		return Plan{
			Focus:               "High Tempo",
			TechnicalMinutes:    config.ProTechnicalMins,
			ConditioningMinutes: config.ProConditioningMins,
		}, nil
	case player.SemiPro:
		return Plan{
			Focus:               "Balanced",
			TechnicalMinutes:    config.SemiProTechnicalMins,
			ConditioningMinutes: config.SemiProConditioningMins,
		}, nil
	case player.Amateur:
		return Plan{
			Focus:               "Fundamentals",
			TechnicalMinutes:    config.AmateurTechnicalMins,
			ConditioningMinutes: config.AmateurConditioningMins,
		}, nil
	default:
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownLevel, int(level))
	}
}

// SelectPlan returns the plan for a level, moving conditioning time to
// technical work when sleep is short. Conditioning never goes negative.
func SelectPlan(level player.Level, sleepHours float64) (Plan, error) {
	plan, err := BasePlan(level)
	if err != nil {
		return Plan{}, err
	}

	if sleepHours < config.SleepMinOK && plan.ConditioningMinutes >= config.ConditioningShift {
		plan.TechnicalMinutes += config.ConditioningShift
		plan.ConditioningMinutes -= config.ConditioningShift
	}

	return plan, nil
}
