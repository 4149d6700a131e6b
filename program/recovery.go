package program

import "evaluator/config"

// Fatigue is the recovery need for the week
type Fatigue string

const (
	FatigueLow      Fatigue = "Low"
	FatigueModerate Fatigue = "Moderate"
	FatigueHigh     Fatigue = "High"
)

// Recovery holds the recovery recommendation
type Recovery struct {
	Fatigue  Fatigue
	RestDays int
	Tip      string
}

// AdviseRecovery derives fatigue, rest days and a tip from sleep and total
// (not average) training. The fatigue and tip chains are evaluated separately
// and in this order.
func AdviseRecovery(sleepHours, totalTraining float64) Recovery {
	fatigue := FatigueLow
	if sleepHours < config.SleepMinOK {
		fatigue = FatigueHigh
	} else if totalTraining >= config.ProTrainHours || totalTraining < config.SemiTrainHours {
		fatigue = FatigueModerate
	}

	var tip string
	if sleepHours < config.SleepMinOK {
		tip = config.TipSleep
	} else if totalTraining >= config.ProTrainHours {
		tip = config.TipFoamRoll
	} else {
		tip = config.TipStretch
	}

	return Recovery{
		Fatigue:  fatigue,
		RestDays: restDays(fatigue),
		Tip:      tip,
	}
}

func restDays(f Fatigue) int {
	switch f {
	case FatigueHigh:
		return config.RestDaysHigh
	case FatigueModerate:
		return config.RestDaysModerate
	default:
		return config.RestDaysLow
	}
}
