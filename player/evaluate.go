package player

import "evaluator/config"

// Evaluation is the derived classification for a week
type Evaluation struct {
	Level     Level
	Readiness float64
	Advice    string
}

// ComputeStats returns the total and per-session average training time
func ComputeStats(s Sessions) (total, avg float64) {
	for _, h := range s.hours[:s.count] {
		total += h
	}
	if s.count > 0 {
		avg = total / float64(s.count)
	}
	return total, avg
}

// Readiness weights average training by 10 and sleep deviation from the
// 7 hour baseline by 5.
func Readiness(avgTraining, sleepHours float64) float64 {
	return avgTraining*config.TrainWeight - (config.SleepMinOK-sleepHours)*config.SleepWeight
}

// Classify returns the level for the given averages. Bounds are inclusive.
func Classify(avgTraining, sleepHours float64) Level {
	if avgTraining >= config.ProTrainHours && config.GoodSleep(sleepHours) {
		return Pro
	}
	if avgTraining >= config.SemiTrainHours && sleepHours >= config.SleepMinOK {
		return SemiPro
	}
	return Amateur
}

// Advise picks the advice string. It is evaluated independently of Classify
// and may disagree with the level at the boundaries.
func Advise(avgTraining, sleepHours float64) string {
	if sleepHours < config.SleepMinOK || avgTraining < config.SemiTrainHours {
		return config.AdviceBuildBase
	}
	if avgTraining >= config.ProTrainHours && !config.GoodSleep(sleepHours) {
		return config.AdviceImproveSleep
	}
	return config.AdviceGoodBalance
}

// Evaluate derives level, readiness and advice
func Evaluate(avgTraining, sleepHours float64) Evaluation {
	return Evaluation{
		Level:     Classify(avgTraining, sleepHours),
		Readiness: Readiness(avgTraining, sleepHours),
		Advice:    Advise(avgTraining, sleepHours),
	}
}
