package config

// Training thresholds in hours
const (
	ProTrainHours  = 6.0
	SemiTrainHours = 3.0
	SleepMinOK     = 7.0
	SleepGoodMin   = 7.5
	SleepGoodMax   = 9.0
)

// Readiness score weights
const (
	TrainWeight = 10.0
	SleepWeight = 5.0
)

// Input bounds
const (
	MaxSessions     = 5
	MinSessions     = 1
	MinAge          = 1
	MinSessionHours = 0.0
	MinSleepHours   = 0.01
	MenuMinChoice   = 0
	MenuMaxChoice   = 3
)

// ConditioningShift is the number of conditioning minutes moved to technical
// work when sleep is short.
const ConditioningShift = 10.0

// Base plan minutes per level
const (
	ProTechnicalMins        = 50.0
	ProConditioningMins     = 30.0
	SemiProTechnicalMins    = 45.0
	SemiProConditioningMins = 25.0
	AmateurTechnicalMins    = 35.0
	AmateurConditioningMins = 20.0
)

// Rest days per fatigue level
const (
	RestDaysHigh     = 2
	RestDaysModerate = 1
	RestDaysLow      = 0
)

// Advice and recovery tips
const (
	AdviceBuildBase    = "Build base: 3 sessions + 8h sleep."
	AdviceImproveSleep = "Improve sleep routine."
	AdviceGoodBalance  = "Good balance."

	TipSleep    = "Aim for 8h sleep."
	TipFoamRoll = "Foam roll."
	TipStretch  = "Light stretching."
)

// GoodSleep reports whether sleep falls inside the inclusive Pro window
func GoodSleep(sleepHours float64) bool {
	return sleepHours >= SleepGoodMin && sleepHours <= SleepGoodMax
}
