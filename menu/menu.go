package menu

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"evaluator/config"
)

// State is a menu loop state
type State int

const (
	AwaitingChoice State = iota
	ShowLevel
	ShowPlan
	ShowRecovery
	Quit
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting_choice"
	case ShowLevel:
		return "level"
	case ShowPlan:
		return "training_plan"
	case ShowRecovery:
		return "recovery"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

const menuPrompt = "\nMenu:\n" +
	"  1) Evaluate Level\n" +
	"  2) Training Plan\n" +
	"  3) Recovery\n" +
	"  0) Quit\n" +
	"Enter choice: "

// Chooser reads a bounded menu choice, re-prompting on invalid input
type Chooser interface {
	ReadIntInRange(prompt, retry string, minValue, maxValue int) (int, error)
}

// Reporter renders the three reports
type Reporter interface {
	Level() error
	Plan() error
	Recovery() error
}

// Next returns the state a menu choice leads to. Choices outside the menu
// leave the loop waiting.
func Next(choice int) State {
	switch choice {
	case 1:
		return ShowLevel
	case 2:
		return ShowPlan
	case 3:
		return ShowRecovery
	case 0:
		return Quit
	default:
		return AwaitingChoice
	}
}

// Run shows the menu and dispatches reports until the user quits. Report file
// failures are logged at debug level and never shown to the user.
func Run(ch Chooser, rep Reporter, out io.Writer, logger *zap.Logger) error {
	retry := fmt.Sprintf("Invalid. Enter %d-%d: ", config.MenuMinChoice, config.MenuMaxChoice)

	for {
		choice, err := ch.ReadIntInRange(menuPrompt, retry, config.MenuMinChoice, config.MenuMaxChoice)
		if err != nil {
			return err
		}

		state := Next(choice)
		switch state {
		case Quit:
			fmt.Fprint(out, "\nExiting...\n")
			return nil
		case ShowLevel:
			err = rep.Level()
		case ShowPlan:
			err = rep.Plan()
		case ShowRecovery:
			err = rep.Recovery()
		}

		if err != nil {
			logger.Debug("report not saved", zap.Stringer("report", state), zap.Error(err))
		}
	}
}
