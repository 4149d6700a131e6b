package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"evaluator/config"
	"evaluator/logging"
	"evaluator/menu"
	"evaluator/prompt"
	"evaluator/report"
)

func main() {
	// Settings are optional, fall back to defaults on a bad file
	settings, settingsErr := config.Load(config.DefaultFile)
	if settingsErr != nil {
		settings = config.Default()
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if settingsErr != nil {
		logger.Warn("using default settings", zap.String("file", config.DefaultFile), zap.Error(settingsErr))
	}

	showBanner(settings.Title)

	reader := prompt.NewReader(os.Stdin, os.Stdout)

	week, err := reader.GatherWeek()
	if err != nil {
		exit(logger, err)
	}
	logger.Debug("week evaluated",
		zap.String("level", week.Level.String()),
		zap.Float64("readiness", week.Readiness),
		zap.Int("sessions", week.SessionCount()),
	)

	renderer := report.NewRenderer(week, os.Stdout, settings.Report)
	if err := menu.Run(reader, renderer, os.Stdout, logger); err != nil {
		exit(logger, err)
	}

	_ = logger.Sync()
}

func showBanner(title string) {
	fmt.Println("===================================")
	fmt.Printf("    %s\n", title)
	fmt.Print("===================================\n\n")
}

// exit ends the program. Closed input is a normal way to leave.
func exit(logger *zap.Logger, err error) {
	code := 0
	if errors.Is(err, prompt.ErrInputClosed) {
		fmt.Println()
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	_ = logger.Sync()
	os.Exit(code)
}
