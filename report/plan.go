package report

import (
	"fmt"
	"io"

	"evaluator/program"
)

const planLabelWidth = 20

// Plan prints the training plan for the week's level and saves it
func (r *Renderer) Plan() error {
	plan, err := program.SelectPlan(r.week.Level, r.week.SleepHours)
	if err != nil {
		return fmt.Errorf("failed to select training plan: %w", err)
	}

	fields := []field{
		{label: "Player:", value: r.week.Name},
		{label: "Level:", value: r.week.Level.String()},
		{label: "Focus:", value: plan.Focus},
		{label: "Technical work:", value: formatHours(plan.TechnicalMinutes), suffix: " min"},
		{label: "Conditioning:", value: formatHours(plan.ConditioningMinutes), suffix: " min"},
	}

	fmt.Fprint(r.out, "\n------- TRAINING PLAN -------\n")
	writeFields(r.out, planLabelWidth, fields)

	return r.writeFile("TRAINING PLAN", func(f io.Writer) {
		writeFields(f, planLabelWidth, fields)
	})
}
