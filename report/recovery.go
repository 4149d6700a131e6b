package report

import (
	"fmt"
	"io"
	"strconv"

	"evaluator/program"
)

const recoveryLabelWidth = 18

// Recovery prints the recovery recommendation and saves it
func (r *Renderer) Recovery() error {
	rec := program.AdviseRecovery(r.week.SleepHours, r.week.TotalTraining)

	fields := []field{
		{label: "Fatigue:", value: string(rec.Fatigue)},
		{label: "Rest Days:", value: strconv.Itoa(rec.RestDays)},
		{label: "Tip:", value: rec.Tip},
	}

	fmt.Fprint(r.out, "\n---- RECOVERY ----\n")
	writeFields(r.out, recoveryLabelWidth, fields)

	return r.writeFile("RECOVERY", func(f io.Writer) {
		writeFields(f, recoveryLabelWidth, fields)
	})
}
