package report

import (
	"fmt"
	"io"
	"strconv"
)

const levelLabelWidth = 22

// Level prints the level report with the session breakdown and saves it
func (r *Renderer) Level() error {
	w := r.week

	fmt.Fprint(r.out, "\n----- LEVEL REPORT -----\n")
	fmt.Fprintf(r.out, "Player: %s\n", w.Name)
	fmt.Fprintf(r.out, "Age: %d\n", w.Age)
	fmt.Fprintf(r.out, "Level: %s\n", w.Level)
	fmt.Fprintf(r.out, "Total training this week: %s\n", formatHours(w.TotalTraining))
	fmt.Fprintf(r.out, "Average training per session: %s\n", formatHours(w.AvgTraining))
	fmt.Fprintf(r.out, "Average sleep: %s\n", formatHours(w.SleepHours))
	fmt.Fprintf(r.out, "Readiness Score: %s\n", formatHours(w.Readiness))
	fmt.Fprintf(r.out, "Advice: %s\n", w.Advice)

	fmt.Fprint(r.out, "\nSession Breakdown:\n")
	fmt.Fprintf(r.out, "%-10s%-12s\n", "#", "Hours")
	for i, h := range w.Sessions.Hours() {
		fmt.Fprintf(r.out, "%-10d%-12s\n", i+1, formatHours(h))
	}

	return r.writeFile("LEVEL", func(f io.Writer) {
		writeFields(f, levelLabelWidth, []field{
			{label: "Player:", value: w.Name},
			{label: "Age:", value: strconv.Itoa(w.Age)},
			{label: "Total training:", value: formatHours(w.TotalTraining)},
			{label: "Avg training:", value: formatHours(w.AvgTraining)},
			{label: "Avg sleep:", value: formatHours(w.SleepHours)},
			{label: "Level:", value: w.Level.String()},
			{label: "Readiness:", value: formatHours(w.Readiness)},
			{label: "Advice:", value: w.Advice},
		})

		fmt.Fprint(f, "\nSession details:\n")
		fmt.Fprintf(f, "%-10s%-15s\n", "Session", "Hours")
		for i, h := range w.Sessions.Hours() {
			fmt.Fprintf(f, "%-10d%-15s\n", i+1, formatHours(h))
		}
	})
}
