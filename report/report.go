package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"evaluator/config"
	"evaluator/player"
)

const (
	headerTitle = "WEEKLY PERFORMANCE REPORT"
	separator   = "----------------------------------"
	valueWidth  = 20
)

// Renderer prints reports for one evaluated week to the console and
// replaces the report file on every call.
type Renderer struct {
	week   *player.Week
	out    io.Writer
	path   string
	header string
	create func(name string) (io.WriteCloser, error)
}

// NewRenderer creates a renderer for week writing console output to out
func NewRenderer(week *player.Week, out io.Writer, settings config.ReportSettings) *Renderer {
	header := headerTitle
	if settings.Week > 0 {
		header = fmt.Sprintf("%s (Week %d)", headerTitle, settings.Week)
	}
	return &Renderer{
		week:   week,
		out:    out,
		path:   settings.Path,
		header: header,
		create: createFile,
	}
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Path returns the report file location
func (r *Renderer) Path() string {
	return r.path
}

// field is one label/value row of a report
type field struct {
	label  string
	value  string
	suffix string
}

// writeFields writes rows with the label left-aligned in width and the value
// right-aligned in valueWidth
func writeFields(w io.Writer, width int, fields []field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%-*s%*s%s\n", width, f.label, valueWidth, f.value, f.suffix)
	}
}

// writeFile truncates the report file and writes the header followed by body
func (r *Renderer) writeFile(section string, body func(w io.Writer)) (err error) {
	file, err := r.create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\nSection: %s\n%s\n", r.header, section, separator)
	body(w)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
