package tui

import (
	"fmt"
	"io"

	"github.com/openkraft/ciusage/internal/domain"
)

// Tracer implements domain.ProgressReporter by printing one styled line per event.
type Tracer struct {
	w io.Writer
}

// NewTracer creates a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

func (t *Tracer) Processing(name string) {
	fmt.Fprintf(t.w, "  %s %s\n", warnStyle.Render("▸"), "Processing "+name)
}

func (t *Tracer) Skipping(name string, reason domain.SkipReason) {
	fmt.Fprintf(t.w, "  %s %s\n", skipStyle.Render("○"),
		skipStyle.Render(fmt.Sprintf("Skipping %s (%s)", name, reason.Describe())))
}

func (t *Tracer) Failed(name string, err error) {
	fmt.Fprintf(t.w, "  %s %s\n", failStyle.Render("✘"),
		failStyle.Render(fmt.Sprintf("Failed to process %s: %v", name, err)))
}

func (t *Tracer) Warning(name, msg string) {
	fmt.Fprintf(t.w, "  %s %s\n", warnStyle.Render("!"),
		warnStyle.Render(fmt.Sprintf("%s: %s", name, msg)))
}

func (t *Tracer) Done(result *domain.RunResult) {
	fmt.Fprintln(t.w)
	fmt.Fprint(t.w, RenderSummary(result))
}
