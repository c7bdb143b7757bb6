package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muffin-cms/muffin/pkg/ui/output/styles"
	"github.com/pterm/pterm"
)

// Spinner tracks one long-running step.
type Spinner interface {
	Success(msg string)
	Fail(msg string)
}

// UI is what the generation pipeline reports progress through.
type UI interface {
	Start(msg string) Spinner
	Success(msg string)
	Error(msg string)
	Info(msg string)
	List(title string, items []string)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Detect returns a styled UI when f is a terminal and a plain one otherwise.
func Detect(f *os.File) UI {
	return New(f, IsTerminal(f))
}

// New creates a UI writing to w.
func New(w io.Writer, interactive bool) UI {
	if interactive {
		return &terminalUI{w: w}
	}
	return &plainUI{w: w}
}

// terminalUI renders with pterm and lipgloss.
type terminalUI struct {
	w io.Writer
}

func (t *terminalUI) Start(msg string) Spinner {
	sp, err := pterm.DefaultSpinner.
		WithWriter(t.w).
		WithRemoveWhenDone(false).
		Start(styles.GetStyle("Muted").Render(msg))
	if err != nil {
		return &plainSpinner{w: t.w}
	}
	return &terminalSpinner{sp: sp}
}

func (t *terminalUI) Success(msg string) {
	pterm.Success.WithWriter(t.w).Println(styles.GetStyle("Success").Render(msg))
}

func (t *terminalUI) Error(msg string) {
	pterm.Error.WithWriter(t.w).Println(styles.GetStyle("Error").Render(msg))
}

func (t *terminalUI) Info(msg string) {
	pterm.Info.WithWriter(t.w).Println(msg)
}

func (t *terminalUI) List(title string, items []string) {
	fmt.Fprintln(t.w, styles.GetStyle("Title").Render(title))
	item := styles.GetStyle("Path")
	for _, it := range items {
		fmt.Fprintln(t.w, "  "+item.Render(it))
	}
}

type terminalSpinner struct {
	sp *pterm.SpinnerPrinter
}

func (s *terminalSpinner) Success(msg string) { s.sp.Success(msg) }
func (s *terminalSpinner) Fail(msg string)    { s.sp.Fail(msg) }

// plainUI writes unstyled lines.
type plainUI struct {
	w io.Writer
}

func (p *plainUI) Start(msg string) Spinner {
	fmt.Fprintf(p.w, "... %s\n", msg)
	return &plainSpinner{w: p.w}
}

func (p *plainUI) Success(msg string) { fmt.Fprintf(p.w, "OK %s\n", msg) }
func (p *plainUI) Error(msg string)   { fmt.Fprintf(p.w, "ERROR %s\n", msg) }
func (p *plainUI) Info(msg string)    { fmt.Fprintln(p.w, msg) }

func (p *plainUI) List(title string, items []string) {
	fmt.Fprintln(p.w, title)
	if len(items) > 0 {
		fmt.Fprintln(p.w, "  "+strings.Join(items, "\n  "))
	}
}

type plainSpinner struct {
	w io.Writer
}

func (s *plainSpinner) Success(msg string) { fmt.Fprintf(s.w, "OK %s\n", msg) }
func (s *plainSpinner) Fail(msg string)    { fmt.Fprintf(s.w, "ERROR %s\n", msg) }
