// Package notify is the user-facing notification sink. The core layers
// report outcomes as (message, severity) pairs; the console sink renders
// them color-coded for the terminal.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Severity classifies a notification.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

// Notifier receives (message, severity) pairs.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Console renders notifications color-coded to a writer.
type Console struct {
	out io.Writer
}

// NewConsole returns a console sink writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Notify implements Notifier.
func (c *Console) Notify(message string, severity Severity) {
	switch severity {
	case Success:
		color.New(color.FgGreen).Fprintln(c.out, message)
	case Warning:
		color.New(color.FgYellow).Fprintln(c.out, message)
	case Error:
		color.New(color.FgRed).Fprintf(c.out, "error: %s\n", message)
	default:
		fmt.Fprintln(c.out, message)
	}
}

// Entry is one recorded notification.
type Entry struct {
	Message  string
	Severity Severity
}

// Recorder captures notifications for tests.
type Recorder struct {
	Entries []Entry
}

// Notify implements Notifier.
func (r *Recorder) Notify(message string, severity Severity) {
	r.Entries = append(r.Entries, Entry{Message: message, Severity: severity})
}
