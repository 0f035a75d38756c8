package notify

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Notify("saved", Success)
	r.Notify("storage is full", Error)

	assert.Len(t, r.Entries, 2)
	assert.Equal(t, Entry{Message: "saved", Severity: Success}, r.Entries[0])
	assert.Equal(t, Entry{Message: "storage is full", Severity: Error}, r.Entries[1])
}

func TestConsole(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Notify("wardrobe saved", Success)
	c.Notify("could not save wardrobe", Error)
	c.Notify("heads up", Info)

	out := buf.String()
	assert.Contains(t, out, "wardrobe saved\n")
	assert.Contains(t, out, "error: could not save wardrobe\n")
	assert.Contains(t, out, "heads up\n")
}
