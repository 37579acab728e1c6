package fmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)
	old, oldNoColor := Output, color.NoColor
	Output, color.NoColor = buf, true
	t.Cleanup(func() { Output, color.NoColor = old, oldNoColor })
	return buf
}

func TestSprintKeepsVerbs(t *testing.T) {
	withBuffer(t)
	require.Equal(t, "1-a-0.50-  x", Sprint("%d-%s-%.2f-%3s", 1, "a", 0.5, "x"))
	require.Equal(t, "100%", Sprint("%d%%", 100))
}

func TestPrintAppendsNewline(t *testing.T) {
	buf := withBuffer(t)
	Print("size=%d", 3)
	Print("done\n")
	require.Equal(t, "size=3\ndone\n", buf.String())
}

func TestPrintWithFile(t *testing.T) {
	buf := withBuffer(t)
	old := skipPackages
	// only the printer's own frames are left to skip
	skipPackages = nil
	defer func() { skipPackages = old }()
	PrintWithFile("boom %v", "here")
	require.True(t, strings.HasPrefix(buf.String(), "printer_test.go:"), buf.String())
	require.True(t, strings.HasSuffix(buf.String(), " boom here\n"), buf.String())
}

func TestPrintJSONComplexValue(t *testing.T) {
	buf := withBuffer(t)
	PrintJSON("%v", map[string]int{"a": 1})
	require.Contains(t, buf.String(), "a")
	require.Contains(t, buf.String(), "1")
	require.NotContains(t, buf.String(), "map[")
}

func TestPrintWithTime(t *testing.T) {
	buf := withBuffer(t)
	PrintWithTime("tick %d", 1)
	line := buf.String()
	require.Regexp(t, `^\d{2}:\d{2}:\d{2} tick 1\n$`, line)
}
