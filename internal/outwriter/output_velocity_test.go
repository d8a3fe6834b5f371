package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/huangsam/gitbars/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVelocityEmpty(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteVelocity(nil)
	assert.Contains(t, buf.String(), "No velocity data found")
}

func TestWriteVelocity(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteVelocity(map[string]schema.VelocityStat{
		"2024-03-05": {Added: 40, Removed: 10},
		"2024-03-06": {Added: 20, Removed: 5},
	})
	out := buf.String()

	assert.Contains(t, out, "Code Velocity (lines changed)")
	assert.Contains(t, out, "Total: +60 / -15 / net +45")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5) // title, totals, blank, two periods

	// Newest period first; bars scale against the largest single value (40).
	assert.True(t, strings.HasPrefix(lines[3], "2024-03-06"))
	assert.True(t, strings.HasPrefix(lines[4], "2024-03-05"))
	assert.Contains(t, lines[4], strings.Repeat("+", 40))
	assert.Contains(t, lines[4], strings.Repeat("-", 10))
	assert.Contains(t, lines[3], strings.Repeat("+", 20))
}

func TestWriteVelocityNegativeNet(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteVelocity(map[string]schema.VelocityStat{
		"2024-03-05": {Added: 5, Removed: 9},
	})
	assert.Contains(t, buf.String(), "net -4")
}
