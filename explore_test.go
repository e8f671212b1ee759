package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prime-catacombs/generation"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func exploreLines(t *testing.T, start string, base int, allowComposite bool, limit int) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, explore(&buf, start, base, allowComposite, limit))

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(ansi.ReplaceAllString(buf.String(), "")), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

func TestExploreRunsOutOfNumbers(t *testing.T) {
	lines := exploreLines(t, "2", 2, false, 100)
	assert.Equal(t, []string{
		"1: 5 (Level 1)",
		"2: 11 (Level 2)",
		"3: 23 (Level 3)",
		"4: 47 (Level 4)",
		"No more numbers!",
	}, lines)
}

func TestExploreStopsQuietlyAtLimit(t *testing.T) {
	lines := exploreLines(t, "2", 10, false, 3)
	assert.Equal(t, []string{
		"1: 23 (Level 1)",
		"2: 29 (Level 1)",
		"3: 233 (Level 2)",
	}, lines)
}

func TestExploreRejectsBadBase(t *testing.T) {
	var buf bytes.Buffer
	err := explore(&buf, "2", 1, false, 10)
	assert.ErrorIs(t, err, generation.ErrConfiguration)
	assert.Empty(t, buf.String())
}
