package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_NonInteractive(t *testing.T) {
	resetFlags(t)
	in := strings.NewReader("allocate P1 90\n\n# comment\nbogus\nrelease P1\ntotal\nquit\nallocate P2 10\n")

	output, err := captureOutput(t, func() error {
		return runShell(in, false)
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Process P1 allocated to partition 1 (size 100). Internal fragmentation: 10\n"+
			"Process P1 released.\n"+
			"Total internal fragmentation: 0\n",
		output)
}

func TestShell_Interactive(t *testing.T) {
	resetFlags(t)
	in := strings.NewReader("help\nreport\n")

	output, err := captureOutput(t, func() error {
		return runShell(in, true)
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"partsim shell (5 partitions)",
		shellPrompt,
		"allocate <process> <size>",
		"Partition 5 - Size: 300 - FREE",
	})
}

func TestShell_StyledReport(t *testing.T) {
	resetFlags(t)
	noColor = false
	in := strings.NewReader("allocate P1 90\nreport\n")

	output, err := captureOutput(t, func() error {
		return runShell(in, true)
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"OCCUPIED(P1)", "Fragmentation", "Largest free: 300"})
}

func TestShell_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	in := strings.NewReader("allocate P1 90\n")

	output, err := captureOutput(t, func() error {
		return runShell(in, false)
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"command": "allocate P1 90"`, `"ok": true`})
}
