package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_MatchesRootFlag(t *testing.T) {
	resetFlags(t)
	assert.Equal(t, version, rootCmd.Version)

	output, err := captureOutput(t, func() error {
		printInfo("%s", versionText())
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, output, "partsim "+rootCmd.Version)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), rootCmd.Version)
}
