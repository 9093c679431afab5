package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/partsim/internal/config"
)

func TestLayoutCommand(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T)
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "default",
			wantContain: []string{"Layout (default): 100,150,200,250,300", "Capacity: 1000"},
		},
		{
			name:        "flag",
			setup:       func(t *testing.T) { partitionsFlag = "8,16" },
			wantContain: []string{"Layout (flag): 8,16", "Capacity: 24"},
		},
		{
			name:        "env",
			setup:       func(t *testing.T) { t.Setenv(config.EnvPartitions, "5 5 5") },
			wantContain: []string{"Layout (env): 5,5,5", "Capacity: 15"},
		},
		{
			name: "file",
			setup: func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "layout.txt")
				require.NoError(t, os.WriteFile(path, []byte("# small\n32\n64\n"), 0o644))
				layoutFile = path
			},
			wantContain: []string{"Layout (file): 32,64"},
		},
		{
			name:        "empty flag layout falls through",
			setup:       func(t *testing.T) { partitionsFlag = " " },
			wantContain: []string{"Layout (default)"},
		},
		{
			name:    "negative size",
			setup:   func(t *testing.T) { partitionsFlag = "-1" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			if tt.setup != nil {
				tt.setup(t)
			}
			output, err := captureOutput(t, runLayout)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestLayoutCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	output, err := captureOutput(t, runLayout)
	require.NoError(t, err)
	assertJSON(t, output)
	assert.Contains(t, output, `"source": "default"`)
}
