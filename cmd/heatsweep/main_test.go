package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version",
			args:       []string{"version"},
			wantExit:   0,
			wantStdout: "heatsweep version dev",
		},
		{
			name:       "missing geometry",
			args:       []string{"run", "--omega", "1"},
			wantExit:   1,
			wantStderr: "--geometry option is mandatory",
		},
		{
			name:       "conflicting caches",
			args:       []string{"run", "--geometry", "g.yaml", "--cache", "a", "--writecache", "b"},
			wantExit:   1,
			wantStderr: "conflicting options",
		},
		{
			name:       "unknown flag",
			args:       []string{"run", "--frequency", "1"},
			wantExit:   1,
			wantStderr: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

			assert.Equal(t, tt.wantExit, run(tt.args, stdout, stderr))
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}
