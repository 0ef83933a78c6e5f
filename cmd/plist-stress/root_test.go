package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qjpcpu/persistent/internal/printer"
)

func TestRootCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs([]string{"--depth", "64", "--branches", "3", "--no-progress"})
	assert.NoError(t, cmd.Execute())

	out := buf.String()
	for _, s := range []string{"release-branches", "release-base", "64", "releases", "stopped at shared"} {
		assert.Contains(t, out, s)
	}
}

func TestRootCmdDebugTracesReleases(t *testing.T) {
	var trace bytes.Buffer
	old := printer.Output
	printer.Output = &trace
	defer func() { printer.Output = old }()

	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs([]string{"--depth=4", "--branches=1", "--no-progress"})
	assert.NoError(t, cmd.Execute())
	assert.Empty(t, trace.String())

	cmd = newRootCmd(&buf)
	cmd.SetArgs([]string{"--depth=4", "--branches=1", "--no-progress", "--debug"})
	assert.NoError(t, cmd.Execute())
	assert.Contains(t, trace.String(), "stopped at shared node")
	assert.Contains(t, trace.String(), "chain end")
}

func TestRootCmdInvalidFlags(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs([]string{"--depth=-1"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")

	cmd = newRootCmd(&buf)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
