package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/readweb/cmd/readweb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_NoArgsShowsHelp(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no URL specified")
	assert.Contains(t, stdout.String(), "--engine")
}

func TestMain_Run_HelpShowsFlags(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	expectedFlags := []string{
		"--engine", "--wait-until", "--proxy", "--timeout", "--no-browser",
		"--chunk-size", "--chunk-overlap", "--format", "--db", "--out",
		"--concurrency", "--verbose", "--options",
	}
	for _, flag := range expectedFlags {
		assert.Contains(t, helpOutput, flag, "Help should mention %s", flag)
	}
}

func TestMain_Run_RejectsInvalidFlags(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--engine", "bogus", "https://example.com"}, stdout, stderr)
	assert.Error(t, err)
}
