package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubspacesCmdListsEveryKnownSubspace(t *testing.T) {
	cmd := newSubspacesCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.RunE(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "DIRECTORY")
	assert.Contains(t, out, "TELEMETRY_SPAN")
}
