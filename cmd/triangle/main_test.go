package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlunagariya/patterna/console"
	"github.com/devlunagariya/patterna/triangle"
)

// TestRun_ValidInput covers the happy path: banner, the user's
// triangle, and both example heights.
func TestRun_ValidInput(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader("4\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Right Triangle Pattern - Single Loop Implementation")
	assert.Contains(t, got, "* * * * ", "last row of the n=4 triangle")
	assert.Contains(t, got, "n = 3:")
	assert.Contains(t, got, "n = 6:")
	assert.Contains(t, got, "* * * * * * ", "last row of the n=6 example")
}

// TestRun_NonPositiveHeight verifies a non-positive n is reported but
// not fatal: the examples still print and the command succeeds.
func TestRun_NonPositiveHeight(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader("0\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, triangle.ErrNonPositiveHeight.Error())
	assert.Contains(t, got, "n = 3:")
	assert.Contains(t, got, "n = 6:")
}

// TestRun_ParseFailure verifies a non-integer token terminates with the
// invalid-input message and an error (exit code 1 in main).
func TestRun_ParseFailure(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader("tall\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, console.ErrNotAnInteger)
	assert.Contains(t, out.String(), "Invalid input. Please enter a positive integer.")
}
