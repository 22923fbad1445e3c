package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		out, err := run(t, "", "--scale", "0,100", "--paint", "0,10", "50")
		require.NoError(t, err)
		require.Equal(t, "5\n", out)
	})

	t.Run("inverse", func(t *testing.T) {
		out, err := run(t, "", "--scale", "0,100", "--paint", "0,10", "--inverse", "5")
		require.NoError(t, err)
		require.Equal(t, "50\n", out)
	})

	t.Run("inverted paint interval", func(t *testing.T) {
		out, err := run(t, "", "--scale", "0,100", "--paint", "10,0", "0", "100")
		require.NoError(t, err)
		require.Equal(t, "10\n0\n", out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, err := run(t, "0\n\n100\n", "--scale", "0,100", "--paint", "0,10")
		require.NoError(t, err)
		require.Equal(t, "0\n10\n", out)
	})

	t.Run("log transform", func(t *testing.T) {
		out, err := run(t, "", "--scale", "1,100", "--paint", "0,2", "-t", "log", "1")
		require.NoError(t, err)
		require.Equal(t, "0\n", out)
	})
}

func TestRootCommand_Errors(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		_, err := run(t, "", "abc")
		require.ErrorContains(t, err, `parse value "abc"`)
	})

	t.Run("unknown transform", func(t *testing.T) {
		_, err := run(t, "", "-t", "sqrt", "1")
		require.ErrorContains(t, err, "unknown transform")
	})

	t.Run("interval size", func(t *testing.T) {
		_, err := run(t, "", "--scale", "1,2,3", "1")
		require.ErrorContains(t, err, "scale interval needs two values")
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := run(t, "", "--profile", "block", "1")
		require.ErrorContains(t, err, "unknown profile")
	})
}
