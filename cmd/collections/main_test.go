package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExecCommand(t *testing.T) {
	t.Run("it should apply operations given as arguments", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "exec", "append:1", "append:2", "append:3", "remove:1", "insert:1:9")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "remove:1")
		assert.Contains(t, stdout, "-> 2")
		assert.Contains(t, stdout, "list: [1, 9, 3]\n")
		assert.Contains(t, stdout, "size=3 capacity=10 remaining=7 moves=2 expansions=0 expansion_moves=0")
	})

	t.Run("it should use the capacity flag", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "exec", "--capacity", "1", "append:a", "append:b", "append:c")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "size=3 capacity=4 remaining=1 moves=0 expansions=2 expansion_moves=3")
	})

	t.Run("it should use the configured capacity", func(t *testing.T) {
		// GIVEN
		t.Setenv("COLLECTIONS_INITIAL_CAPACITY", "2")

		// WHEN
		stdout, _, err := run(t, "exec", "append:a")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "capacity=2 ")
	})

	t.Run("it should honour a configured zero capacity", func(t *testing.T) {
		// GIVEN
		t.Setenv("COLLECTIONS_INITIAL_CAPACITY", "0")

		// WHEN
		stdout, _, err := run(t, "exec", "append:a")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "size=1 capacity=1 remaining=0 moves=0 expansions=1 expansion_moves=0")
	})

	t.Run("it should read a script file", func(t *testing.T) {
		// GIVEN
		path := filepath.Join(t.TempDir(), "ops.yaml")
		content := "ops:\n  - op: append\n    value: x\n  - op: insert\n    position: 0\n    value: y\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// WHEN
		stdout, _, err := run(t, "exec", "--script", path, "append:z")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "list: [y, x, z]")
	})

	t.Run("it should report out of range operations and fail", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, stderr, err := run(t, "exec", "append:a", "get:3")

		// THEN
		require.EqualError(t, err, "1 of 2 operations failed")
		assert.Contains(t, stdout, "get at position 3: index out of range for size 1")
		assert.Contains(t, stdout, "list: [a]")
		assert.Contains(t, stderr, "operation failed")
	})

	t.Run("it should reject malformed operations", func(t *testing.T) {
		// GIVEN / WHEN
		_, _, err := run(t, "exec", "shuffle")

		// THEN
		assert.ErrorContains(t, err, "invalid operation")
	})

	t.Run("it should require an operation", func(t *testing.T) {
		// GIVEN / WHEN
		_, _, err := run(t, "exec")

		// THEN
		assert.EqualError(t, err, "no operation given")
	})

	t.Run("it should reject an invalid log level", func(t *testing.T) {
		// GIVEN / WHEN
		_, _, err := run(t, "--log-level", "loud", "exec", "append:a")

		// THEN
		assert.ErrorContains(t, err, "invalid log level loud")
	})
}

func TestGrowCommand(t *testing.T) {
	t.Run("it should print one row per capacity", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "grow", "--appends", "3", "--capacities", "1,10")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "CAPACITY")
		assert.Regexp(t, `(?m)^\w{8}\s+1\s+3\s+2\s+2\s+3\s+4\s*$`, stdout)
		assert.Regexp(t, `(?m)^\w{8}\s+10\s+3\s+0\s+0\s+0\s+10\s*$`, stdout)
	})

	t.Run("it should use the configured experiments", func(t *testing.T) {
		// GIVEN
		t.Setenv("COLLECTIONS_GROWTH_APPENDS", "20")

		// WHEN
		stdout, _, err := run(t, "grow")

		// THEN
		require.NoError(t, err)
		assert.Regexp(t, `(?m)^\w{8}\s+0\s+20\s+6\s+6\s+`, stdout)
		assert.Regexp(t, `(?m)^\w{8}\s+10\s+20\s+1\s+1\s+`, stdout)
	})

	t.Run("it should log from concurrent experiments", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			// GIVEN / WHEN
			stdout, stderr, err := run(t, "--log-level", "debug", "grow", "--appends", "50", "--capacities", "0,1,2,3,4,5,6,7")

			// THEN
			require.NoError(t, err)
			assert.Equal(t, 8, strings.Count(stderr, "experiment done"))
			assert.Equal(t, 9, strings.Count(stdout, "\n"))
		}
	})

	t.Run("it should plot capacities", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "grow", "--appends", "16", "--capacities", "1", "--plot")

		// THEN
		require.NoError(t, err)
		assert.Contains(t, stdout, "capacity per append, initial capacity 1")
	})
}

func TestQueueCommand(t *testing.T) {
	t.Run("it should pop strings in natural order", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "queue", "pear", "apple", "fig")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "apple fig pear\n", stdout)
	})

	t.Run("it should compare integers when numeric", func(t *testing.T) {
		// GIVEN / WHEN
		stdout, _, err := run(t, "queue", "--numeric", "42", "7", "19", "100", "3")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "3 7 19 42 100\n", stdout)
	})

	t.Run("it should pop the greatest first when reversed", func(t *testing.T) {
		// GIVEN
		t.Setenv("COLLECTIONS_INITIAL_CAPACITY", "0")

		// WHEN
		stdout, _, err := run(t, "queue", "--numeric", "--reverse", "1", "10", "5")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "10 5 1\n", stdout)
	})

	t.Run("it should reject non numeric values", func(t *testing.T) {
		// GIVEN / WHEN
		_, _, err := run(t, "queue", "--numeric", "1", "two")

		// THEN
		assert.ErrorContains(t, err, `value 2 ("two") is not an integer`)
	})

	t.Run("it should require a value", func(t *testing.T) {
		// GIVEN / WHEN
		_, _, err := run(t, "queue")

		// THEN
		assert.EqualError(t, err, "no value given")
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("it should accept level names in any case", func(t *testing.T) {
		// GIVEN
		buf := &bytes.Buffer{}

		// WHEN
		logger, err := NewLogger(buf, "WARN")
		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		// THEN
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
