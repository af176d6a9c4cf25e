package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mentormatch/match"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestRun_EndToEnd drives the full pipeline through the command surface.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	mentees := writeFile(t, dir, "mentees.csv", "S1,M1,M2\nS2,M1\n")
	mentors := writeFile(t, dir, "mentors.csv", "M1,S1\nM2,S1,S2\n")
	caps := writeFile(t, dir, "caps.csv", "M1,1\nM2,2\n")
	results := filepath.Join(dir, "results.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{mentees, mentors, caps, results})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	require.Equal(t, "M1,S1\nM2,S2\n", string(data))
}

// TestRun_SeededRunsAgree verifies the --seed flag pins tie-breaking.
func TestRun_SeededRunsAgree(t *testing.T) {
	dir := t.TempDir()
	mentees := writeFile(t, dir, "mentees.csv", "S1\nS2\nS3\n")
	mentors := writeFile(t, dir, "mentors.csv", "")
	caps := writeFile(t, dir, "caps.csv", "M1,1\nM2,1\nM3,1\n")

	run := func(name string) string {
		results := filepath.Join(dir, name)
		cmd := newRootCmd()
		cmd.SetArgs([]string{mentees, mentors, caps, results, "--seed", "99"})
		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(results)
		require.NoError(t, err)

		return string(data)
	}

	require.Equal(t, run("first.csv"), run("second.csv"))
}

// TestRun_InvalidInput verifies that defects surface as command errors
// belonging to the domain error family.
func TestRun_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	mentees := writeFile(t, dir, "mentees.csv", "S1,M1,M1\n")
	mentors := writeFile(t, dir, "mentors.csv", "")
	caps := writeFile(t, dir, "caps.csv", "M1,1\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{mentees, mentors, caps, filepath.Join(dir, "results.csv")})

	err := cmd.Execute()
	require.ErrorIs(t, err, match.ErrInvalidProblemStatement)
}

// TestRun_MissingInputFile verifies the wrapped I/O failure path.
func TestRun_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	caps := writeFile(t, dir, "caps.csv", "M1,1\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "absent.csv"), caps, caps, filepath.Join(dir, "out.csv")})

	err := cmd.Execute()
	var ioErr *match.IOError
	require.ErrorAs(t, err, &ioErr)
}

// TestRun_WrongArgCount verifies the positional-argument contract.
func TestRun_WrongArgCount(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"one", "two"})
	require.Error(t, cmd.Execute())
}
