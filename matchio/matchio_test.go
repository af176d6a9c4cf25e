package matchio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mentormatch/match"
	"github.com/katalvlaran/mentormatch/matchio"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestReadRows verifies trimming, blank-line skipping, and ragged rows.
func TestReadRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rankings.csv",
		"S1, M2 ,M1\n\nS2\n  \nS3,M1\n")

	rows, err := matchio.ReadRows(path, match.SourceMenteeRankings)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"S1", "M2", "M1"},
		{"S2"},
		{"S3", "M1"},
	}, rows)
}

// TestReadRows_MissingFile verifies domain-wrapped I/O failures.
func TestReadRows_MissingFile(t *testing.T) {
	_, err := matchio.ReadRows(filepath.Join(t.TempDir(), "absent.csv"), match.SourceCapacities)
	require.ErrorIs(t, err, match.ErrInvalidProblemStatement)

	var ioErr *match.IOError
	require.ErrorAs(t, err, &ioErr)
	require.Contains(t, ioErr.Path, "absent.csv")
	require.True(t, errors.Is(err, os.ErrNotExist), "the raw cause stays reachable")
}

// TestReadStatement wires reading and normalization together.
func TestReadStatement(t *testing.T) {
	dir := t.TempDir()
	mentees := writeFile(t, dir, "mentees.csv", "S1,M1,M2\nS2,M1\n")
	mentors := writeFile(t, dir, "mentors.csv", "M1,S1\nM2,S1,S2\n")
	caps := writeFile(t, dir, "caps.csv", "M1,1\nM2,2\n")

	st, err := matchio.ReadStatement(mentees, mentors, caps)
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "S2"}, st.Mentees())
	require.Equal(t, []string{"M1", "M2"}, st.Mentors())
}

// TestReadStatement_RowDefect verifies that normalization diagnostics
// surface with their row scope intact.
func TestReadStatement_RowDefect(t *testing.T) {
	dir := t.TempDir()
	mentees := writeFile(t, dir, "mentees.csv", "S1\n")
	mentors := writeFile(t, dir, "mentors.csv", "")
	caps := writeFile(t, dir, "caps.csv", "M1,1\nM1,2\n")

	_, err := matchio.ReadStatement(mentees, mentors, caps)
	require.ErrorIs(t, err, match.ErrDuplicateCapacityRow)
	require.Contains(t, err.Error(), "line 2 of mentor capacities")
}

// TestWriteMatching verifies sorted, byte-deterministic output and the
// omission of mentors with no mentees.
func TestWriteMatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	matching := map[string][]string{
		"M2": {"S3", "S1"},
		"M1": {"S2"},
		"M3": {},
	}

	require.NoError(t, matchio.WriteMatching(path, matching))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "M1,S2\nM2,S1,S3\n", string(data))
}

// TestWriteMatching_BadPath verifies write failures are domain-wrapped.
func TestWriteMatching_BadPath(t *testing.T) {
	err := matchio.WriteMatching(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), nil)
	require.ErrorIs(t, err, match.ErrInvalidProblemStatement)

	var ioErr *match.IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "write results", ioErr.Op)
}
