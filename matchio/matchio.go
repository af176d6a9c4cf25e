// Package matchio is the CSV boundary of the pipeline: it reads ranking
// and capacity files into raw records, feeds them to match.Normalize, and
// writes a solved matching back out.
//
// File formats (comma-separated, one record per line, no header row):
//
//	rankings:   participantName,opponent1,opponent2,...   (rank by position;
//	            a row with no opponents is a valid "no preference" entry)
//	capacities: mentorName,capacity                        (capacity ≥ 1)
//	results:    mentorName,mentee1,mentee2,...             (mentors sorted,
//	            mentees sorted within a line; only mentors with mentees)
//
// Fields are trimmed of surrounding whitespace and blank lines are
// skipped. Every filesystem failure is re-wrapped into match.IOError — a
// member of the match.ErrInvalidProblemStatement family naming the failing
// path — so callers never handle raw I/O errors. Files are closed on every
// exit path.
package matchio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/mentormatch/match"
)

// ReadStatement reads the three input files and normalizes them into a
// validated problem statement, including the aggregate feasibility check.
func ReadStatement(menteePath, mentorPath, capacityPath string) (*match.ProblemStatement, error) {
	menteeRows, err := ReadRows(menteePath, match.SourceMenteeRankings)
	if err != nil {
		return nil, err
	}
	mentorRows, err := ReadRows(mentorPath, match.SourceMentorRankings)
	if err != nil {
		return nil, err
	}
	capacityRows, err := ReadRows(capacityPath, match.SourceCapacities)
	if err != nil {
		return nil, err
	}

	return match.Normalize(menteeRows, mentorRows, capacityRows, nil)
}

// ReadRows reads one CSV file into raw records. Records may have varying
// column counts; interpretation is left entirely to match.Normalize.
// kind names the input in diagnostics, e.g. match.SourceMenteeRankings.
func ReadRows(path, kind string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &match.IOError{Path: path, Op: "read " + kind, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ranking rows legitimately vary in width

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &match.IOError{Path: path, Op: "read " + kind, Err: err}
		}

		blank := true
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
			if record[i] != "" {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, record)
		}
	}

	return rows, nil
}

// WriteMatching writes the solved assignment to path: one line per mentor
// with at least one mentee, mentors sorted, mentees sorted within a line.
// Output is byte-deterministic for a given matching.
func WriteMatching(path string, matching map[string][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &match.IOError{Path: path, Op: "write results", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &match.IOError{Path: path, Op: "write results", Err: cerr}
		}
	}()

	mentors := make([]string, 0, len(matching))
	for mentor, mentees := range matching {
		if len(mentees) > 0 {
			mentors = append(mentors, mentor)
		}
	}
	sort.Strings(mentors)

	writer := csv.NewWriter(f)
	for _, mentor := range mentors {
		mentees := append([]string(nil), matching[mentor]...)
		sort.Strings(mentees)
		if werr := writer.Write(append([]string{mentor}, mentees...)); werr != nil {
			return &match.IOError{Path: path, Op: "write results", Err: werr}
		}
	}
	writer.Flush()
	if werr := writer.Error(); werr != nil {
		return &match.IOError{Path: path, Op: "write results", Err: werr}
	}

	return nil
}
