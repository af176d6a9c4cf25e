package hr_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mentormatch/hr"
)

// assertStable fails if any mentee/mentor pair would both strictly prefer
// each other over their assigned outcome.
func assertStable(t *testing.T, menteePrefs, mentorPrefs map[string][]string,
	capacities map[string]int, assigned map[string][]string) {
	t.Helper()

	menteeOf := make(map[string]string)
	for mentor, mentees := range assigned {
		for _, mentee := range mentees {
			menteeOf[mentee] = mentor
		}
	}
	rank := func(list []string, name string) int {
		for i, n := range list {
			if n == name {
				return i
			}
		}

		return len(list)
	}

	for mentee, prefs := range menteePrefs {
		for _, mentor := range prefs {
			current, matched := menteeOf[mentee]
			menteeWants := !matched || rank(prefs, mentor) < rank(prefs, current)
			if !menteeWants {
				continue
			}

			held := assigned[mentor]
			mentorWants := len(held) < capacities[mentor]
			for _, other := range held {
				if rank(mentorPrefs[mentor], mentee) < rank(mentorPrefs[mentor], other) {
					mentorWants = true
				}
			}
			if mentorWants {
				t.Fatalf("blocking pair: mentee %s and mentor %s both prefer each other", mentee, mentor)
			}
		}
	}
}

// TestSolve_OneToOne verifies both optimality modes on the classic
// two-by-two instance where they disagree.
func TestSolve_OneToOne(t *testing.T) {
	menteePrefs := map[string][]string{
		"S1": {"M1", "M2"},
		"S2": {"M2", "M1"},
	}
	mentorPrefs := map[string][]string{
		"M1": {"S2", "S1"},
		"M2": {"S1", "S2"},
	}
	capacities := map[string]int{"M1": 1, "M2": 1}

	menteeBest, err := hr.Solve(menteePrefs, mentorPrefs, capacities, hr.MenteeOptimal)
	require.NoError(t, err)
	require.Equal(t, []string{"S1"}, menteeBest["M1"])
	require.Equal(t, []string{"S2"}, menteeBest["M2"])
	assertStable(t, menteePrefs, mentorPrefs, capacities, menteeBest)

	mentorBest, err := hr.Solve(menteePrefs, mentorPrefs, capacities, hr.MentorOptimal)
	require.NoError(t, err)
	require.Equal(t, []string{"S2"}, mentorBest["M1"])
	require.Equal(t, []string{"S1"}, mentorBest["M2"])
	assertStable(t, menteePrefs, mentorPrefs, capacities, mentorBest)
}

// TestSolve_CapacityBound verifies many-to-one assignment under capacity.
func TestSolve_CapacityBound(t *testing.T) {
	menteePrefs := map[string][]string{
		"S1": {"M1", "M2"},
		"S2": {"M1", "M2"},
		"S3": {"M1", "M2"},
	}
	mentorPrefs := map[string][]string{
		"M1": {"S1", "S2", "S3"},
		"M2": {"S1", "S2", "S3"},
	}
	capacities := map[string]int{"M1": 2, "M2": 1}

	assigned, err := hr.Solve(menteePrefs, mentorPrefs, capacities, hr.MenteeOptimal)
	require.NoError(t, err)

	got := assigned["M1"]
	sort.Strings(got)
	require.Equal(t, []string{"S1", "S2"}, got, "M1 keeps its two favorites")
	require.Equal(t, []string{"S3"}, assigned["M2"])
	assertStable(t, menteePrefs, mentorPrefs, capacities, assigned)
}

// TestSolve_EveryMenteeAssigned verifies the coverage guarantee when
// aggregate capacity is sufficient, across both modes.
func TestSolve_EveryMenteeAssigned(t *testing.T) {
	menteePrefs := map[string][]string{
		"S1": {"M2", "M1", "M3"},
		"S2": {"M2", "M3", "M1"},
		"S3": {"M1", "M2", "M3"},
		"S4": {"M3", "M2", "M1"},
	}
	mentorPrefs := map[string][]string{
		"M1": {"S4", "S3", "S2", "S1"},
		"M2": {"S1", "S4", "S2", "S3"},
		"M3": {"S2", "S1", "S3", "S4"},
	}
	capacities := map[string]int{"M1": 1, "M2": 2, "M3": 1}

	for _, mode := range []hr.Optimality{hr.MenteeOptimal, hr.MentorOptimal} {
		assigned, err := hr.Solve(menteePrefs, mentorPrefs, capacities, mode)
		require.NoError(t, err)

		var all []string
		for mentor, mentees := range assigned {
			require.LessOrEqual(t, len(mentees), capacities[mentor])
			all = append(all, mentees...)
		}
		require.ElementsMatch(t, []string{"S1", "S2", "S3", "S4"}, all,
			"every mentee assigned exactly once")
		assertStable(t, menteePrefs, mentorPrefs, capacities, assigned)
	}
}

// TestSolve_InputContract drives the precondition errors.
func TestSolve_InputContract(t *testing.T) {
	cases := []struct {
		name        string
		menteePrefs map[string][]string
		mentorPrefs map[string][]string
		capacities  map[string]int
		err         error
	}{
		{
			"PartialMenteeList",
			map[string][]string{"S1": {"M1"}},
			map[string][]string{"M1": {"S1"}, "M2": {"S1"}},
			map[string]int{"M1": 1, "M2": 1},
			hr.ErrNotTotal,
		},
		{
			"UnknownMentorRanked",
			map[string][]string{"S1": {"Ghost"}},
			map[string][]string{"M1": {"S1"}},
			map[string]int{"M1": 1},
			hr.ErrUnknownParticipant,
		},
		{
			"RepeatedEntry",
			map[string][]string{"S1": {"M1", "M1"}},
			map[string][]string{"M1": {"S1"}, "M2": {"S1"}},
			map[string]int{"M1": 1, "M2": 1},
			hr.ErrNotTotal,
		},
		{
			"ZeroCapacity",
			map[string][]string{"S1": {"M1"}},
			map[string][]string{"M1": {"S1"}},
			map[string]int{"M1": 0},
			hr.ErrBadCapacity,
		},
		{
			"MentorWithoutList",
			map[string][]string{"S1": {"M1"}},
			map[string][]string{},
			map[string]int{"M1": 1},
			hr.ErrNotTotal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hr.Solve(tc.menteePrefs, tc.mentorPrefs, tc.capacities, hr.MenteeOptimal)
			require.ErrorIs(t, err, tc.err)
		})
	}
}
