package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mentormatch/matchio"
	"github.com/katalvlaran/mentormatch/poset"
	"github.com/katalvlaran/mentormatch/solver"
)

type rootFlags struct {
	mentorOptimal bool
	seed          int64
	verbose       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "mentormatch <mentee-rankings> <mentor-rankings> <mentor-capacities> <results>",
		Short: "Solve the mentor/mentee matching problem",
		Long: `Solve the mentor/mentee matching problem.

Reads mentee rankings, mentor rankings, and mentor capacities from the
three input CSV files, expands partial rankings into fair total orders,
computes a stable capacity-bounded assignment, and writes it to the
results path (one line per mentor: mentorName,mentee1,mentee2,...).`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.mentorOptimal, "mentor-optimal", false,
		"optimize matching in favor of mentors (mentee-optimal is the default)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0,
		"seed for tie-break randomization; omit for fresh entropy per run")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"log pipeline stages to stderr")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string, flags *rootFlags) error {
	logger := newLogger(flags.verbose)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	menteePath, mentorPath, capacityPath, resultPath := args[0], args[1], args[2], args[3]

	start := time.Now()
	st, err := matchio.ReadStatement(menteePath, mentorPath, capacityPath)
	if err != nil {
		return err
	}
	logger.Debug("problem statement normalized",
		zap.Int("mentees", len(st.Mentees())),
		zap.Int("mentors", len(st.Mentors())),
		zap.Duration("elapsed", time.Since(start)))

	opts := poset.DefaultOptions()
	if cmd.Flags().Changed("seed") {
		opts = poset.Seeded(flags.seed)
		logger.Debug("tie-break source seeded", zap.Int64("seed", flags.seed))
	}

	side := solver.MenteeOptimal
	if flags.mentorOptimal {
		side = solver.MentorOptimal
	}

	start = time.Now()
	matching, err := solver.Solve(st, side, opts)
	if err != nil {
		return err
	}
	logger.Debug("stable assignment computed",
		zap.Bool("mentor_optimal", flags.mentorOptimal),
		zap.Int("assigned_mentors", len(matching)),
		zap.Duration("elapsed", time.Since(start)))

	if err = matchio.WriteMatching(resultPath, matching); err != nil {
		return err
	}
	logger.Debug("results written", zap.String("path", resultPath))

	return nil
}

// newLogger builds a console logger on stderr. Quiet by default so a
// successful run prints nothing; --verbose opens the debug stream.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
