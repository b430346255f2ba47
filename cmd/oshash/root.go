package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	oshash "github.com/oshash/oshash/pkg"
)

func newRootCommand() *cobra.Command {
	var benchFlag bool
	var configFlag string
	var verboseFlag int

	cmd := &cobra.Command{
		Use:   "oshash [flags] files...",
		Short: "Hash files using the OSHash partial-content algorithm",
		Long: "oshash fingerprints files from their size plus their first and last 64KB,\n" +
			"printing one \"<digest> <path>\" line per file. Files smaller than 128KB\n" +
			"cannot be hashed with this algorithm.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}

			level := verboseFlag
			if level == 0 {
				level = cfg.VerboseLevel
			}
			oshash.SetVerboseLevel(level)

			if len(args) == 0 {
				return errors.New("no files provided to hash")
			}

			if benchFlag {
				return runBench(cmd.OutOrStdout(), args, cfg.BenchIterations)
			}
			return processFiles(cmd.OutOrStdout(), args, true)
		},
	}

	cmd.Flags().BoolVarP(&benchFlag, "bench", "b", false, "Repeat the batch and report elapsed time instead of digests")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	cmd.Flags().CountVarP(&verboseFlag, "verbose", "v", "Increase verbosity (repeatable)")

	return cmd
}

// processFiles hashes each path in argument order. The first failure aborts
// the whole batch; skipping bad files and continuing is left to the caller's
// shell loop.
func processFiles(w io.Writer, paths []string, print bool) error {
	for _, path := range paths {
		start := time.Now()

		digest, err := oshash.HashFile(path)
		if err != nil {
			return fmt.Errorf("failed to hash file %s: %w", path, err)
		}

		oshash.VerboseLog(1, "hashed %s", path)
		oshash.VerboseLog(2, "hashing %s took %s", path, time.Since(start))

		if print {
			fmt.Fprintf(w, "%s %s\n", digest, path)
		}
	}

	return nil
}

// runBench repeats the whole batch and prints a single summary line in
// place of the per-file output.
func runBench(w io.Writer, paths []string, iterations int) error {
	start := time.Now()

	for i := 0; i < iterations; i++ {
		if err := processFiles(w, paths, false); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Processed %d files %dx in %s\n", len(paths), iterations, time.Since(start))
	return nil
}
