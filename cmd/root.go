package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GuideToIceland/setup/internal/logger"
	"github.com/GuideToIceland/setup/internal/onboard"
	"github.com/GuideToIceland/setup/internal/terminal"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the onboarding command itself: invoked bare (or with one
// repository name) it runs the whole pipeline.
var rootCmd = &cobra.Command{
	Use:   "setup [repository]",
	Short: "Set up this machine for GuideToIceland development",
	Long: `setup provisions an SSH key, walks you through enrolling it with GitHub,
verifies that authentication works, installs the standard developer tooling
and clones the requested repository (the monorepo by default) with its git
hooks installed.

Rerunning setup after a failure is safe: an existing key is never touched,
the shell startup file is extended at most once and the installers overwrite
their own binaries.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		repoArg := ""
		if len(args) > 0 {
			repoArg = args[0]
		}

		// Answers must come from the controlling terminal; stdin may be a
		// piped script body.
		term, err := terminal.Open()
		if err != nil {
			return err
		}
		defer term.Close()

		pipeline, err := onboard.New(repoArg, term)
		if err != nil {
			return err
		}
		return pipeline.Execute()
	},
}

// Execute initializes flags, registers subcommands, and runs the CLI.
// Any fatal pipeline error has already printed its diagnostics; the
// non-zero exit code is part of the contract.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(doctorCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
