package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "1.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var flags renameFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "jellyname [flags] <pattern> <directory>",
		Short: "Rename episode files to \"<pattern> SxxEyy\" for media servers",
		Long: `jellyname scans a directory for video files whose names carry a season and
episode marker such as S02E05 and renames each to "<pattern> S02E05.<ext>".

Every rename is confirmed interactively unless --yes is given. Answers are
read one line at a time: type y or n and press Enter. Any other line, such
as "yes", asks the question again. Closing the input (Ctrl-D) aborts the run
and Ctrl-C stops it even while a question is waiting.`,
		Example: `  jellyname "Show Name" ~/Downloads/show
  jellyname -r -y "Show Name" /media/tv/show`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, ctx, flags, args[0], args[1])
		},
	}
	rootCmd.SetVersionTemplate("jellyname version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.Flags().BoolVarP(&flags.autoApprove, "yes", "y", false, "Approve every rename without prompting")
	rootCmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "Descend into subdirectories")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "Show planned renames without touching files")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("jellyname version %s\n", version)
		},
	}
}
