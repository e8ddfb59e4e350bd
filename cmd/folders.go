package cmd

import (
	"github.com/spf13/cobra"
)

// NewFoldersCmd creates the folders command with the given runner and log writer.
func NewFoldersCmd(runner AuditRunner, writer LogWriter) *cobra.Command {
	var jsonFlag bool
	var logPath string

	cmd := &cobra.Command{
		Use:          "folders DIR...",
		Short:        "Validate the work folder names directly inside one or more directories",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := GetSettings()
			if logPath == "" {
				logPath = s.Log
			}

			r, err := runner.AuditFolders(cmd.Context(), args...)
			if err != nil {
				return &ContextError{Op: "folders", Err: err}
			}
			return emitReport(cmd, r, reportOptions{
				json:    jsonFlag || GetJSON() || s.JSON,
				logPath: logPath,
				writer:  writer,
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&logPath, "log", "", "Write the defects found to this file")

	return cmd
}
