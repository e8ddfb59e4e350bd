package cmd

import (
	"github.com/spf13/cobra"
)

// NewFilesCmd creates the files command with the given runner and log writer.
func NewFilesCmd(runner AuditRunner, writer LogWriter) *cobra.Command {
	var jsonFlag bool
	var recursive bool
	var logPath string

	cmd := &cobra.Command{
		Use:          "files DIR",
		Short:        "Validate the sheet filenames inside a directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := GetSettings()
			if !cmd.Flags().Changed("recursive") {
				recursive = s.Recursive
			}
			if logPath == "" {
				logPath = s.Log
			}

			r, err := runner.AuditFiles(cmd.Context(), args[0], recursive)
			if err != nil {
				return &ContextError{Op: "files", Path: args[0], Err: err}
			}
			return emitReport(cmd, r, reportOptions{
				json:    jsonFlag || GetJSON() || s.JSON,
				logPath: logPath,
				writer:  writer,
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().StringVar(&logPath, "log", "", "Write the defects found to this file")

	return cmd
}
