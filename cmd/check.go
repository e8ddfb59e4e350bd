package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/fentarxiu-go/internal/audit"
	"github.com/eykd/fentarxiu-go/internal/messages"
)

// reportOptions controls how an audit report is emitted.
type reportOptions struct {
	json    bool
	logPath string
	writer  LogWriter
}

// emitReport writes the report log when requested, prints the report and
// returns a DefectsDetectedError if any name failed.
func emitReport(cmd *cobra.Command, r *audit.Report, opts reportOptions) error {
	if opts.logPath != "" {
		if err := opts.writer.WriteLog(cmd.Context(), opts.logPath, formatReportLog(r)); err != nil {
			return &ContextError{Op: "writing log", Path: opts.logPath, Err: err}
		}
		logger.Debug("log written", "path", opts.logPath)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		formatReportJSON(out, r)
	} else {
		formatReportHuman(out, r)
		if opts.logPath != "" {
			fmt.Fprintf(out, messages.LogSaved+"\n", opts.logPath)
		}
	}

	if failed := len(r.Failed()); failed > 0 {
		return &DefectsDetectedError{Total: r.Total(), Failed: failed}
	}
	return nil
}

// NewCheckCmd creates the check command with the given runner.
func NewCheckCmd(runner AuditRunner) *cobra.Command {
	var jsonFlag bool
	var folder bool

	cmd := &cobra.Command{
		Use:          "check NAME...",
		Short:        "Validate file or folder names given on the command line",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := audit.TargetFiles
			if folder {
				target = audit.TargetFolders
			}
			r, err := runner.CheckNames(cmd.Context(), target, args)
			if err != nil {
				return &ContextError{Op: "check", Err: err}
			}
			return emitReport(cmd, r, reportOptions{json: jsonFlag || GetJSON() || GetSettings().JSON})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&folder, "folder", false, "Validate the names as work folder names")

	return cmd
}
