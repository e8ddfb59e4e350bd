package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eykd/fentarxiu-go/internal/audit"
	"github.com/eykd/fentarxiu-go/internal/domain"
	"github.com/eykd/fentarxiu-go/internal/messages"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// reportJSONResponse is the JSON output structure for the audit commands.
type reportJSONResponse struct {
	Results []resultJSON `json:"results"`
	Summary struct {
		Total  int `json:"total"`
		Failed int `json:"failed"`
	} `json:"summary"`
}

type resultJSON struct {
	Path       string           `json:"path"`
	Conforming bool             `json:"conforming"`
	Defects    []map[string]any `json:"defects"`
}

// defectJSON flattens a defect's fields next to its kind and rendered
// message.
func defectJSON(d domain.Defect) map[string]any {
	m := map[string]any{}
	if data, err := json.Marshal(d); err == nil {
		_ = json.Unmarshal(data, &m)
	}
	switch d := d.(type) {
	case domain.InvalidCharacter:
		m["char"] = string(d.Char)
	case domain.InvalidFolderCharacter:
		m["char"] = string(d.Char)
	}
	m["kind"] = string(d.Kind())
	m["message"] = messages.Render(d)
	return m
}

// formatReportJSON writes every result of r as JSON to w.
func formatReportJSON(w io.Writer, r *audit.Report) {
	out := reportJSONResponse{Results: make([]resultJSON, 0, len(r.Results))}
	for _, res := range r.Results {
		defects := make([]map[string]any, 0, len(res.Outcome.Defects))
		for _, d := range res.Outcome.Defects {
			defects = append(defects, defectJSON(d))
		}
		out.Results = append(out.Results, resultJSON{
			Path:       res.Path,
			Conforming: res.Outcome.Conforming(),
			Defects:    defects,
		})
	}
	out.Summary.Total = r.Total()
	out.Summary.Failed = len(r.Failed())
	writeJSON(w, out)
}

// entryLabel returns the heading word used for each failing entry.
func entryLabel(t audit.Target) string {
	if t == audit.TargetFolders {
		return "Carpeta"
	}
	return "Fitxer"
}

// formatReportLog renders the failing entries of r as report-log text.
func formatReportLog(r *audit.Report) string {
	var b strings.Builder
	label := entryLabel(r.Target)
	for _, res := range r.Failed() {
		fmt.Fprintf(&b, "%s: %s\n", label, res.Path)
		for _, line := range messages.Lines(res.Outcome.Defects) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatReportHuman writes the failing entries and a summary to w.
func formatReportHuman(w io.Writer, r *audit.Report) {
	fmt.Fprint(w, formatReportLog(r))

	validated, withErrors := messages.FilesValidated, messages.FilesWithErrors
	if r.Target == audit.TargetFolders {
		validated, withErrors = messages.FoldersValidated, messages.FoldersWithErrors
	}
	fmt.Fprintf(w, validated+"\n", r.Total())
	if failed := len(r.Failed()); failed > 0 {
		fmt.Fprintf(w, withErrors+"\n", failed)
	}
}
