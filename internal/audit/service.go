// Package audit runs the naming checkers over names listed from an archive.
package audit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eykd/fentarxiu-go/internal/domain"
)

// ErrNoLister is returned when a directory audit is requested from a
// service constructed without a Lister.
var ErrNoLister = errors.New("no archive lister configured")

// Entry is one name found in the archive together with the path shown to
// people reading the report.
type Entry struct {
	Name string
	Path string
}

// Lister abstracts enumerating names in the archive.
type Lister interface {
	Files(ctx context.Context, root string, recursive bool) ([]Entry, error)
	Subfolders(ctx context.Context, root string) ([]Entry, error)
}

// Checker abstracts validating one name.
type Checker interface {
	Check(text string) domain.Outcome
}

// Target says which naming grammar a report was checked against.
type Target string

const (
	// TargetFiles marks a report over sheet filenames.
	TargetFiles Target = "files"
	// TargetFolders marks a report over work folder names.
	TargetFolders Target = "folders"
)

// Result is the outcome of checking one entry.
type Result struct {
	Entry
	Outcome domain.Outcome
}

// Report holds every result of an audit, in listing order.
type Report struct {
	Target  Target
	Results []Result
}

// Total returns the number of names checked.
func (r *Report) Total() int {
	return len(r.Results)
}

// Failed returns the non-conforming results.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Outcome.Conforming() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Service audits archive names with a file checker and a folder checker.
type Service struct {
	lister  Lister
	files   Checker
	folders Checker
	logger  *slog.Logger
}

// ServiceOption configures optional Service dependencies.
type ServiceOption func(*Service)

// WithLister sets the archive lister used by AuditFiles and AuditFolders.
func WithLister(l Lister) ServiceOption {
	return func(s *Service) { s.lister = l }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a Service that checks filenames with files and folder
// names with folders.
func NewService(files, folders Checker, opts ...ServiceOption) *Service {
	s := &Service{
		files:   files,
		folders: folders,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckNames checks names given directly, without listing the archive.
func (s *Service) CheckNames(ctx context.Context, target Target, names []string) (*Report, error) {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = Entry{Name: n, Path: n}
	}
	return s.run(ctx, target, entries)
}

// AuditFiles checks every filename under root, descending into
// subdirectories when recursive is set.
func (s *Service) AuditFiles(ctx context.Context, root string, recursive bool) (*Report, error) {
	if s.lister == nil {
		return nil, ErrNoLister
	}
	entries, err := s.lister.Files(ctx, root, recursive)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("listed files", "root", root, "recursive", recursive, "count", len(entries))
	return s.run(ctx, TargetFiles, entries)
}

// AuditFolders checks the direct child folder names of every root.
func (s *Service) AuditFolders(ctx context.Context, roots ...string) (*Report, error) {
	if s.lister == nil {
		return nil, ErrNoLister
	}
	var entries []Entry
	for _, root := range roots {
		sub, err := s.lister.Subfolders(ctx, root)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("listed folders", "root", root, "count", len(sub))
		entries = append(entries, sub...)
	}
	return s.run(ctx, TargetFolders, entries)
}

func (s *Service) run(ctx context.Context, target Target, entries []Entry) (*Report, error) {
	checker := s.files
	if target == TargetFolders {
		checker = s.folders
	}

	report := &Report{Target: target, Results: make([]Result, 0, len(entries))}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := checker.Check(e.Name)
		s.logger.Debug("checked", "path", e.Path, "defects", len(out.Defects))
		report.Results = append(report.Results, Result{Entry: e, Outcome: out})
	}
	return report, nil
}
