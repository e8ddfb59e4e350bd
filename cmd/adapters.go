package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eykd/fentarxiu-go/internal/audit"
	"github.com/eykd/fentarxiu-go/internal/domain"
	"github.com/eykd/fentarxiu-go/internal/fs"
	"github.com/eykd/fentarxiu-go/internal/lock"
	"github.com/eykd/fentarxiu-go/internal/rules"
)

// AuditRunner abstracts the audit.Service methods used by the commands.
type AuditRunner interface {
	CheckNames(ctx context.Context, target audit.Target, names []string) (*audit.Report, error)
	AuditFiles(ctx context.Context, root string, recursive bool) (*audit.Report, error)
	AuditFolders(ctx context.Context, roots ...string) (*audit.Report, error)
}

// LogWriter abstracts writing the report log.
type LogWriter interface {
	WriteLog(ctx context.Context, path, content string) error
}

// --- serviceRunner ---

// serviceRunner builds an audit.Service from the settings in effect when a
// command runs, so flags and config are applied before wiring.
type serviceRunner struct {
	catalogue *domain.Catalogue
}

func (r *serviceRunner) service() *audit.Service {
	return audit.NewService(
		rules.NewFileChecker(r.catalogue),
		rules.NewFolderChecker(),
		audit.WithLister(&fs.OSLister{SkipHidden: GetSettings().SkipHidden}),
		audit.WithLogger(logger),
	)
}

func (r *serviceRunner) CheckNames(ctx context.Context, target audit.Target, names []string) (*audit.Report, error) {
	return r.service().CheckNames(ctx, target, names)
}

func (r *serviceRunner) AuditFiles(ctx context.Context, root string, recursive bool) (*audit.Report, error) {
	return r.service().AuditFiles(ctx, root, recursive)
}

func (r *serviceRunner) AuditFolders(ctx context.Context, roots ...string) (*audit.Report, error) {
	return r.service().AuditFolders(ctx, roots...)
}

// --- lockedLogWriter ---

// lockedLogWriter writes the report log while holding an advisory lock on
// a sibling .lock file.
type lockedLogWriter struct {
	writer fs.OSWriter
}

func (w *lockedLogWriter) WriteLog(ctx context.Context, path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	l := lock.NewFromPath(lock.PathFor(path))
	return l.Do(ctx, func() error {
		return w.writer.WriteFile(ctx, path, content)
	})
}
