package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/eykd/fentarxiu-go/internal/domain"
	"github.com/eykd/fentarxiu-go/internal/rules"
)

type mockLister struct {
	files      []Entry
	folders    map[string][]Entry
	err        error
	gotRoot    string
	gotRecurse bool
	roots      []string
}

func (m *mockLister) Files(_ context.Context, root string, recursive bool) ([]Entry, error) {
	m.gotRoot, m.gotRecurse = root, recursive
	return m.files, m.err
}

func (m *mockLister) Subfolders(_ context.Context, root string) ([]Entry, error) {
	m.roots = append(m.roots, root)
	if m.err != nil {
		return nil, m.err
	}
	return m.folders[root], nil
}

// prefixChecker flags every name starting with "bad".
type prefixChecker struct {
	calls []string
}

func (c *prefixChecker) Check(text string) domain.Outcome {
	c.calls = append(c.calls, text)
	if strings.HasPrefix(text, "bad") {
		return domain.Outcome{Defects: []domain.Defect{domain.NotPDF{}}}
	}
	return domain.Outcome{}
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService(&prefixChecker{}, &prefixChecker{})
	if s.lister != nil {
		t.Error("lister should be nil without WithLister")
	}
	if s.logger == nil {
		t.Error("logger should default to a discarding logger")
	}
}

func TestNewService_Options(t *testing.T) {
	l := &mockLister{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s := NewService(&prefixChecker{}, &prefixChecker{}, WithLister(l), WithLogger(logger))
	if s.lister != l {
		t.Error("WithLister not applied")
	}
	if s.logger != logger {
		t.Error("WithLogger not applied")
	}
}

func TestService_CheckNames(t *testing.T) {
	files, folders := &prefixChecker{}, &prefixChecker{}
	s := NewService(files, folders)

	r, err := s.CheckNames(context.Background(), TargetFiles, []string{"ok", "bad", "ok2"})
	if err != nil {
		t.Fatalf("CheckNames() error = %v", err)
	}
	if r.Total() != 3 {
		t.Errorf("Total() = %d, want 3", r.Total())
	}
	failed := r.Failed()
	if len(failed) != 1 || failed[0].Path != "bad" {
		t.Errorf("Failed() = %+v, want only \"bad\"", failed)
	}
	if !reflect.DeepEqual(files.calls, []string{"ok", "bad", "ok2"}) {
		t.Errorf("file checker calls = %v", files.calls)
	}
	if len(folders.calls) != 0 {
		t.Errorf("folder checker should not be called, got %v", folders.calls)
	}
}

func TestService_CheckNames_FolderTarget(t *testing.T) {
	files, folders := &prefixChecker{}, &prefixChecker{}
	s := NewService(files, folders)

	if _, err := s.CheckNames(context.Background(), TargetFolders, []string{"Obra_Autor"}); err != nil {
		t.Fatalf("CheckNames() error = %v", err)
	}
	if len(files.calls) != 0 || len(folders.calls) != 1 {
		t.Errorf("calls: files=%v folders=%v", files.calls, folders.calls)
	}
}

func TestService_AuditFiles(t *testing.T) {
	l := &mockLister{files: []Entry{
		{Name: "a.pdf", Path: "a.pdf"},
		{Name: "bad.pdf", Path: "sub/bad.pdf"},
	}}
	s := NewService(&prefixChecker{}, &prefixChecker{}, WithLister(l))

	r, err := s.AuditFiles(context.Background(), "/archive", true)
	if err != nil {
		t.Fatalf("AuditFiles() error = %v", err)
	}
	if l.gotRoot != "/archive" || !l.gotRecurse {
		t.Errorf("lister called with (%q, %v)", l.gotRoot, l.gotRecurse)
	}
	if r.Target != TargetFiles {
		t.Errorf("Target = %q, want %q", r.Target, TargetFiles)
	}
	if got := r.Failed(); len(got) != 1 || got[0].Path != "sub/bad.pdf" {
		t.Errorf("Failed() = %+v", got)
	}
}

func TestService_AuditFolders_MultipleRoots(t *testing.T) {
	l := &mockLister{folders: map[string][]Entry{
		"one": {{Name: "Obra_A", Path: "Obra_A"}},
		"two": {{Name: "bad", Path: "bad"}, {Name: "Altra_B", Path: "Altra_B"}},
	}}
	folders := &prefixChecker{}
	s := NewService(&prefixChecker{}, folders, WithLister(l))

	r, err := s.AuditFolders(context.Background(), "one", "two")
	if err != nil {
		t.Fatalf("AuditFolders() error = %v", err)
	}
	if !reflect.DeepEqual(l.roots, []string{"one", "two"}) {
		t.Errorf("roots listed = %v", l.roots)
	}
	if !reflect.DeepEqual(folders.calls, []string{"Obra_A", "bad", "Altra_B"}) {
		t.Errorf("folder checker calls = %v", folders.calls)
	}
	if r.Total() != 3 || len(r.Failed()) != 1 {
		t.Errorf("Total()=%d Failed()=%d", r.Total(), len(r.Failed()))
	}
}

func TestService_ListerErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewService(&prefixChecker{}, &prefixChecker{}, WithLister(&mockLister{err: boom}))

	if _, err := s.AuditFiles(context.Background(), "x", false); !errors.Is(err, boom) {
		t.Errorf("AuditFiles() error = %v, want %v", err, boom)
	}
	if _, err := s.AuditFolders(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("AuditFolders() error = %v, want %v", err, boom)
	}
}

func TestService_NoLister(t *testing.T) {
	s := NewService(&prefixChecker{}, &prefixChecker{})
	if _, err := s.AuditFiles(context.Background(), "x", false); !errors.Is(err, ErrNoLister) {
		t.Errorf("AuditFiles() error = %v, want ErrNoLister", err)
	}
	if _, err := s.AuditFolders(context.Background(), "x"); !errors.Is(err, ErrNoLister) {
		t.Errorf("AuditFolders() error = %v, want ErrNoLister", err)
	}
}

func TestService_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &prefixChecker{}
	s := NewService(c, c)
	if _, err := s.CheckNames(ctx, TargetFiles, []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("CheckNames() error = %v, want context.Canceled", err)
	}
	if len(c.calls) != 0 {
		t.Errorf("checker called after cancellation: %v", c.calls)
	}
}

func TestService_LogsDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewService(&prefixChecker{}, &prefixChecker{}, WithLogger(logger))

	if _, err := s.CheckNames(context.Background(), TargetFiles, []string{"bad"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "path=bad") {
		t.Errorf("debug log missing path, got %q", buf.String())
	}
}

func TestService_WithRealCheckers(t *testing.T) {
	s := NewService(rules.NewFileChecker(domain.DefaultCatalogue()), rules.NewFolderChecker())

	r, err := s.CheckNames(context.Background(), TargetFiles, []string{"1000_Flauta.pdf", "1000_Oboe.pdf"})
	if err != nil {
		t.Fatal(err)
	}
	failed := r.Failed()
	if len(failed) != 1 || failed[0].Name != "1000_Oboe.pdf" {
		t.Fatalf("Failed() = %+v", failed)
	}
	want := domain.NameMismatch{Category: 1, Code: "00", Received: "Oboe", Expected: "Flauta"}
	if !reflect.DeepEqual(failed[0].Outcome.Defects, []domain.Defect{want}) {
		t.Errorf("defects = %+v, want %+v", failed[0].Outcome.Defects, want)
	}
}
