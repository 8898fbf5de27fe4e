// Package dayservice provides the concrete implementation of
// pipeline.DayService. It wires together the real filesystem steps (input
// creation, template copy, dispatch splice) for the scaffolding pipeline.
package dayservice

import (
	"context"
	"os"
	"path/filepath"

	"advent/internal/config"
	"advent/internal/errors"
	"advent/internal/fs"
	"advent/internal/pipeline"
	"advent/internal/splice"
)

// Service is the production implementation of pipeline.DayService.
type Service struct {
	fsys fs.FS
	root string
	cfg  config.Config
}

// New creates a Service rooted at the workspace root.
func New(fsys fs.FS, root string, cfg config.Config) *Service {
	return &Service{
		fsys: fsys,
		root: root,
		cfg:  cfg,
	}
}

// EnsureInput creates the day's empty input file if missing.
// An existing file is left byte-for-byte unchanged.
func (s *Service) EnsureInput(ctx context.Context, st *pipeline.State) error {
	rel := filepath.Join(s.cfg.InputDir, st.Day.InputFile())
	created, err := fs.Touch(s.fsys, filepath.Join(s.root, rel))
	if err != nil {
		return errors.Wrap(errors.EIO, "failed to create "+rel, err)
	}
	st.InputPath = rel
	st.InputCreated = created
	return nil
}

// EnsureExample creates the day's empty example input file if missing.
// An existing file is left byte-for-byte unchanged.
func (s *Service) EnsureExample(ctx context.Context, st *pipeline.State) error {
	rel := filepath.Join(s.cfg.InputDir, st.Day.ExampleFile())
	created, err := fs.Touch(s.fsys, filepath.Join(s.root, rel))
	if err != nil {
		return errors.Wrap(errors.EIO, "failed to create "+rel, err)
	}
	st.ExamplePath = rel
	st.ExampleCreated = created
	return nil
}

// CopyTemplate copies the day template over the day's source file.
// An existing source file is overwritten without prompting.
func (s *Service) CopyTemplate(ctx context.Context, st *pipeline.State) error {
	rel := filepath.Join(s.cfg.SourceDir, st.Day.SourceFile())
	src := s.cfg.TemplatePath(s.root)

	if _, err := s.fsys.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return errors.NewWithDetails(
				errors.EFileNotFound,
				"template "+s.cfg.Template+" not found; run 'advent init' to create it",
				map[string]string{"path": s.cfg.Template},
			)
		}
		return errors.Wrap(errors.EIO, "failed to stat "+s.cfg.Template, err)
	}

	if err := fs.CopyFile(s.fsys, src, filepath.Join(s.root, rel), 0o644); err != nil {
		return errors.Wrap(errors.EIO, "failed to copy "+s.cfg.Template+" to "+rel, err)
	}
	st.SourcePath = rel
	return nil
}

// RegisterDay splices the day's marker line into the dispatch file,
// immediately after the first line containing the previous day's marker.
// Runs last so a failed splice never leaves a registered day without files.
func (s *Service) RegisterDay(ctx context.Context, st *pipeline.State) error {
	anchor := (st.Day - 1).Marker()
	if err := splice.InsertAfter(s.fsys, s.cfg.DispatchPath(s.root), anchor, st.Day.Line()); err != nil {
		return err
	}
	st.DispatchPath = s.cfg.Dispatch
	st.Anchor = anchor
	return nil
}
