package nbscribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbscribe/nbscribe/internal/logger"
)

// Service orchestrates the notebook-to-documentation pipeline.
type Service struct {
	cfg           serviceConfig
	log           *logger.Logger
	extractor     NotebookExtractor
	draft         TextGenerator
	style         TextGenerator
	htmlConverter htmlConverter
	pdfConverter  pdfConverter
}

// New creates a Service with default configuration. Text generators have no
// default and must be injected (e.g. WithGenerator); everything else can be
// customized through options.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:           defaultConfig(),
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.extractor == nil {
		s.extractor = newScriptExtractor(s.cfg.scriptPath, s.cfg.scratchDir)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline for one request: extraction, aggregation,
// drafting, styling, rendering, and the final PDF write. The stages are
// strictly sequential; the first failure aborts the run and no partial side
// effects are rolled back.
func (s *Service) Generate(ctx context.Context, input Input) (Result, error) {
	if len(input.Notebooks) == 0 {
		return Result{}, ErrNoNotebooks
	}
	if s.draft == nil || s.style == nil {
		return Result{}, ErrNoGenerator
	}

	document, err := aggregateNotebooks(ctx, s.extractor, input.Notebooks)
	if err != nil {
		return Result{}, err
	}
	s.logStage("notebooks aggregated", "notebooks", len(input.Notebooks), "chars", len(document))

	draftPrompt, err := buildDraftPrompt(document, input.Language)
	if err != nil {
		return Result{}, err
	}
	draftText, err := s.draft.GenerateText(ctx, draftPrompt)
	if err != nil {
		return Result{}, fmt.Errorf("drafting stage: %w", err)
	}
	s.logStage("draft generated", "chars", len(draftText))

	stylePrompt, err := buildStylePrompt(draftText)
	if err != nil {
		return Result{}, err
	}
	styledText, err := s.style.GenerateText(ctx, stylePrompt)
	if err != nil {
		return Result{}, fmt.Errorf("styling stage: %w", err)
	}
	s.logStage("styled documentation generated", "chars", len(styledText))

	htmlFragment, err := s.htmlConverter.ToHTML(ctx, normalizeMarkdown(styledText))
	if err != nil {
		return Result{}, fmt.Errorf("converting to HTML: %w", err)
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, wrapDocumentHTML(htmlFragment))
	if err != nil {
		return Result{}, fmt.Errorf("converting to PDF: %w", err)
	}

	if err := s.writePDF(pdfBytes); err != nil {
		return Result{}, err
	}
	s.logStage("PDF written", "path", s.cfg.outputPath, "bytes", len(pdfBytes))

	return Result{
		Documentation: styledText,
		PDFPath:       s.cfg.outputPath,
	}, nil
}

// OutputPath returns the fixed path the rendered PDF is written to.
func (s *Service) OutputPath() string {
	return s.cfg.outputPath
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// writePDF overwrites the file at the fixed output path. Only one PDF is
// retained process-wide; concurrent runs race on this path.
func (s *Service) writePDF(pdf []byte) error {
	if dir := filepath.Dir(s.cfg.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: creating output dir: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(s.cfg.outputPath, pdf, 0o640); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func (s *Service) logStage(msg string, keysAndValues ...any) {
	if s.log != nil {
		s.log.Info(msg, keysAndValues...)
	}
}
