package nbscribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Mock implementations for testing.

type mockGenerator struct {
	prompts []string
	output  string
	err     error
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

type mockPDFConverter struct {
	called    bool
	inputHTML string
	output    []byte
	err       error
	closed    bool
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	m.closed = true
	return nil
}

// Test option for dependency injection (not exported).

func withPDFConverter(p pdfConverter) Option {
	return func(s *Service) {
		s.pdfConverter = p
	}
}

func newPipelineService(t *testing.T, ex NotebookExtractor, draft, style TextGenerator, pdf pdfConverter) (*Service, string) {
	t.Helper()
	outPath := filepath.Join(t.TempDir(), "documentation.pdf")
	svc := New(
		WithExtractor(ex),
		WithGenerators(draft, style),
		withPDFConverter(pdf),
		WithOutputPath(outPath),
	)
	return svc, outPath
}

func TestGenerateEmptyNotebooks(t *testing.T) {
	svc, _ := newPipelineService(t, &fakeExtractor{}, &mockGenerator{}, &mockGenerator{}, &mockPDFConverter{})

	for _, notebooks := range [][]string{nil, {}} {
		_, err := svc.Generate(context.Background(), Input{Notebooks: notebooks, Language: "English"})
		if !errors.Is(err, ErrNoNotebooks) {
			t.Errorf("Generate(%v) error = %v, want ErrNoNotebooks", notebooks, err)
		}
	}
}

func TestGenerateNoGenerator(t *testing.T) {
	svc := New(WithExtractor(&fakeExtractor{}), withPDFConverter(&mockPDFConverter{}))

	_, err := svc.Generate(context.Background(), Input{Notebooks: []string{"nb"}})
	if !errors.Is(err, ErrNoGenerator) {
		t.Errorf("error = %v, want ErrNoGenerator", err)
	}
}

func TestGenerateHappyPath(t *testing.T) {
	ex := &fakeExtractor{notebooks: []ExtractedNotebook{
		{Markdown: []string{"# Intro"}, Code: []string{"print(1)"}},
	}}
	draft := &mockGenerator{output: "draft documentation text"}
	style := &mockGenerator{output: "# Styled Documentation\n\nContent."}
	pdf := &mockPDFConverter{}

	svc, outPath := newPipelineService(t, ex, draft, style, pdf)

	res, err := svc.Generate(context.Background(), Input{
		Notebooks: []string{`{"cells": []}`},
		Language:  "English",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Drafting prompt carries the language and the aggregate document.
	if len(draft.prompts) != 1 {
		t.Fatalf("draft called %d times, want 1", len(draft.prompts))
	}
	if !strings.Contains(draft.prompts[0], "Language the documentation should be in: English") {
		t.Error("draft prompt missing language line")
	}
	if !strings.Contains(draft.prompts[0], "# Intro\nprint(1)") {
		t.Error("draft prompt missing aggregate document")
	}

	// Styling prompt carries the draft verbatim.
	if len(style.prompts) != 1 {
		t.Fatalf("style called %d times, want 1", len(style.prompts))
	}
	if !strings.Contains(style.prompts[0], draft.output) {
		t.Error("style prompt missing draft text")
	}

	// Response is the styled output, not the draft.
	if res.Documentation != style.output {
		t.Errorf("Documentation = %q, want styled output", res.Documentation)
	}
	if res.PDFPath != outPath {
		t.Errorf("PDFPath = %q, want %q", res.PDFPath, outPath)
	}

	// Rendered HTML is the styled markdown inside the document shell.
	if !pdf.called {
		t.Fatal("PDF converter not called")
	}
	if !strings.Contains(pdf.inputHTML, "<!DOCTYPE html>") {
		t.Error("PDF input missing document shell")
	}
	if !strings.Contains(pdf.inputHTML, "Styled Documentation") {
		t.Error("PDF input missing styled content")
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output PDF not written: %v", err)
	}
	if string(data) != "%PDF-1.4 mock" {
		t.Errorf("PDF content = %q", data)
	}
}

func TestGenerateOverwritesPDF(t *testing.T) {
	ex := &fakeExtractor{notebooks: []ExtractedNotebook{{Markdown: []string{"m"}}}}
	pdf := &mockPDFConverter{output: []byte("first")}
	svc, outPath := newPipelineService(t, ex,
		&mockGenerator{output: "draft"}, &mockGenerator{output: "styled"}, pdf)

	input := Input{Notebooks: []string{"nb"}, Language: "English"}
	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	pdf.output = []byte("second")
	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("PDF content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(outPath))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir holds %d files, want exactly 1", len(entries))
	}
}

func TestGenerateExtractionFailure(t *testing.T) {
	ex := &fakeExtractor{err: ErrExtraction}
	pdf := &mockPDFConverter{}
	svc, outPath := newPipelineService(t, ex,
		&mockGenerator{output: "draft"}, &mockGenerator{output: "styled"}, pdf)

	_, err := svc.Generate(context.Background(), Input{Notebooks: []string{"nb"}})
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("error = %v, want ErrExtraction", err)
	}
	if pdf.called {
		t.Error("PDF converter called after extraction failure")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("PDF written despite extraction failure")
	}
}

func TestGenerateDraftFailureSkipsStyling(t *testing.T) {
	ex := &fakeExtractor{notebooks: []ExtractedNotebook{{Code: []string{"c"}}}}
	draft := &mockGenerator{err: ErrUpstreamAI}
	style := &mockGenerator{output: "styled"}
	pdf := &mockPDFConverter{}
	svc, outPath := newPipelineService(t, ex, draft, style, pdf)

	_, err := svc.Generate(context.Background(), Input{Notebooks: []string{"nb"}})
	if !errors.Is(err, ErrUpstreamAI) {
		t.Fatalf("error = %v, want ErrUpstreamAI", err)
	}
	if len(style.prompts) != 0 {
		t.Error("styling stage invoked after drafting failure")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("PDF written despite drafting failure")
	}
}

func TestGenerateStyleFailure(t *testing.T) {
	ex := &fakeExtractor{notebooks: []ExtractedNotebook{{Code: []string{"c"}}}}
	svc, outPath := newPipelineService(t, ex,
		&mockGenerator{output: "draft"}, &mockGenerator{err: ErrUpstreamAI}, &mockPDFConverter{})

	_, err := svc.Generate(context.Background(), Input{Notebooks: []string{"nb"}})
	if !errors.Is(err, ErrUpstreamAI) {
		t.Fatalf("error = %v, want ErrUpstreamAI", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("PDF written despite styling failure")
	}
}

func TestGeneratePDFFailure(t *testing.T) {
	ex := &fakeExtractor{notebooks: []ExtractedNotebook{{Code: []string{"c"}}}}
	pdf := &mockPDFConverter{err: ErrPDFGeneration}
	svc, outPath := newPipelineService(t, ex,
		&mockGenerator{output: "draft"}, &mockGenerator{output: "styled"}, pdf)

	_, err := svc.Generate(context.Background(), Input{Notebooks: []string{"nb"}})
	if !errors.Is(err, ErrPDFGeneration) {
		t.Fatalf("error = %v, want ErrPDFGeneration", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("PDF written despite rendering failure")
	}
}

func TestServiceClose(t *testing.T) {
	pdf := &mockPDFConverter{}
	svc := New(withPDFConverter(pdf))

	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !pdf.closed {
		t.Error("Close() did not release the PDF converter")
	}
}

func TestWithGeneratorSetsBothStages(t *testing.T) {
	g := &mockGenerator{output: "same"}
	svc := New(WithGenerator(g), withPDFConverter(&mockPDFConverter{}))

	if svc.draft != TextGenerator(g) || svc.style != TextGenerator(g) {
		t.Error("WithGenerator should set both stages")
	}
}
