package nbscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExtractedNotebook holds the textual cells of one notebook, in original
// cell order within each kind.
type ExtractedNotebook struct {
	Markdown []string `json:"markdown"`
	Code     []string `json:"code"`
}

// NotebookExtractor turns a raw notebook payload into its markdown and code
// cells. Implementations may parse in-process or delegate to an external
// tool; the pipeline treats extraction as a pure function of the payload.
type NotebookExtractor interface {
	Extract(ctx context.Context, index int, raw string) (ExtractedNotebook, error)
}

// Compile-time interface check
var _ NotebookExtractor = (*scriptExtractor)(nil)

// scriptExtractor invokes an external Python script that reads a notebook
// file and prints {"markdown": [...], "code": [...]} as JSON on stdout.
type scriptExtractor struct {
	scriptPath string
	scratchDir string
	python     string
}

// newScriptExtractor creates a scriptExtractor. The scratch directory is
// created on first use.
func newScriptExtractor(scriptPath, scratchDir string) *scriptExtractor {
	return &scriptExtractor{
		scriptPath: scriptPath,
		scratchDir: scratchDir,
		python:     "python3",
	}
}

// Extract writes the payload to a scratch file and runs the extractor
// script on it. Scratch files are deliberately not removed afterwards: the
// next request for the same index overwrites them, and leftover files make
// failed extractions inspectable.
func (e *scriptExtractor) Extract(ctx context.Context, index int, raw string) (ExtractedNotebook, error) {
	var nb ExtractedNotebook

	if err := os.MkdirAll(e.scratchDir, 0o750); err != nil {
		return nb, fmt.Errorf("%w: creating scratch dir: %v", ErrExtraction, err)
	}

	scratchPath := filepath.Join(e.scratchDir, fmt.Sprintf("uploaded_notebook_%d.ipynb", index))
	if err := os.WriteFile(scratchPath, []byte(raw), 0o600); err != nil {
		return nb, fmt.Errorf("%w: writing scratch file: %v", ErrExtraction, err)
	}

	cmd := exec.CommandContext(ctx, e.python, e.scriptPath, scratchPath) // #nosec G204 -- script path is operator-provided config
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nb, fmt.Errorf("%w: %s", ErrExtraction, detail)
	}

	// The script prints a plain error string instead of JSON when it cannot
	// parse the notebook, so a decode failure is an extraction failure.
	if err := json.Unmarshal(out, &nb); err != nil {
		return nb, fmt.Errorf("%w: malformed extractor output: %v", ErrExtraction, err)
	}

	return nb, nil
}
