package nbscribe

import (
	"context"
	"fmt"
	"strings"
)

// Separators used when linearizing notebooks into the aggregate document.
const (
	cellSeparator     = "\n"
	notebookSeparator = "\n\n"
)

// linearizeNotebook flattens one extracted notebook into a single string:
// all markdown cells first, then all code cells, newline-joined. Original
// interleaving between markdown and code cells is not preserved, only the
// sequence order within each kind.
func linearizeNotebook(nb ExtractedNotebook) string {
	cells := make([]string, 0, len(nb.Markdown)+len(nb.Code))
	cells = append(cells, nb.Markdown...)
	cells = append(cells, nb.Code...)
	return strings.Join(cells, cellSeparator)
}

// aggregateNotebooks runs every payload through the extractor and joins the
// linearized notebooks with blank lines. The first extraction failure
// aborts the whole aggregation.
func aggregateNotebooks(ctx context.Context, extractor NotebookExtractor, notebooks []string) (string, error) {
	parts := make([]string, 0, len(notebooks))
	for i, raw := range notebooks {
		nb, err := extractor.Extract(ctx, i, raw)
		if err != nil {
			return "", fmt.Errorf("notebook %d: %w", i, err)
		}
		parts = append(parts, linearizeNotebook(nb))
	}
	return strings.Join(parts, notebookSeparator), nil
}
