// Package nbscribe turns uploaded notebook files into narrative PDF
// documentation.
//
// The pipeline is strictly sequential per request:
//
//  1. Extraction: each raw notebook payload is handed to a
//     NotebookExtractor, which returns its markdown and code cells.
//  2. Aggregation: cells are linearized (markdown first, then code) and all
//     notebooks are joined into one aggregate document.
//  3. Drafting: the aggregate document is embedded in a fixed instructional
//     prompt and sent to a text-generation API.
//  4. Styling: the draft is sent through a second prompt that restructures
//     it as formatted markdown without altering its content.
//  5. Rendering: the styled markdown is converted to HTML (Goldmark), set
//     into a fixed document shell, and printed to an A4 PDF by headless
//     Chrome (go-rod).
//
// The rendered PDF is written to a single fixed path; every successful run
// overwrites the previous file. Concurrent runs sharing one Service race on
// that path and on the scratch notebook files - last writer wins.
//
// Basic usage:
//
//	svc := nbscribe.New(
//		nbscribe.WithGenerator(client),
//		nbscribe.WithOutputPath("output/documentation.pdf"),
//	)
//	defer svc.Close()
//
//	res, err := svc.Generate(ctx, nbscribe.Input{
//		Notebooks: []string{rawNotebook},
//		Language:  "English",
//	})
package nbscribe
