package nbscribe

import "errors"

// Sentinel errors for pipeline operations.
var (
	ErrNoNotebooks     = errors.New("no notebook files provided")
	ErrNoGenerator     = errors.New("no text generator configured")
	ErrExtraction      = errors.New("notebook extraction failed")
	ErrUpstreamAI      = errors.New("text generation request failed")
	ErrEmptyCompletion = errors.New("text generation returned an empty completion")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrWriteOutput     = errors.New("failed to write output PDF")
)
