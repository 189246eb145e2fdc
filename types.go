package nbscribe

import (
	"path/filepath"
	"time"

	"github.com/nbscribe/nbscribe/internal/logger"
)

// Input contains one documentation-generation request.
type Input struct {
	Notebooks []string // Raw serialized notebook contents (required, at least one)
	Language  string   // Natural language for the generated documentation (e.g. "English")
}

// Result is the outcome of a successful generation run.
type Result struct {
	Documentation string // Final styled markdown returned to the caller
	PDFPath       string // Path of the rendered PDF (overwritten on every run)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	outputPath string
	scratchDir string
	scriptPath string
}

// Defaults mirror the layout the server ships with: scratch notebooks next
// to the extractor script, one PDF under output/.
const (
	defaultTimeout    = 60 * time.Second
	defaultOutputDir  = "output"
	defaultOutputFile = "documentation.pdf"
	defaultScratchDir = "scripts"
	defaultScript     = "scripts/process_notebook.py"
)

func defaultConfig() serviceConfig {
	return serviceConfig{
		timeout:    defaultTimeout,
		outputPath: filepath.Join(defaultOutputDir, defaultOutputFile),
		scratchDir: defaultScratchDir,
		scriptPath: defaultScript,
	}
}

// WithTimeout sets the browser rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("nbscribe: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithOutputPath sets the fixed path the rendered PDF is written to.
// Each successful run overwrites the previous file at this path.
func WithOutputPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cfg.outputPath = path
		}
	}
}

// WithScratchDir sets the directory notebook payloads are written to before
// the extractor script reads them.
func WithScratchDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.cfg.scratchDir = dir
		}
	}
}

// WithExtractorScript sets the path of the notebook extractor script.
func WithExtractorScript(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cfg.scriptPath = path
		}
	}
}

// WithExtractor injects a NotebookExtractor, replacing the default
// out-of-process script extractor.
func WithExtractor(e NotebookExtractor) Option {
	return func(s *Service) {
		s.extractor = e
	}
}

// WithGenerator sets the same TextGenerator for both transform stages.
func WithGenerator(g TextGenerator) Option {
	return func(s *Service) {
		s.draft = g
		s.style = g
	}
}

// WithGenerators sets separate TextGenerators for the drafting and styling
// stages. Either may be nil to leave that stage's generator unset.
func WithGenerators(draft, style TextGenerator) Option {
	return func(s *Service) {
		if draft != nil {
			s.draft = draft
		}
		if style != nil {
			s.style = style
		}
	}
}

// WithLogger attaches a logger for per-stage diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}
