// Package config defines core configuration types for markscan.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor used when extracting HTML from
// Markdown files.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// DefaultMaxFileSize is the default per-file size limit (8 MiB).
const DefaultMaxFileSize = 8 << 20

// Config is the root configuration structure for markscan.
type Config struct {
	// RawTextElements lists elements whose bodies are scanned as raw text.
	RawTextElements []string `yaml:"raw_text_elements"`

	// Extensions is the set of file extensions considered during discovery.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Markdown enables scanning raw HTML embedded in Markdown files.
	Markdown *bool `yaml:"markdown,omitempty"`

	// Flavor is the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// MaxFileSize is the per-file size limit in bytes; a negative value
	// disables it and 0 keeps the inherited limit.
	MaxFileSize int64 `yaml:"max_file_size"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Summary appends aggregate statistics to text output.
	Summary bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	markdown := true
	return &Config{
		RawTextElements: []string{"script", "style", "textarea"},
		Extensions:      []string{".html", ".htm", ".xhtml", ".xml", ".svg", ".md", ".markdown"},
		Markdown:        &markdown,
		Flavor:          FlavorGFM,
		MaxFileSize:     DefaultMaxFileSize,
		Format:          FormatText,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}

// MarkdownEnabled reports whether Markdown extraction is on (default true).
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown == nil || *c.Markdown
}
