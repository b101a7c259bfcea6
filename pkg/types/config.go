// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RasterBackend identifies the tool used to render PDF pages into images.
type RasterBackend string

const (
	// BackendFitz renders with MuPDF through go-fitz.
	BackendFitz RasterBackend = "fitz"
	// BackendPdftoppm renders with the poppler pdftoppm binary.
	BackendPdftoppm RasterBackend = "pdftoppm"
)

// DefaultLanguages is the OCR language list used when none is configured.
var DefaultLanguages = []string{"eng"}

// ToolkitConfig holds the settings shared by every conversion command.
type ToolkitConfig struct {
	// Backend selects the rasterizer: fitz or pdftoppm.
	Backend RasterBackend `json:"backend" yaml:"backend"`

	// Languages lists the OCR languages passed to tesseract (e.g. "eng", "deu").
	Languages []string `json:"languages" yaml:"languages"`

	// HistoryDB is the SQLite file that records conversion runs. Empty
	// disables run history.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// Verbose enables debug-level diagnostics on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// OCRLanguages returns the configured languages, or DefaultLanguages when
// none are set.
func (c ToolkitConfig) OCRLanguages() []string {
	if len(c.Languages) == 0 {
		return DefaultLanguages
	}
	return c.Languages
}
