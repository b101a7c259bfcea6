// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-toolkit CLI. Run without a
// subcommand it asks for a source folder and an operation interactively;
// the images, text and pdf subcommands perform the same operations from
// flags.
package main

import (
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pdf-toolkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger receives diagnostics. It is replaced in PersistentPreRunE once the
// verbosity is known.
var logger = zap.NewNop()

const (
	keyBackend   = "backend"
	keyLang      = "lang"
	keyHistoryDB = "history_db"
	keyVerbose   = "verbose"
)

// rootCmd is the base command for the pdf-toolkit CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-toolkit",
	Short: "Convert PDFs to images or OCR text, and images to PDF",
	Long: `pdf-toolkit converts between PDF documents and raster images and
extracts text from scanned PDFs with OCR.

Without a subcommand it prompts for a folder of PDFs and an operation:
  images  render every page of every PDF to output/images/page_<n>.png
  text    OCR every PDF into output/texts/<name>.txt
  pdf     combine a folder of PNG/JPEG images into output/pdfs/output.pdf

The output folder is created next to the PDF folder.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE:          runInteractive,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		l, err := newLogger(cfg.Verbose)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("configuration loaded",
			zap.String("backend", string(cfg.Backend)),
			zap.Strings("languages", cfg.OCRLanguages()),
			zap.String("history_db", cfg.HistoryDB))
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("backend", string(types.BackendFitz), "rasterizer backend: fitz or pdftoppm")
	flags.StringSlice("lang", nil, "OCR languages passed to tesseract, comma separated (default eng)")
	flags.String("history-db", "", "SQLite file recording conversion runs (disabled when empty)")
	flags.BoolP("verbose", "v", false, "print debug diagnostics to stderr")

	viper.BindPFlag(keyBackend, flags.Lookup("backend"))
	viper.BindPFlag(keyLang, flags.Lookup("lang"))
	viper.BindPFlag(keyHistoryDB, flags.Lookup("history-db"))
	viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))

	viper.SetEnvPrefix("PDF_TOOLKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the toolkit settings from flags and PDF_TOOLKIT_*
// environment variables. No config file is consulted.
func loadConfig() types.ToolkitConfig {
	return types.ToolkitConfig{
		Backend:   types.RasterBackend(viper.GetString(keyBackend)),
		Languages: splitLanguages(viper.GetStringSlice(keyLang)),
		HistoryDB: viper.GetString(keyHistoryDB),
		Verbose:   viper.GetBool(keyVerbose),
	}
}

// splitLanguages flattens language values that may hold several
// comma or space separated names, as PDF_TOOLKIT_LANG=eng,deu does.
func splitLanguages(values []string) []string {
	var langs []string
	for _, v := range values {
		langs = append(langs, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return langs
}

func main() {
	// Conversion failures are reported on the console; the process always
	// exits with status zero.
	_ = rootCmd.Execute()
}
