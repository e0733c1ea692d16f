package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finanalyzer/finanalyzer/internal/api"
	"github.com/finanalyzer/finanalyzer/internal/config"
	"github.com/finanalyzer/finanalyzer/internal/models"
	"github.com/finanalyzer/finanalyzer/internal/parser"
	"github.com/finanalyzer/finanalyzer/internal/writer"
)

const version = "1.0.0"

var (
	cfgFile string

	convertProfile  string
	convertPassword string
	convertOutput   string
	convertFormat   string
	convertMetadata bool

	serveAddr string
)

var rootCmd = &cobra.Command{
	Use:     "finanalyzer",
	Short:   "Convert bank statement PDFs into clean CSV/Excel tables",
	Version: version,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <statement.pdf> [statement2.pdf ...]",
	Short: "Extract transactions from statement PDFs",
	Long: `Extract transactions from bank statement PDFs and write them as
CSV or Excel files.

Profiles:
  kotak    - Kotak Mahindra Bank (table-oriented extraction)
  generic  - Generic / other bank (line-oriented fallback)

When --profile is omitted the profile is detected from the document,
falling back to generic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		profile, err := resolveProfile(convertProfile, cfg)
		if err != nil {
			return err
		}

		for _, inputPath := range args {
			if err := convertFile(inputPath, profile, cfg, logger); err != nil {
				return fmt.Errorf("processing %s: %w", inputPath, err)
			}
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement conversion HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := api.NewServer(cfg, logger)
		logger.Info("starting server", "addr", addr)
		return srv.Listen(addr)
	},
}

func convertFile(inputPath string, profile models.Profile, cfg *config.Config, logger *log.Logger) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	logger.Info("processing", "file", inputPath)

	st, err := parser.ExtractFile(inputPath, profile, convertPassword, cfg.TableConfig(), logger)
	if err != nil {
		return err
	}

	if len(st.Transactions) == 0 {
		logger.Warn("no transactions found; check the password or try --profile=generic")
	}

	outPath := convertOutput
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + convertFormat
	}

	switch convertFormat {
	case "csv":
		w := &writer.CSVWriter{IncludeMetadata: convertMetadata}
		if err := w.WriteToFile(outPath, st); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	case "xlsx":
		w := &writer.XLSXWriter{IncludeMetadata: convertMetadata}
		if err := w.WriteToFile(outPath, st); err != nil {
			return fmt.Errorf("XLSX write failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q: use csv or xlsx", convertFormat)
	}

	logger.Info("done",
		"output", outPath,
		"transactions", len(st.Transactions),
		"spends", display(st.Transactions.TotalDebit(), cfg.Currency),
		"income", display(st.Transactions.TotalCredit(), cfg.Currency),
	)
	if st.AccountNumber != "" {
		logger.Info("statement", "account", st.AccountNumber, "period", st.Period)
	}
	return nil
}

func resolveProfile(flagValue string, cfg *config.Config) (models.Profile, error) {
	switch strings.ToLower(flagValue) {
	case "":
		return cfg.DefaultProfile, nil
	case "kotak", "kotak-mahindra":
		return models.ProfileKotak, nil
	case "generic", "other":
		return models.ProfileGeneric, nil
	default:
		return "", fmt.Errorf("unknown profile %q: use kotak or generic", flagValue)
	}
}

func display(d decimal.Decimal, currency string) string {
	return money.New(d.Shift(2).IntPart(), currency).Display()
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "finanalyzer",
	})
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")

	convertCmd.Flags().StringVar(&convertProfile, "profile", "", "Extraction profile: kotak or generic (auto-detected if omitted)")
	convertCmd.Flags().StringVar(&convertPassword, "password", "", "PDF password (leave empty if the file has none)")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "Output file path (defaults to input filename with the format extension)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "csv", "Output format: csv or xlsx")
	convertCmd.Flags().BoolVar(&convertMetadata, "metadata", true, "Include statement metadata rows in the output")

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")

	rootCmd.AddCommand(convertCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
