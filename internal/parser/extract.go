package parser

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
)

// ExtractFile runs one extraction pass over the document at path and
// returns the statement. A blank passphrase opens the document without
// one. An empty profile is auto-detected from the page text, falling
// back to the generic line-oriented strategy.
//
// Only open and decryption failures surface as errors, always paired
// with an empty (never nil) transaction table. Zero transactions with
// a nil error is a valid result: the document parsed but nothing in it
// looked like a transaction.
func ExtractFile(path string, profile models.Profile, passphrase string, cfg extractor.TableConfig, logger *log.Logger) (*models.Statement, error) {
	doc, err := extractor.Open(path, passphrase)
	if err != nil {
		return emptyStatement(profile), fmt.Errorf("document access: %w", err)
	}
	defer doc.Close()

	return extract(doc, profile, cfg, logger)
}

// ExtractReader is ExtractFile for a document already held in memory.
func ExtractReader(r io.ReaderAt, size int64, profile models.Profile, passphrase string, cfg extractor.TableConfig, logger *log.Logger) (*models.Statement, error) {
	doc, err := extractor.OpenReader(r, size, passphrase)
	if err != nil {
		return emptyStatement(profile), fmt.Errorf("document access: %w", err)
	}
	defer doc.Close()

	return extract(doc, profile, cfg, logger)
}

func extract(doc Document, profile models.Profile, cfg extractor.TableConfig, logger *log.Logger) (*models.Statement, error) {
	if profile == "" {
		pages, err := doc.TextPages()
		if err != nil {
			profile = models.ProfileGeneric
		} else {
			profile = AutoDetectProfile(pages)
		}
		logger.Debug("auto-detected profile", "profile", profile)
	}

	strategy, err := New(profile, cfg)
	if err != nil {
		return emptyStatement(profile), err
	}

	st, err := strategy.Parse(doc)
	if err != nil {
		return emptyStatement(profile), fmt.Errorf("document access: %w", err)
	}

	logger.Info("extraction finished",
		"profile", profile,
		"pages", doc.NumPages(),
		"transactions", len(st.Transactions),
	)
	return st, nil
}

func emptyStatement(profile models.Profile) *models.Statement {
	return &models.Statement{Profile: profile, Transactions: models.StatementTable{}}
}
