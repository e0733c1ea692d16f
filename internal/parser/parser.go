package parser

import (
	"fmt"
	"strings"

	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
)

// Document is the page-level view a strategy needs. *extractor.Document
// satisfies it; tests substitute fixed pages.
type Document interface {
	NumPages() int
	// TextPages returns the plain text of every page in page order.
	TextPages() ([]string, error)
	// Tables runs geometry detection over one page.
	Tables(page int, cfg extractor.TableConfig) ([]extractor.Table, error)
}

// Strategy turns an open document into a statement. One strategy
// instance serves one extraction run; it holds no state across runs.
type Strategy interface {
	Parse(doc Document) (*models.Statement, error)
	// ProfileName returns the profile this strategy implements.
	ProfileName() models.Profile
}

// New returns the strategy for the given profile.
func New(profile models.Profile, cfg extractor.TableConfig) (Strategy, error) {
	switch profile {
	case models.ProfileKotak:
		return &TableStrategy{Config: cfg}, nil
	case models.ProfileGeneric:
		return &LineStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported profile: %q", profile)
	}
}

// AutoDetectProfile picks a profile from the page text. Kotak
// statements name the bank on every page; anything else gets the
// generic line-oriented fallback.
func AutoDetectProfile(pages []string) models.Profile {
	combined := strings.ToLower(strings.Join(pages, "\n"))
	if strings.Contains(combined, "kotak") {
		return models.ProfileKotak
	}
	return models.ProfileGeneric
}
