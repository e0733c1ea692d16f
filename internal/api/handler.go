package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/finanalyzer/finanalyzer/internal/config"
	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
	"github.com/finanalyzer/finanalyzer/internal/parser"
	"github.com/finanalyzer/finanalyzer/internal/writer"
)

// ConvertResponse is the JSON body of /api/convert.
type ConvertResponse struct {
	Success       bool                  `json:"success"`
	Error         string                `json:"error,omitempty"`
	Profile       string                `json:"profile,omitempty"`
	AccountNumber string                `json:"accountNumber,omitempty"`
	Period        string                `json:"period,omitempty"`
	Transactions  models.StatementTable `json:"transactions"`
	Count         int                   `json:"count"`
	CSV           string                `json:"csv,omitempty"`
	TotalDebit    string                `json:"totalDebit"`
	TotalCredit   string                `json:"totalCredit"`
	// Display totals formatted in the configured currency, for the
	// metric cards in the UI.
	TotalDebitDisplay  string `json:"totalDebitDisplay,omitempty"`
	TotalCreditDisplay string `json:"totalCreditDisplay,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Config *config.Config
	Logger *log.Logger
}

// HandleHealth reports service liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleConvert accepts a multipart statement upload and returns the
// extracted table. Form fields: file (the PDF), password (optional),
// profile (kotak|generic, optional — auto-detected when omitted) and
// metadata (set to "false" to drop the CSV metadata rows).
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	profile, err := profileFromParam(c.FormValue("profile"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	if profile == "" {
		profile = h.Config.DefaultProfile
	}
	passphrase := c.FormValue("password")
	includeMetadata := c.FormValue("metadata") != "false"

	// The extractor's external-tool fallbacks need a real file.
	tmpFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	defer os.Remove(tmpFile.Name())

	src, err := fileHeader.Open()
	if err != nil {
		tmpFile.Close()
		return writeError(c, fiber.StatusBadRequest, "Failed to read uploaded file.")
	}
	_, copyErr := io.Copy(tmpFile, src)
	src.Close()
	tmpFile.Close()
	if copyErr != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	st, err := parser.ExtractFile(tmpFile.Name(), profile, passphrase, h.Config.TableConfig(), h.Logger)
	if err != nil {
		// Access errors still carry the empty table so the client can
		// render a consistent (empty) result alongside the message.
		status := fiber.StatusUnprocessableEntity
		msg := fmt.Sprintf("Could not open the document: %v", err)
		if errors.Is(err, extractor.ErrInvalidPassword) {
			msg = "Could not decrypt the document: wrong or missing password."
		}
		return c.Status(status).JSON(ConvertResponse{
			Success:      false,
			Error:        msg,
			Profile:      string(st.Profile),
			Transactions: st.Transactions,
			TotalDebit:   decimal.Zero.StringFixed(2),
			TotalCredit:  decimal.Zero.StringFixed(2),
		})
	}

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeMetadata: includeMetadata}
	if err := csvWriter.Write(&csvBuf, st); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	totalDebit := st.Transactions.TotalDebit()
	totalCredit := st.Transactions.TotalCredit()

	return c.JSON(ConvertResponse{
		Success:            true,
		Profile:            string(st.Profile),
		AccountNumber:      st.AccountNumber,
		Period:             st.Period,
		Transactions:       st.Transactions,
		Count:              len(st.Transactions),
		CSV:                csvBuf.String(),
		TotalDebit:         totalDebit.StringFixed(2),
		TotalCredit:        totalCredit.StringFixed(2),
		TotalDebitDisplay:  h.displayAmount(totalDebit),
		TotalCreditDisplay: h.displayAmount(totalCredit),
	})
}

// displayAmount renders a decimal in the configured currency, e.g.
// ₹1,234.56 for INR.
func (h *Handler) displayAmount(d decimal.Decimal) string {
	return money.New(d.Shift(2).IntPart(), h.Config.Currency).Display()
}

func profileFromParam(param string) (models.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "":
		return "", nil
	case "kotak", "kotak-mahindra":
		return models.ProfileKotak, nil
	case "generic", "other":
		return models.ProfileGeneric, nil
	default:
		return "", fmt.Errorf("unknown profile %q: use kotak or generic", param)
	}
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: models.StatementTable{},
		TotalDebit:   decimal.Zero.StringFixed(2),
		TotalCredit:  decimal.Zero.StringFixed(2),
	})
}
