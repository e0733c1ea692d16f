package extractor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// extractWithPdftotext shells out to pdftotext (poppler-utils) for
// documents the Go library cannot decode, typically custom CIDFont
// encodings. The passphrase, when present, is passed as the user
// password so protected documents keep working on this path too.
func extractWithPdftotext(filePath, passphrase string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	numPages := popplerPageCount(filePath, passphrase)

	// Extract page by page so page boundaries survive.
	var pages []string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		args := []string{"-layout", "-f", pageStr, "-l", pageStr}
		args = appendPassphrase(args, passphrase)
		args = append(args, filePath, "-")
		out, err := exec.Command("pdftotext", args...).Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) > 0 {
		return pages, nil
	}

	// Whole document at once when per-page extraction produced nothing.
	args := appendPassphrase([]string{"-layout"}, passphrase)
	args = append(args, filePath, "-")
	out, err := exec.Command("pdftotext", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}
	if text := strings.TrimSpace(string(out)); text != "" {
		return []string{text}, nil
	}
	return nil, fmt.Errorf("pdftotext produced no output")
}

// popplerPageCount asks pdfinfo for the page count, defaulting to 1
// when it cannot tell.
func popplerPageCount(filePath, passphrase string) int {
	args := appendPassphrase(nil, passphrase)
	args = append(args, filePath)
	out, err := exec.Command("pdfinfo", args...).Output()
	if err != nil {
		return 1
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Pages:") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:")))
			if err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

func appendPassphrase(args []string, passphrase string) []string {
	if strings.TrimSpace(passphrase) != "" {
		return append(args, "-upw", strings.TrimSpace(passphrase))
	}
	return args
}
