package extractor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// IsOCRAvailable reports whether the external OCR toolchain
// (poppler-utils pdftoppm + tesseract) is installed.
func IsOCRAvailable() bool {
	_, err1 := exec.LookPath("pdftoppm")
	_, err2 := exec.LookPath("tesseract")
	return err1 == nil && err2 == nil
}

// extractWithOCR rasterizes each page and runs Tesseract over it. This
// is the last resort for scanned statements with no text layer at all.
func extractWithOCR(filePath, passphrase string) ([]string, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, fmt.Errorf("pdftoppm not available (install poppler-utils): %w", err)
	}
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, fmt.Errorf("tesseract not available (install tesseract-ocr): %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "ocr-pages-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// 300 DPI keeps small amount digits legible to Tesseract.
	imgPrefix := filepath.Join(tmpDir, "page")
	args := []string{"-r", "300", "-png"}
	args = appendPassphrase(args, passphrase)
	args = append(args, filePath, imgPrefix)
	if out, err := exec.Command("pdftoppm", args...).CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %v (output: %s)", err, string(out))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("read temp dir: %w", err)
	}
	var imageFiles []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			imageFiles = append(imageFiles, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(imageFiles)
	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page images")
	}

	var pages []string
	for _, imgFile := range imageFiles {
		outBase := strings.TrimSuffix(imgFile, ".png") + "-ocr"
		// PSM 4: single column of text of variable sizes, which fits
		// the tall narrow body of a statement page.
		cmd := exec.Command("tesseract", imgFile, outBase, "-l", "eng", "--psm", "4")
		if _, err := cmd.CombinedOutput(); err != nil {
			continue
		}
		data, err := os.ReadFile(outBase + ".txt")
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("OCR produced no text from %d page images", len(imageFiles))
	}
	return pages, nil
}
