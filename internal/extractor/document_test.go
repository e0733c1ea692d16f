package extractor

import (
	"bytes"
	"strings"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/tmp/finanalyzer-missing-98765.pdf", ""); err == nil {
		t.Fatal("expected error opening a missing file")
	}
}

func TestOpenReaderRejectsGarbage(t *testing.T) {
	data := []byte(strings.Repeat("this is not a pdf document at all\n", 20))
	_, err := OpenReader(bytes.NewReader(data), int64(len(data)), "")
	if err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}
