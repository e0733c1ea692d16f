package extractor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidPassword is returned when an encrypted document cannot be
// decrypted with the supplied passphrase (or no passphrase was given).
var ErrInvalidPassword = pdf.ErrInvalidPassword

// Document is an open statement PDF. It is a scoped resource: opened,
// read and closed within a single extraction run. Close must be called
// on every exit path.
type Document struct {
	reader     *pdf.Reader
	file       *os.File // nil when opened from memory
	path       string   // "" when opened from memory
	passphrase string
}

// Open opens the PDF at path. A non-blank passphrase is used to decrypt
// the document; an empty or blank passphrase means "no passphrase".
func Open(path, passphrase string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	r, err := newReader(f, fi.Size(), passphrase)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Document{
		reader:     r,
		file:       f,
		path:       path,
		passphrase: strings.TrimSpace(passphrase),
	}, nil
}

// OpenReader opens a PDF held in memory. Fallback extraction methods
// that shell out to external tools are unavailable in this mode.
func OpenReader(r io.ReaderAt, size int64, passphrase string) (*Document, error) {
	rd, err := newReader(r, size, passphrase)
	if err != nil {
		return nil, err
	}
	return &Document{reader: rd, passphrase: strings.TrimSpace(passphrase)}, nil
}

func newReader(r io.ReaderAt, size int64, passphrase string) (reader *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed document structure: %v", rec)
		}
	}()

	passphrase = strings.TrimSpace(passphrase)
	attempted := false
	// The library calls pw repeatedly until it returns "", then gives
	// up with ErrInvalidPassword. Offer the passphrase exactly once.
	pw := func() string {
		if passphrase == "" || attempted {
			return ""
		}
		attempted = true
		return passphrase
	}

	reader, err = pdf.NewReaderEncrypted(r, size, pw)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return reader, nil
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Close releases the underlying file handle, if any.
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
