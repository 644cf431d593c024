package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// convertDocx extracts plain text from a Word document via pandoc.
func (a *implAdapter) convertDocx(ctx context.Context, path string) (string, error) {
	out, err := a.executor.Execute(ctx, a.cfg.Convert.Pandoc, "-t", "plain", path)
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "pandoc convert", Err: err}
	}
	return strings.TrimSpace(out), nil
}

// convertPDF extracts plain text from a PDF via pdftotext, reading from
// stdout ("-" output target).
func (a *implAdapter) convertPDF(ctx context.Context, path string) (string, error) {
	out, err := a.executor.Execute(ctx, a.cfg.Convert.PDFToText, path, "-")
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "pdftotext convert", Err: err}
	}
	return strings.TrimSpace(out), nil
}

// convertOffice extracts plain text from slide decks and spreadsheets via a
// headless LibreOffice conversion into a temp dir.
func (a *implAdapter) convertOffice(ctx context.Context, path string) (string, error) {
	tempDir, err := os.MkdirTemp("", "wonk-convert-*")
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "create temp dir", Err: err}
	}
	defer os.RemoveAll(tempDir)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "resolve path", Err: err}
	}

	args := []string{
		"--headless",
		"--convert-to", "txt:Text",
		abs,
	}

	if _, err := a.executor.ExecuteInDir(ctx, tempDir, a.cfg.Convert.Soffice, args...); err != nil {
		return "", &DecodeError{Path: path, Reason: "soffice convert", Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(filepath.Join(tempDir, base+".txt"))
	if err != nil {
		return "", &DecodeError{Path: path, Reason: "read converted text", Err: err}
	}

	return strings.TrimSpace(string(data)), nil
}
