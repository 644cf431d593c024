// Package exporter serializes an artifact set into a downloadable Word
// document.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/wonklabs/wonk/internal/pipeline"
)

const (
	// Filename is the fixed name the document is offered under.
	Filename = "meeting_minutes.docx"

	// MIMEType is the docx media type.
	MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	fontName    = "Times New Roman"
	bodySize    = 12
	headingSize = 16
)

// ExportError reports a document serialization failure. The in-memory
// artifact set is never affected.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export document: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportFile writes one heading and one body paragraph per artifact, in set
// order, to a docx file at path.
func ExportFile(set *pipeline.ArtifactSet, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return &ExportError{Err: err}
	}

	for _, artifact := range set.Artifacts() {
		addHeading(doc.AddParagraph(""), artifact.Heading)
		addBody(doc.AddParagraph(""), artifact.Body)
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(path); err != nil {
		return &ExportError{Err: err}
	}
	return nil
}

// Export serializes the set and returns the document bytes.
func Export(set *pipeline.ArtifactSet) ([]byte, error) {
	tempDir, err := os.MkdirTemp("", "wonk-export-*")
	if err != nil {
		return nil, &ExportError{Err: err}
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, Filename)
	if err := ExportFile(set, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExportError{Err: err}
	}
	return data, nil
}

func addHeading(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(headingSize).Color("000000").Bold(true)
}

func addBody(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(bodySize).Color("000000")
}
