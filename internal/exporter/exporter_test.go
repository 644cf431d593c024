package exporter

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/wonklabs/wonk/internal/pipeline"
)

// documentTexts unzips a docx and returns every run text of the main
// document part, in document order.
func documentTexts(t *testing.T, data []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open docx zip: %v", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatal(err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	if docXML == nil {
		t.Fatal("word/document.xml not found in docx")
	}

	var texts []string
	dec := xml.NewDecoder(bytes.NewReader(docXML))
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("parse document.xml: %v", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText && len(el) > 0 {
				texts = append(texts, string(el))
			}
		}
	}
	return texts
}

func TestExportRoundTrip(t *testing.T) {
	set := pipeline.NewArtifactSet()
	set.Set("Summary", "X")
	set.Set("Action Items", "Y")

	data, err := Export(set)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	texts := documentTexts(t, data)

	want := []string{"Summary", "X", "Action Items", "Y"}
	got := make([]string, 0, len(want))
	for _, text := range texts {
		if text != "" {
			got = append(got, text)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("document texts = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExportEmptySet(t *testing.T) {
	data, err := Export(pipeline.NewArtifactSet())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Export() produced no bytes")
	}
}

func TestConstants(t *testing.T) {
	if Filename != "meeting_minutes.docx" {
		t.Errorf("Filename = %q", Filename)
	}
	if MIMEType != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Errorf("MIMEType = %q", MIMEType)
	}
}
