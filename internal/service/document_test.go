package service

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hopscotch/backend/internal/apperr"
	"github.com/hopscotch/backend/internal/docx"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/normalize"
)

// writeTemplate writes a minimal docx template containing every schema
// placeholder so rendering never reports missing keys.
func writeTemplate(t *testing.T) string {
	t.Helper()
	var body bytes.Buffer
	body.WriteString("<doc>")
	for _, key := range normalize.Keys() {
		body.WriteString("{" + key + "}")
	}
	body.WriteString("</doc>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "template.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocumentGenerate(t *testing.T) {
	svc := NewDocumentService(docx.NewAssembler(writeTemplate(t)))

	artifact, err := svc.Generate(model.DocumentGenerateRequest{
		Data: model.AssessmentDocument{
			"activity_description": "Forest walk",
			"assessment_date":      "2025-06-10",
			"hazard_1":             "Uneven ground",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.ContentType != docx.ContentType {
		t.Fatalf("ContentType = %q", artifact.ContentType)
	}
	if artifact.FileName != "Risk Assessment - Forest walk - 2025-06-10.docx" {
		t.Fatalf("FileName = %q", artifact.FileName)
	}
	if len(artifact.Data) == 0 {
		t.Fatal("empty artifact")
	}
}

func TestDocumentGenerateDefaultFileName(t *testing.T) {
	svc := NewDocumentService(docx.NewAssembler(writeTemplate(t)))
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC) }

	artifact, err := svc.Generate(model.DocumentGenerateRequest{
		Data: model.AssessmentDocument{"hazard_1": "Wet floor"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.FileName != "Risk Assessment - General - 2025-06-10.docx" {
		t.Fatalf("FileName = %q", artifact.FileName)
	}
}

func TestDocumentGenerateExplicitFileName(t *testing.T) {
	svc := NewDocumentService(docx.NewAssembler(writeTemplate(t)))

	artifact, err := svc.Generate(model.DocumentGenerateRequest{
		Data:     model.AssessmentDocument{"hazard_1": "Wet floor"},
		FileName: "custom.docx",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.FileName != "custom.docx" {
		t.Fatalf("FileName = %q", artifact.FileName)
	}
}

func TestDocumentGenerateValidation(t *testing.T) {
	svc := NewDocumentService(docx.NewAssembler("unused"))
	_, err := svc.Generate(model.DocumentGenerateRequest{})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDocumentGenerateTemplateDefect(t *testing.T) {
	svc := NewDocumentService(docx.NewAssembler(filepath.Join(t.TempDir(), "missing.docx")))
	_, err := svc.Generate(model.DocumentGenerateRequest{
		Data: model.AssessmentDocument{"hazard_1": "Wet floor"},
	})
	var terr *apperr.TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
}
