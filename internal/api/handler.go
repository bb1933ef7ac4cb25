package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/claritydocs/bizdoc-extractor/internal/extractor"
	"github.com/claritydocs/bizdoc-extractor/internal/models"
	"github.com/claritydocs/bizdoc-extractor/internal/parse"
	"github.com/claritydocs/bizdoc-extractor/internal/project"
	"github.com/claritydocs/bizdoc-extractor/internal/writer"
)

const version = "1.0.0"

// ExtractResponse is the JSON response from the /api/extract endpoint.
type ExtractResponse struct {
	Success      bool                      `json:"success"`
	Error        string                    `json:"error,omitempty"`
	DocumentType string                    `json:"documentType,omitempty"`
	Document     *models.CanonicalDocument `json:"document,omitempty"`
	Destination  any                       `json:"destination,omitempty"`
	UsedFallback bool                      `json:"usedFallback"`
	ItemCount    int                       `json:"itemCount"`
	CSV          string                    `json:"csv,omitempty"`
}

// HandleHealth reports liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleExtract accepts either a PDF upload (form field "file") or
// pre-extracted text (form field "text") and returns the canonical record
// plus its destination projection. Data-quality problems are never an error:
// a document with no recognizable fields still returns success with an
// empty record.
func HandleExtract(c *fiber.Ctx) (err error) {
	// One bad document must not take the server down.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("extract handler panicked", "panic", rec)
			err = writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("internal error (recovered): %v", rec))
		}
	}()

	text := c.FormValue("text")
	usedFallback := false

	if text == "" {
		fileHeader, fileErr := c.FormFile("file")
		if fileErr != nil {
			return writeError(c, fiber.StatusBadRequest, "no input: provide form field 'file' (PDF) or 'text'")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "only PDF uploads are supported; send plain text via the 'text' field")
		}

		src, openErr := fileHeader.Open()
		if openErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "failed to open upload")
		}
		defer src.Close()

		tmp, tmpErr := os.CreateTemp("", "document-*.pdf")
		if tmpErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "failed to create temp file")
		}
		defer os.Remove(tmp.Name())

		if _, copyErr := io.Copy(tmp, src); copyErr != nil {
			tmp.Close()
			return writeError(c, fiber.StatusInternalServerError, "failed to save upload")
		}
		tmp.Close()

		pages, fallback, extErr := extractor.ExtractText(tmp.Name())
		if extErr != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("text acquisition failed: %v", extErr))
		}
		text = strings.Join(pages, "\n")
		usedFallback = fallback
	}

	doc := parse.Extract(text)
	dest := project.Project(doc)

	resp := ExtractResponse{
		Success:      true,
		DocumentType: string(doc.DocumentType),
		Document:     doc,
		Destination:  dest,
		UsedFallback: usedFallback,
		ItemCount:    len(doc.Items),
	}

	if c.FormValue("csv") == "true" {
		var buf bytes.Buffer
		cw := &writer.CSVWriter{IncludeHeader: true}
		if csvErr := cw.Write(&buf, doc); csvErr != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", csvErr))
		}
		resp.CSV = buf.String()
	}

	slog.Info("document extracted",
		"type", doc.DocumentType,
		"items", len(doc.Items),
		"used_fallback", usedFallback,
	)

	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ExtractResponse{
		Success: false,
		Error:   msg,
	})
}
