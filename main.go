package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/claritydocs/bizdoc-extractor/internal/api"
	"github.com/claritydocs/bizdoc-extractor/internal/extractor"
	"github.com/claritydocs/bizdoc-extractor/internal/parse"
	"github.com/claritydocs/bizdoc-extractor/internal/project"
	"github.com/claritydocs/bizdoc-extractor/internal/writer"
)

const version = "1.0.0"

func main() {
	formatFlag := flag.String("format", "json", "Output format: json, csv, xlsx")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with the format extension)")
	encodingFlag := flag.String("encoding", "utf-8", "Text input encoding: utf-8 or sjis (ignored for PDFs)")
	headerFlag := flag.Bool("header", true, "Include document metadata header rows in CSV output")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	portFlag := flag.String("port", "", "HTTP port for --serve (default: PORT env or 8080)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Business Document Extractor

Extracts structured records from scanned Japanese/English business
documents (delivery slips, invoices, purchase orders, quotations).

Usage:
  bizdoc-extractor [flags] <input.pdf|input.txt> [input2 ...]
  bizdoc-extractor --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Extract a scanned invoice to JSON (canonical + destination record)
  bizdoc-extractor invoice.pdf

  # Item table as CSV
  bizdoc-extractor --format=csv delivery.pdf

  # Legacy scanner sidecar text in Shift-JIS
  bizdoc-extractor --encoding=sjis scan001.txt

  # Run the HTTP API
  bizdoc-extractor --serve --port=8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bizdoc-extractor v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*portFlag)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *formatFlag, *outputFlag, *encodingFlag, *headerFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath, format, outputPath, encoding string, includeHeader bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	var text string
	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case ".pdf":
		pages, usedFallback, err := extractor.ExtractText(inputPath)
		if err != nil {
			return fmt.Errorf("text acquisition failed: %w", err)
		}
		fmt.Printf("  Extracted text from %d page(s)\n", len(pages))
		if usedFallback {
			fmt.Println("  No text layer found; used image recognition")
		}
		text = strings.Join(pages, "\n")
	case ".txt":
		var err error
		text, err = extractor.ReadTextFile(inputPath, encoding)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected .pdf or .txt input, got %q", ext)
	}

	doc := parse.Extract(text)
	fmt.Printf("  Document type: %s\n", doc.DocumentType)
	fmt.Printf("  Found %d line item(s)\n", len(doc.Items))
	if len(doc.Items) == 0 {
		fmt.Println("  Warning: no line items found. The item table may not match expected layouts.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	switch format {
	case "json":
		payload := map[string]any{
			"document":    doc,
			"destination": project.Project(doc),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON encoding failed: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
	case "csv":
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		if err := w.WriteToFile(outPath, doc); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	case "xlsx":
		w := &writer.XLSXWriter{}
		if err := w.WriteToFile(outPath, doc); err != nil {
			return fmt.Errorf("XLSX write failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (use json, csv or xlsx)", format)
	}

	fmt.Printf("  Output: %s\n", outPath)

	if doc.CompanyName != "" {
		fmt.Printf("  Company: %s\n", doc.CompanyName)
	}
	if doc.ClientName != "" {
		fmt.Printf("  Client: %s\n", doc.ClientName)
	}
	if doc.GrandTotal != "" {
		fmt.Printf("  Grand total: %s\n", doc.GrandTotal)
	}

	fmt.Println("  Done.")
	return nil
}

func serve(port string) {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // 32MB uploads
	})
	app.Get("/api/health", api.HandleHealth)
	app.Post("/api/extract", api.HandleExtract)

	slog.Info("starting HTTP API", "port", port)
	if err := app.Listen(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
