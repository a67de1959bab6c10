// Package htmlreport renders the flattened collection rows as a
// self-contained HTML report, one table row per collection.
//
// Image embedding is a capability injected by the caller: slots marked
// present are read through Options.ReadFile and inlined as base64 data
// URIs, slots marked absent render a placeholder with no I/O. The core
// model never carries image bytes.
package htmlreport

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/imca-cat/tripreport/internal/flatten"
	"github.com/imca-cat/tripreport/internal/hierarchy"
)

// ReadFileFunc loads the raw bytes of an asset file for embedding.
type ReadFileFunc func(path string) ([]byte, error)

// Options configures report rendering.
type Options struct {
	// Title of the report page. Defaults to the trip name.
	Title string
	// ReadFile embeds asset thumbnails when non-nil. Nil renders
	// presence badges only, with no filesystem access.
	ReadFile ReadFileFunc
}

var slotHeaders = map[hierarchy.SlotKey]string{
	hierarchy.SlotLoopInter000: "Loop Inter 0°",
	hierarchy.SlotLoopInter045: "Loop Inter 45°",
	hierarchy.SlotLoopInter090: "Loop Inter 90°",
	hierarchy.SlotRaster:       "Raster Preview",
	hierarchy.SlotSpotsPlot:    "Spots Per Image",
	hierarchy.SlotFitnessPlot:  "Fitness",
}

type pageData struct {
	Title       string
	GeneratedAt string
	Trip        string
	SiteLevel   bool
	Headers     []string
	Rows        []rowData
	IssueCount  int
}

type rowData struct {
	Site       string
	Puck       string
	Pin        string
	Collection string
	Valid      bool
	Slots      []slotData
	Extras     []string
	Issues     []string
}

type slotData struct {
	Header  string
	RelPath string
	Present bool
	// DataURI is non-empty only when the slot is present and embedding
	// is enabled.
	DataURI template.URL
}

// Render writes the HTML report for trip to w.
func Render(w io.Writer, trip *hierarchy.Trip, opts Options) error {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	data := buildPageData(trip, opts)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Write renders the report to path, creating parent directories as
// needed.
func Write(path string, trip *hierarchy.Trip, opts Options) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return Render(f, trip, opts)
}

func buildPageData(trip *hierarchy.Trip, opts Options) pageData {
	title := opts.Title
	if title == "" {
		title = "Trip Report: " + trip.Name
	}

	rows := flatten.Rows(trip)
	data := pageData{
		Title:       title,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Trip:        trip.Name,
		SiteLevel:   trip.SiteLevel,
		IssueCount:  len(trip.AllIssues()),
	}

	if len(rows) > 0 {
		for _, slot := range rows[0].Assets {
			data.Headers = append(data.Headers, headerFor(slot.Key))
		}
	}

	for _, row := range rows {
		rd := rowData{
			Site:       row.Site,
			Puck:       row.Puck,
			Pin:        row.Pin,
			Collection: row.Collection,
			Valid:      row.Valid,
			Extras:     row.Extras,
		}
		if rd.Site == "" {
			rd.Site = "—"
		}
		for _, issue := range row.Issues {
			rd.Issues = append(rd.Issues, issue.Message)
		}
		for _, slot := range row.Assets {
			sd := slotData{
				Header:  headerFor(slot.Key),
				RelPath: slot.RelPath,
				Present: slot.Present,
			}
			if slot.Present && opts.ReadFile != nil {
				full := filepath.Join(row.CollectionPath, filepath.FromSlash(slot.RelPath))
				if raw, err := opts.ReadFile(full); err == nil {
					sd.DataURI = dataURI(slot.RelPath, raw)
				}
			}
			rd.Slots = append(rd.Slots, sd)
		}
		data.Rows = append(data.Rows, rd)
	}
	return data
}

func headerFor(key hierarchy.SlotKey) string {
	if h, ok := slotHeaders[key]; ok {
		return h
	}
	return string(key)
}

func dataURI(relPath string, raw []byte) template.URL {
	mimeType := mime.TypeByExtension(filepath.Ext(relPath))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	return template.URL("data:" + mimeType + ";base64," + encoded) //nolint:gosec // G203: trusted local asset bytes
}
