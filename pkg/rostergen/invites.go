package rostergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"rostergen/pkg/rostergen/fonts"
	"rostergen/pkg/rostergen/models"
	"rostergen/pkg/rostergen/render"
	"rostergen/pkg/rostergen/roster"
)

// RunInvites generates one personalized card per invite record. Records
// with missing fields or missing card templates are skipped with a
// warning; the batch always runs to completion.
func RunInvites(opts InviteOptions, log *zap.Logger) (models.Summary, error) {
	rows, err := roster.LoadRows(opts.CSVPath)
	if err != nil {
		return models.Summary{}, fmt.Errorf("loading invite list: %w", err)
	}

	font, err := fonts.Discover(append(opts.FontPaths, fonts.DefaultSearchList...))
	if err != nil {
		return models.Summary{}, err
	}
	if font.Builtin {
		log.Warn("no TrueType font found, using built-in Go Regular")
	} else {
		log.Info("using font", zap.String("path", font.Path))
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return models.Summary{}, err
	}

	cards := render.NewTemplateCache(opts.CardsDir)
	renderer := render.NewInviteRenderer(cards, font, opts.Style)

	var sum models.Summary
	for i, row := range rows {
		rec, err := parseInviteRecord(i+1, row)
		if err != nil {
			log.Warn("skipping row", zap.Error(err))
			sum.Skipped++
			continue
		}
		if rec == nil {
			// Blank filler line, not a record.
			continue
		}

		outDir := opts.OutputDir
		if rec.Folder != "" {
			outDir = filepath.Join(opts.OutputDir, rec.Folder)
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return sum, err
			}
		}
		outPath := filepath.Join(outDir, rec.Name+".pdf")

		if err := renderer.Render(*rec, outPath); err != nil {
			log.Warn("skipping row",
				zap.Int("row", i+1),
				zap.String("name", rec.Name),
				zap.Error(err))
			sum.Skipped++
			continue
		}
		log.Info("created",
			zap.String("name", rec.Name),
			zap.String("output", outPath))
		sum.Processed++
	}

	log.Info("invites done",
		zap.Int("processed", sum.Processed),
		zap.Int("skipped", sum.Skipped),
		zap.String("output", opts.OutputDir))
	return sum, nil
}

// parseInviteRecord reads the fixed 4-column layout
// [folder, ignored, name, card]. All-blank rows return (nil, nil);
// short rows and rows with a blank name or card are record errors.
func parseInviteRecord(rowNum int, row models.Row) (*models.InviteRecord, error) {
	if roster.IsDivider(row) {
		return nil, nil
	}
	if len(row) < 4 {
		return nil, &RecordError{Row: rowNum, Reason: "fewer than 4 columns"}
	}
	rec := models.InviteRecord{
		Folder: strings.TrimSpace(row[0]),
		Name:   strings.TrimSpace(row[2]),
		Card:   strings.TrimSpace(row[3]),
	}
	if rec.Name == "" || rec.Card == "" {
		return nil, &RecordError{Row: rowNum, Reason: "missing name or card"}
	}
	return &rec, nil
}
