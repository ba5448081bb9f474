package rostergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"rostergen/pkg/rostergen/models"
	"rostergen/pkg/rostergen/render"
	"rostergen/pkg/rostergen/roster"
)

var safeName = strings.NewReplacer("/", "-", "\\", "-")

// RunAllot generates one work-allocation document per assignee found in
// the roster's "FOLLOW UP" column. A header without that column aborts
// the run; per-person render failures are skipped with a warning.
func RunAllot(opts AllotOptions, log *zap.Logger) (models.Summary, error) {
	table, err := roster.LoadTable(opts.RosterPath)
	if err != nil {
		return models.Summary{}, fmt.Errorf("loading roster: %w", err)
	}

	buckets, err := roster.GroupByAssignee(table)
	if err != nil {
		return models.Summary{}, err
	}

	wm, err := render.LoadWatermark(opts.WatermarkPath)
	if err != nil {
		log.Warn("watermark unusable, proceeding without", zap.Error(err))
		wm = nil
	} else if wm == nil && opts.WatermarkPath != "" {
		log.Warn("watermark not found, proceeding without",
			zap.String("path", opts.WatermarkPath))
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return models.Summary{}, err
	}
	renderer := render.NewAllotRenderer(opts.ColumnWidths, wm)

	var sum models.Summary
	for _, person := range buckets.People() {
		personTable := models.Table{Header: table.Header, Rows: buckets[person]}
		mask := roster.ComputeMask(personTable.Header, personTable.Rows, opts.SkipColumns)
		pruned := roster.ApplyMask(personTable, mask, opts.DividerPolicy)

		outPath := filepath.Join(opts.OutputDir, safeName.Replace(person)+".pdf")
		if err := renderer.Render(person, pruned, outPath); err != nil {
			log.Warn("skipping person",
				zap.String("person", person),
				zap.Error(err))
			sum.Skipped++
			continue
		}
		log.Info("generated",
			zap.String("person", person),
			zap.String("output", outPath))
		sum.Processed++
	}

	log.Info("allocation done",
		zap.Int("processed", sum.Processed),
		zap.Int("skipped", sum.Skipped),
		zap.String("output", opts.OutputDir))
	return sum, nil
}
