// Package rostergen drives the two batch pipelines: personalized invite
// cards and per-person work-allocation documents.
package rostergen

import (
	"rostergen/pkg/rostergen/render"
	"rostergen/pkg/rostergen/roster"
)

// InviteOptions configures the invite pipeline.
type InviteOptions struct {
	// CSVPath is the invite list (csv or xlsx).
	CSVPath string
	// CardsDir holds the base card templates.
	CardsDir string
	// OutputDir receives the personalized cards.
	OutputDir string
	// FontPaths are probed before the default font search list.
	FontPaths []string
	// Style positions the name on the card.
	Style render.InviteStyle
}

// DefaultInviteOptions mirrors the traditional fixed-filename run.
// Geometry is the historical pixel layout (200 dpi) converted to
// points.
func DefaultInviteOptions() InviteOptions {
	return InviteOptions{
		CSVPath:   "names.csv",
		CardsDir:  "base_cards",
		OutputDir: "invites",
		Style: render.InviteStyle{
			FontSize:     21.6,
			TextY:        360,
			TextX:        180,
			MaxTextWidth: 288,
			LineSpacing:  36,
			Center:       true,
			Color:        render.Color{R: 0x72, G: 0x2F, B: 0x37}, // wine
		},
	}
}

// AllotOptions configures the work-allocation pipeline.
type AllotOptions struct {
	// RosterPath is the shared roster (csv or xlsx); row 1 is the header.
	RosterPath string
	// OutputDir receives one document per assignee.
	OutputDir string
	// WatermarkPath is an optional image or PDF asset; absence is fine.
	WatermarkPath string
	// DividerPolicy selects how all-blank rows survive pruning.
	DividerPolicy roster.DividerPolicy
	// SkipColumns are administrative column indices hidden regardless of
	// content.
	SkipColumns map[int]bool
	// ColumnWidths maps known column names to preferred widths in
	// points; unknown columns share the remaining page width equally.
	ColumnWidths map[string]float64
}

// DefaultAllotOptions returns the traditional configuration: dense
// tables (dividers dropped), administrative columns 0, 5 and 9 hidden,
// and the known-column width table in points (inches x 72).
func DefaultAllotOptions() AllotOptions {
	return AllotOptions{
		RosterPath:    "work.csv",
		OutputDir:     "work",
		WatermarkPath: "logo.png",
		DividerPolicy: roster.DropDividers,
		SkipColumns:   map[int]bool{0: true, 5: true, 9: true},
		ColumnWidths: map[string]float64{
			"Working Date": 0.65 * 72,
			"DATE":         0.65 * 72,
			"TIME":         0.5 * 72,
			"PROGRAM":      0.8 * 72,
			"THINGS TO DO": 1.8 * 72,
			"PAYMENT":      0.6 * 72,
			"CONTACT":      0.7 * 72,
			"FOLLOW UP":    1.8 * 72,
			"Work Head":    0.45 * 72,
			"LIST":         0.45 * 72,
		},
	}
}
