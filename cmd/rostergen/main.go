// Package main provides the CLI entry point for rostergen.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rostergen/pkg/rostergen"
	"rostergen/pkg/rostergen/logging"
	"rostergen/pkg/rostergen/render"
	"rostergen/pkg/rostergen/roster"
)

var (
	verbose bool

	// invites flags
	inviteCSV    string
	cardsDir     string
	inviteOut    string
	fontPaths    []string
	fontSize     float64
	textY        float64
	textX        float64
	maxTextWidth float64
	lineSpacing  float64
	centerText   bool
	textColor    string

	// allot flags
	allotCSV      string
	allotOut      string
	watermarkPath string
	dividerMode   string
	skipColumns   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rostergen",
		Short: "Generate personalized PDFs from CSV-driven templates",
		Long: `rostergen turns a shared spreadsheet into per-person PDF documents:
personalized invite cards overlaid onto a base PDF, or per-assignee
work-allocation tables with an optional watermark.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	inviteDefaults := rostergen.DefaultInviteOptions()
	invitesCmd := &cobra.Command{
		Use:   "invites",
		Short: "Overlay names onto base cards, one PDF per CSV record",
		Args:  cobra.NoArgs,
		RunE:  runInvites,
	}
	invitesCmd.Flags().StringVar(&inviteCSV, "csv", inviteDefaults.CSVPath, "Invite list (csv or xlsx)")
	invitesCmd.Flags().StringVar(&cardsDir, "cards", inviteDefaults.CardsDir, "Directory containing base card PDFs")
	invitesCmd.Flags().StringVarP(&inviteOut, "output", "o", inviteDefaults.OutputDir, "Output directory")
	invitesCmd.Flags().StringArrayVar(&fontPaths, "font", nil, "TrueType font to try first (repeatable)")
	invitesCmd.Flags().Float64Var(&fontSize, "font-size", inviteDefaults.Style.FontSize, "Name font size in points")
	invitesCmd.Flags().Float64Var(&textY, "text-y", inviteDefaults.Style.TextY, "Baseline anchor from page top, points")
	invitesCmd.Flags().Float64Var(&textX, "text-x", inviteDefaults.Style.TextX, "Fixed x position when centering is off")
	invitesCmd.Flags().Float64Var(&maxTextWidth, "max-width", inviteDefaults.Style.MaxTextWidth, "Width before splitting into 2 lines")
	invitesCmd.Flags().Float64Var(&lineSpacing, "line-spacing", inviteDefaults.Style.LineSpacing, "Baseline spacing when split")
	invitesCmd.Flags().BoolVar(&centerText, "center", inviteDefaults.Style.Center, "Center each line horizontally")
	invitesCmd.Flags().StringVar(&textColor, "color", "#722F37", "Name color as #RRGGBB")

	allotDefaults := rostergen.DefaultAllotOptions()
	allotCmd := &cobra.Command{
		Use:   "allot",
		Short: "Write one work-allocation PDF per assignee in the roster",
		Args:  cobra.NoArgs,
		RunE:  runAllot,
	}
	allotCmd.Flags().StringVar(&allotCSV, "csv", allotDefaults.RosterPath, "Roster (csv or xlsx); first row is the header")
	allotCmd.Flags().StringVarP(&allotOut, "output", "o", allotDefaults.OutputDir, "Output directory")
	allotCmd.Flags().StringVar(&watermarkPath, "watermark", allotDefaults.WatermarkPath, "Watermark image or PDF (optional)")
	allotCmd.Flags().StringVar(&dividerMode, "dividers", "drop", "Divider row policy: drop or collapse")
	allotCmd.Flags().StringVar(&skipColumns, "skip-columns", "0,5,9", "Comma-separated column indices to always hide")

	rootCmd.AddCommand(invitesCmd, allotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInvites(cmd *cobra.Command, args []string) error {
	color, err := render.ParseColor(textColor)
	if err != nil {
		return err
	}

	opts := rostergen.DefaultInviteOptions()
	opts.CSVPath = inviteCSV
	opts.CardsDir = cardsDir
	opts.OutputDir = inviteOut
	opts.FontPaths = fontPaths
	opts.Style = render.InviteStyle{
		FontSize:     fontSize,
		TextY:        textY,
		TextX:        textX,
		MaxTextWidth: maxTextWidth,
		LineSpacing:  lineSpacing,
		Center:       centerText,
		Color:        color,
	}

	log := logging.New(verbose)
	defer log.Sync()
	_, err = rostergen.RunInvites(opts, log)
	return err
}

func runAllot(cmd *cobra.Command, args []string) error {
	opts := rostergen.DefaultAllotOptions()
	opts.RosterPath = allotCSV
	opts.OutputDir = allotOut
	opts.WatermarkPath = watermarkPath

	switch dividerMode {
	case "drop":
		opts.DividerPolicy = roster.DropDividers
	case "collapse":
		opts.DividerPolicy = roster.CollapseDividers
	default:
		return fmt.Errorf("invalid divider policy: %s (must be drop or collapse)", dividerMode)
	}

	skip, err := parseIndexSet(skipColumns)
	if err != nil {
		return err
	}
	opts.SkipColumns = skip

	log := logging.New(verbose)
	defer log.Sync()
	_, err = rostergen.RunAllot(opts, log)
	return err
}

// parseIndexSet parses a comma-separated list of non-negative column
// indices. An empty string means no columns are hidden.
func parseIndexSet(s string) (map[int]bool, error) {
	set := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid column index: %q", part)
		}
		set[i] = true
	}
	return set, nil
}
