package rostergen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"rostergen/pkg/rostergen/models"
)

// writeCard builds a single-page A4 card fixture.
func writeCard(t *testing.T, path string) {
	t.Helper()
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()
	pdf.Text(72, 72, "base card")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing card fixture: %v", err)
	}
}

func countPDFs(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".pdf") {
			n++
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("walking %s: %v", dir, err)
	}
	return n
}

func inviteTestOptions(dir string) InviteOptions {
	opts := DefaultInviteOptions()
	opts.CSVPath = filepath.Join(dir, "names.csv")
	opts.CardsDir = filepath.Join(dir, "base_cards")
	opts.OutputDir = filepath.Join(dir, "invites")
	return opts
}

func TestRunInvitesCreatesCard(t *testing.T) {
	dir := t.TempDir()
	opts := inviteTestOptions(dir)

	if err := os.MkdirAll(opts.CardsDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeCard(t, filepath.Join(opts.CardsDir, "cardA.pdf"))
	csv := `,,Alice Wonderland,cardA` + "\n"
	if err := os.WriteFile(opts.CSVPath, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	sum, err := RunInvites(opts, zap.NewNop())
	if err != nil {
		t.Fatalf("RunInvites failed: %v", err)
	}
	if sum.Processed != 1 || sum.Skipped != 0 {
		t.Errorf("summary = %+v, want 1 processed, 0 skipped", sum)
	}
	out := filepath.Join(opts.OutputDir, "Alice Wonderland.pdf")
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected output %s: %v", out, err)
	}
}

func TestRunInvitesSkipsMissingCard(t *testing.T) {
	dir := t.TempDir()
	opts := inviteTestOptions(dir)

	if err := os.MkdirAll(opts.CardsDir, 0755); err != nil {
		t.Fatal(err)
	}
	csv := `team1,,Bo,missing_card` + "\n"
	if err := os.WriteFile(opts.CSVPath, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	sum, err := RunInvites(opts, zap.NewNop())
	if err != nil {
		t.Fatalf("RunInvites failed: %v", err)
	}
	if sum.Processed != 0 || sum.Skipped != 1 {
		t.Errorf("summary = %+v, want 0 processed, 1 skipped", sum)
	}
	if n := countPDFs(t, opts.OutputDir); n != 0 {
		t.Errorf("expected no output files, found %d", n)
	}
}

// A failed record never aborts the batch: later rows still render.
func TestRunInvitesContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	opts := inviteTestOptions(dir)

	if err := os.MkdirAll(opts.CardsDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeCard(t, filepath.Join(opts.CardsDir, "cardA.pdf"))
	csv := strings.Join([]string{
		",,Bo,missing_card",
		",,Alice,cardA",
		"",
	}, "\n")
	if err := os.WriteFile(opts.CSVPath, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	sum, err := RunInvites(opts, zap.NewNop())
	if err != nil {
		t.Fatalf("RunInvites failed: %v", err)
	}
	if sum.Processed != 1 || sum.Skipped != 1 {
		t.Errorf("summary = %+v, want 1 processed, 1 skipped", sum)
	}
}

func TestParseInviteRecord(t *testing.T) {
	tests := []struct {
		name    string
		row     models.Row
		want    *models.InviteRecord
		wantErr bool
	}{
		{
			"full record",
			models.Row{"team1", "ignored", " Alice ", "cardA"},
			&models.InviteRecord{Folder: "team1", Name: "Alice", Card: "cardA"},
			false,
		},
		{"blank line", models.Row{"", "", "", ""}, nil, false},
		{"empty row", models.Row{}, nil, false},
		{"too few columns", models.Row{"a", "b", "c"}, nil, true},
		{"blank name", models.Row{"", "", " ", "cardA"}, nil, true},
		{"blank card", models.Row{"", "", "Bo", ""}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInviteRecord(1, tt.row)
			if tt.wantErr {
				var re *RecordError
				if !errors.As(err, &re) {
					t.Fatalf("expected RecordError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInviteRecord failed: %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil record, got %+v", got)
				}
				return
			}
			if *got != *tt.want {
				t.Errorf("record = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestRecordErrorMessage(t *testing.T) {
	err := &RecordError{Row: 3, Reason: "missing name or card"}
	if got := err.Error(); got != "row 3: missing name or card" {
		t.Errorf("Error() = %q", got)
	}
	wrapped := &RecordError{Row: 1, Reason: "render", Err: fmt.Errorf("boom")}
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("Error() = %q, want wrapped cause", wrapped.Error())
	}
}
