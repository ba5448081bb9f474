package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"rostergen/pkg/rostergen/models"
)

// LoadRows reads a delimited grid from path. The format is chosen by
// extension: .xlsx/.xlsm go through excelize, everything else is read
// as CSV. Rows keep their original arity; short rows are not padded
// here.
func LoadRows(path string) ([]models.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	default:
		return loadCSV(path)
	}
}

// LoadTable reads a grid whose first row is the header.
func LoadTable(path string) (models.Table, error) {
	rows, err := LoadRows(path)
	if err != nil {
		return models.Table{}, err
	}
	if len(rows) == 0 {
		return models.Table{}, fmt.Errorf("%s: empty roster", path)
	}
	return models.Table{Header: rows[0], Rows: rows[1:]}, nil
}

func loadCSV(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are data here (short rows read as empty trailing
	// cells), not an error.
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	rows := make([]models.Row, len(records))
	for i, rec := range records {
		rows[i] = models.Row(rec)
	}
	return rows, nil
}

func loadXLSX(path string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet %q: %w", path, sheet, err)
	}

	rows := make([]models.Row, len(records))
	for i, rec := range records {
		rows[i] = models.Row(rec)
	}
	return rows, nil
}
