package ledgerfile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gagyebu/backend/internal/importer"
)

// ParseCSV reads a CSV export with the same columns as the .xls ledgers.
func ParseCSV(f io.Reader) ([]importer.Row, error) {
	reader := csv.NewReader(f)

	// Ledger exports occasionally have ragged trailing columns.
	reader.FieldsPerRecord = -1

	var cells [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		cells = append(cells, record)
	}

	return fromCells(cells)
}

// csvReadError wraps err with the line of the input it occurred in.
func csvReadError(r *csv.Reader, err error) ([]importer.Row, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
