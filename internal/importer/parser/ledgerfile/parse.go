package ledgerfile

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/gagyebu/backend/internal/importer"
)

// maxRows caps how many spreadsheet rows are read from a workbook.
const maxRows = 10000

// ErrNoHeader is returned when no row with the expected column labels is
// found in the file.
var ErrNoHeader = errors.New("the file has no header row with a 날짜 column")

// columns maps the Korean header labels to cell indices, -1 for columns the
// file does not have.
type columns struct {
	date     int
	time     int
	category int
	amount   int
	content  int
	tags     int
	memo     int
}

func headerColumns(row []string) (columns, bool) {
	cols := columns{date: -1, time: -1, category: -1, amount: -1, content: -1, tags: -1, memo: -1}

	for i, cell := range row {
		switch cell {
		case "날짜":
			cols.date = i
		case "시간":
			cols.time = i
		case "대분류":
			cols.category = i
		case "금액":
			cols.amount = i
		case "내용":
			cols.content = i
		case "태그":
			cols.tags = i
		case "메모":
			cols.memo = i
		}
	}

	return cols, cols.date != -1
}

func (c columns) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// fromCells maps raw spreadsheet cells to preview rows. The first row with
// a 날짜 label is the header; everything above it is ignored, everything
// below is decoded. Rows with no date and no amount cell are skipped as
// padding.
func fromCells(cells [][]string) ([]importer.Row, error) {
	var cols columns
	headerIndex := -1

	for i, row := range cells {
		if c, ok := headerColumns(row); ok {
			cols = c
			headerIndex = i
			break
		}
	}

	if headerIndex == -1 {
		return nil, ErrNoHeader
	}

	rows := make([]importer.Row, 0, len(cells)-headerIndex-1)
	for _, row := range cells[headerIndex+1:] {
		raw := importer.RawRow{
			Date:      DateString(cols.cell(row, cols.date)),
			Time:      TimeString(cols.cell(row, cols.time)),
			Category:  cols.cell(row, cols.category),
			Amount:    cols.cell(row, cols.amount),
			Content:   cols.cell(row, cols.content),
			TagColumn: cols.cell(row, cols.tags),
			Memo:      cols.cell(row, cols.memo),
		}

		if raw.Date == "" && raw.Amount == "" {
			continue
		}

		rows = append(rows, importer.MapRow(raw))
	}

	return rows, nil
}

// Parse reads an .xls workbook and returns its ledger rows as preview rows.
func Parse(data []byte) ([]importer.Row, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("could not open the workbook: %w", err)
	}

	cells := workbook.ReadAllCells(maxRows)
	if len(cells) == 0 {
		return nil, ErrNoHeader
	}

	return fromCells(cells)
}
