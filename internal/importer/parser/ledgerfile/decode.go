// Package ledgerfile parses household ledger spreadsheets, both the .xls
// files exported by spreadsheet applications and plain CSV with the same
// columns.
package ledgerfile

import (
	"strconv"
	"strings"
	"time"
)

// Excel serial 25569 is the Unix epoch, 1970-01-01.
const excelEpochOffset = 25569

const secondsPerDay = 86400

// kst is the timezone the ledgers are written in. Serial timestamps are
// shifted into it before the calendar date is read off.
var kst = time.FixedZone("KST", 9*60*60)

// DateString decodes a date cell. Numeric cells are treated as Excel serial
// dates, cells already starting with an ISO date are truncated to it, and
// anything else is passed through unchanged for the user to fix in the
// preview.
func DateString(cell string) string {
	cell = strings.TrimSpace(cell)

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		seconds := (serial - excelEpochOffset) * secondsPerDay
		return time.Unix(int64(seconds), 0).In(kst).Format("2006-01-02")
	}

	if len(cell) >= 10 {
		if _, err := time.Parse("2006-01-02", cell[:10]); err == nil {
			return cell[:10]
		}
	}

	return cell
}

// TimeString decodes a time cell. Numeric cells are treated as an Excel day
// fraction, cells starting with HH:mm are truncated to it, and anything
// else is passed through unchanged.
func TimeString(cell string) string {
	cell = strings.TrimSpace(cell)

	if fraction, err := strconv.ParseFloat(cell, 64); err == nil && fraction >= 0 && fraction < 1 {
		seconds := int(fraction*secondsPerDay + 0.5)
		return time.Date(0, 1, 1, 0, 0, seconds, 0, time.UTC).Format("15:04")
	}

	if len(cell) >= 5 {
		if _, err := time.Parse("15:04", cell[:5]); err == nil {
			return cell[:5]
		}
	}

	return cell
}
