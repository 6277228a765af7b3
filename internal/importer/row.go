// Package importer implements the preview and reconciliation pipeline for
// spreadsheet imports.
package importer

import (
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/internal/types"
	"github.com/google/uuid"
)

// RawRow is one spreadsheet row after decoding, before mapping. All fields
// are optional; empty strings mark absent cells.
type RawRow struct {
	Date      string // calendar date, already decoded from a serial if needed
	Time      string // time of day, currently unused beyond decoding
	Category  string
	Amount    string
	Content   string
	TagColumn string // explicit comma-separated tag cell
	Memo      string
}

// Row is a transient, editable candidate transaction produced from
// spreadsheet input. It is never persisted until the session is saved.
type Row struct {
	Date     string      `json:"date"`
	Category string      `json:"category"`
	Amount   int64       `json:"amount"`
	Memo     string      `json:"memo"`
	Tags     models.Tags `json:"tags"`

	// KnownCategory is derived from the user's category set and recomputed
	// on every session transition.
	KnownCategory bool `json:"knownCategory"`
}

// Transaction converts the row into a transaction for the given owner.
// The date must parse as YYYY-MM-DD; the decoder passes unrecognized
// values through unchanged, so this is where they finally fail.
func (r Row) Transaction(userID uuid.UUID) (models.Transaction, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return models.Transaction{}, ErrDateInvalid
	}

	return models.Transaction{
		UserID:   userID,
		Date:     date,
		Category: r.Category,
		Amount:   r.Amount,
		Memo:     r.Memo,
		Tags:     r.Tags.Dedupe(),
	}, nil
}
