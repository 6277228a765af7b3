package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gagyebu/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tags is a set of tag strings on a transaction, stored as a JSON array.
// Insertion order is kept, duplicates are suppressed on save.
type Tags []string

// Value returns the value for the SQL driver to write to the database.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return string(raw), nil
}

// Scan reads the value from the database.
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = Tags{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tags", value)
	}

	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}

	return json.Unmarshal(raw, t)
}

// GormDataType defines the data type used by gorm for the type.
func (Tags) GormDataType() string {
	return "text"
}

// Dedupe returns the tags with duplicates removed, keeping the first
// occurrence of each tag.
func (t Tags) Dedupe() Tags {
	seen := make(map[string]struct{}, len(t))
	deduped := make(Tags, 0, len(t))

	for _, tag := range t {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		deduped = append(deduped, tag)
	}

	return deduped
}

// Contains reports whether the tag is in the set.
func (t Tags) Contains(tag string) bool {
	for _, candidate := range t {
		if candidate == tag {
			return true
		}
	}

	return false
}

// Transaction represents a single dated entry in a user's ledger.
//
// The category is a free-text name, not a foreign key. Amounts are integer
// won, so there is no minor unit to track.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID  `gorm:"index"`
	Date     types.Date `gorm:"index"`
	Category string
	Amount   int64
	Memo     string
	Tags     Tags
}

// BeforeSave
//   - rejects transactions without a date
//   - trims whitespace from the memo
//   - suppresses duplicate tags
//
// The category is stored verbatim: the import pipeline matches categories by
// exact string comparison, so normalizing here would make stored rows diverge
// from what reconciliation saw.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		return ErrDateRequired
	}

	t.Memo = strings.TrimSpace(t.Memo)
	t.Tags = t.Tags.Dedupe()

	return nil
}

// TransactionsForMonth returns all transactions of a user in a calendar
// month, newest first.
func TransactionsForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) ([]Transaction, error) {
	from, until := month.Bounds()

	var transactions []Transaction
	err := db.
		Where(&Transaction{UserID: userID}).
		Where("date >= ? AND date < ?", from, until).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// CreateTransactions stores a batch of transactions atomically. If any row
// fails, nothing is committed.
func CreateTransactions(db *gorm.DB, transactions []Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range transactions {
			err := tx.Create(&transactions[i]).Error
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		return nil
	})
}
