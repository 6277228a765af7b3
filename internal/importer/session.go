package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// State is the phase an import session is in.
type State string

const (
	// StateIdle means no file is loaded.
	StateIdle State = "idle"
	// StatePreviewing means rows are loaded and editable.
	StatePreviewing State = "previewing"
	// StateSaving means the rows have passed reconciliation and are being
	// submitted as a batch.
	StateSaving State = "saving"
)

var (
	ErrNotPreviewing = errors.New("the import session has no rows to work on")
	ErrRowIndex      = errors.New("there is no import row with this index")
	ErrUnknownField  = errors.New("this field of an import row cannot be edited")
	ErrAmountInvalid = errors.New("the amount could not be parsed as a number")
	ErrDateInvalid   = errors.New("the date must be specified as YYYY-MM-DD")
)

// UnresolvedCategoriesError blocks saving while novel categories remain.
type UnresolvedCategoriesError struct {
	Names []string
}

func (e UnresolvedCategoriesError) Error() string {
	return fmt.Sprintf("add the new categories before saving: %s", strings.Join(e.Names, ", "))
}

// Session is an immutable snapshot of an import preview. Every mutation
// returns a new snapshot with the novel category set recomputed; the
// receiver is never changed.
type Session struct {
	State State    `json:"state"`
	Rows  []Row    `json:"rows"`
	Known []string `json:"-"`
	Novel []string `json:"novelCategories"`
}

// NewSession starts a preview from freshly mapped rows and the user's
// current category names.
func NewSession(rows []Row, known []string) Session {
	s := Session{
		State: StatePreviewing,
		Rows:  rows,
		Known: known,
	}

	return s.reconciled()
}

// reconciled returns the session with the novel set and the per-row
// known-category flags recomputed from the current rows.
func (s Session) reconciled() Session {
	knownSet := make(map[string]struct{}, len(s.Known))
	for _, name := range s.Known {
		knownSet[name] = struct{}{}
	}

	rows := make([]Row, len(s.Rows))
	for i, row := range s.Rows {
		_, known := knownSet[row.Category]
		row.KnownCategory = known
		rows[i] = row
	}

	s.Rows = rows
	s.Novel = NovelCategories(rows, s.Known)
	return s
}

// cloneRows returns a copy of the row slice so that mutations never leak
// into earlier snapshots.
func (s Session) cloneRows() []Row {
	rows := make([]Row, len(s.Rows))
	copy(rows, s.Rows)
	return rows
}

func (s Session) checkRow(idx int) error {
	if s.State != StatePreviewing {
		return ErrNotPreviewing
	}
	if idx < 0 || idx >= len(s.Rows) {
		return ErrRowIndex
	}
	return nil
}

// EditRow sets a single field of a row. Editable fields are "date",
// "category", "amount" and "memo".
func (s Session) EditRow(idx int, field, value string) (Session, error) {
	if err := s.checkRow(idx); err != nil {
		return s, err
	}

	rows := s.cloneRows()
	switch field {
	case "date":
		rows[idx].Date = value
	case "category":
		rows[idx].Category = value
	case "amount":
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return s, ErrAmountInvalid
		}
		rows[idx].Amount = amount.Round(0).IntPart()
	case "memo":
		rows[idx].Memo = value
	default:
		return s, ErrUnknownField
	}

	s.Rows = rows
	return s.reconciled(), nil
}

// DeleteRow removes a row from the preview.
func (s Session) DeleteRow(idx int) (Session, error) {
	if err := s.checkRow(idx); err != nil {
		return s, err
	}

	rows := make([]Row, 0, len(s.Rows)-1)
	rows = append(rows, s.Rows[:idx]...)
	rows = append(rows, s.Rows[idx+1:]...)

	s.Rows = rows
	return s.reconciled(), nil
}

// AddTag adds a tag to a row. Empty tags and tags the row already carries
// are ignored without an error.
func (s Session) AddTag(idx int, tag string) (Session, error) {
	if err := s.checkRow(idx); err != nil {
		return s, err
	}

	tag = strings.TrimSpace(tag)
	if tag == "" || s.Rows[idx].Tags.Contains(tag) {
		return s, nil
	}

	rows := s.cloneRows()
	rows[idx].Tags = append(rows[idx].Tags.Dedupe(), tag)

	s.Rows = rows
	return s.reconciled(), nil
}

// RemoveTag removes a tag from a row. Removing a tag the row does not carry
// is not an error.
func (s Session) RemoveTag(idx int, tag string) (Session, error) {
	if err := s.checkRow(idx); err != nil {
		return s, err
	}

	rows := s.cloneRows()
	tags := rows[idx].Tags
	kept := tags[:0:0]
	for _, candidate := range tags {
		if candidate != tag {
			kept = append(kept, candidate)
		}
	}
	rows[idx].Tags = kept

	s.Rows = rows
	return s.reconciled(), nil
}

// AddCategory records a newly created category. Rows that share the name
// stop being novel without any per-row re-validation.
func (s Session) AddCategory(name string) Session {
	known := make([]string, 0, len(s.Known)+1)
	known = append(known, s.Known...)
	known = append(known, name)

	s.Known = known
	return s.reconciled()
}

// BeginSave transitions to Saving. It fails with UnresolvedCategoriesError
// while novel categories remain and with ErrNotPreviewing when there is
// nothing to save.
func (s Session) BeginSave() (Session, error) {
	if s.State != StatePreviewing || len(s.Rows) == 0 {
		return s, ErrNotPreviewing
	}

	if len(s.Novel) > 0 {
		return s, UnresolvedCategoriesError{Names: s.Novel}
	}

	s.State = StateSaving
	return s, nil
}

// CompleteSave discards the preview after a successful batch submit.
func (s Session) CompleteSave() Session {
	return Session{State: StateIdle}
}

// FailSave returns to Previewing after a failed batch submit, keeping all
// rows for another attempt.
func (s Session) FailSave() Session {
	s.State = StatePreviewing
	return s
}

// Cancel discards all preview state unconditionally.
func (s Session) Cancel() Session {
	return Session{State: StateIdle}
}
