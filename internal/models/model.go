// Package models implements the persisted resources of the ledger backend.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID        uuid.UUID       `json:"id" example:"1dd358a2-572e-4de5-9a33-6639b9803b22"` // UUID for the resource
	CreatedAt time.Time       `json:"createdAt" example:"2024-06-01T11:14:07.312865Z"`   // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2024-06-14T18:02:50.001009Z"`   // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"-" gorm:"index"`                                    // Time the resource was marked as deleted
}

// AfterFind normalizes the timestamps to the UTC timezone. They are stored
// in UTC already, but reading them back returns them with a +0000 offset,
// which is not the same to time.Equal callers.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates a UUID for the resource. An ID that is already set
// is kept, so that association saves do not re-key existing rows.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
