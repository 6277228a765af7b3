package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is an opaque bearer credential for a logged in user.
//
// The token carries no claims. The owner identifier for every request is
// resolved by looking the token up here.
type Session struct {
	DefaultModel
	Token  string    `gorm:"uniqueIndex"`
	UserID uuid.UUID `gorm:"index"`
	User   User      `json:"-"`
}

// BeforeCreate generates the resource UUID and the session token.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	err := s.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	s.Token = uuid.NewString()
	return nil
}

// SessionByToken resolves a bearer token to its session, including the user.
func SessionByToken(db *gorm.DB, token string) (Session, error) {
	var session Session
	err := db.Preload("User").Where(&Session{Token: token}).First(&session).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	return session, nil
}
