package models_test

import (
	"github.com/gagyebu/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserPassword() {
	user := suite.createTestUser("user@example.com")

	assert.True(suite.T(), user.CheckPassword("correct horse battery staple"))
	assert.False(suite.T(), user.CheckPassword("incorrect horse battery staple"))
	assert.NotContains(suite.T(), user.PasswordHash, "correct horse")
}

func (suite *TestSuiteStandard) TestUserEmailTrimWhitespace() {
	user := suite.createTestUser("  spacey@example.com ")

	assert.Equal(suite.T(), "spacey@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser("twice@example.com")

	second := models.User{Email: "twice@example.com"}
	err := second.SetPassword("some other password")
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&second).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestSessionByToken() {
	user := suite.createTestUser("session@example.com")

	session := models.Session{UserID: user.ID}
	err := models.DB.Create(&session).Error
	assert.Nil(suite.T(), err)
	assert.NotEmpty(suite.T(), session.Token)

	found, err := models.SessionByToken(models.DB, session.Token)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, found.UserID)
	assert.Equal(suite.T(), user.Email, found.User.Email)
}

func (suite *TestSuiteStandard) TestSessionByTokenUnknown() {
	_, err := models.SessionByToken(models.DB, "not-a-token")
	assert.ErrorIs(suite.T(), err, models.ErrSessionNotFound)
}

// Creating a session with the User association set must point at the
// existing user row instead of re-keying it, which would orphan the session.
func (suite *TestSuiteStandard) TestSessionCreateWithUserSet() {
	user := suite.createTestUser("associated@example.com")

	session := models.Session{UserID: user.ID, User: user}
	err := models.DB.Create(&session).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, session.UserID)

	var count int64
	err = models.DB.Model(&models.User{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	found, err := models.SessionByToken(models.DB, session.Token)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, found.User.ID)
}
