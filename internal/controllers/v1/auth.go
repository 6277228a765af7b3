package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gagyebu/backend/internal/httputil"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contextUserID is the gin context key the login middleware stores the
// authenticated user's ID under.
const contextUserID = "userID"

// RegisterAuthRoutes registers the routes for registration, login and
// logout with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", httputil.OptionsPost)
		r.POST("/register", Register)

		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", PostLogin)

		r.OPTIONS("/logout", httputil.OptionsDelete)
		r.DELETE("/logout", RequireLogin(), Logout)
	}
}

// RequireLogin resolves the bearer token in the Authorization header to a
// session and stores the session user's ID in the context. Requests without
// a valid token are aborted with 401.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errNoToken.Error(),
			})
			return
		}

		session, err := models.SessionByToken(models.DB, token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextUserID, session.UserID)
		c.Next()
	}
}

// userID returns the authenticated user's ID from the context. It is only
// valid behind the RequireLogin middleware.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

type Credentials struct {
	Email    string `json:"email" example:"ledger@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type User struct {
	models.DefaultModel
	Email string `json:"email" example:"ledger@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
	}
}

type LoginResponse struct {
	Data  *Login  `json:"data"`                                                 // The session, if login succeeded
	Error *string `json:"error" example:"the email address or password is wrong"` // The error, if any occurred
}

type Login struct {
	Token string `json:"token" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Bearer token for subsequent requests
	User  User   `json:"user"`                                                 // The user the session belongs to
}

// @Summary		Register user
// @Description	Registers a new user and creates their default categories
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		s := errCredentialsNotSet.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{Error: &s})
		return
	}

	user := models.User{Email: credentials.Email}
	err = user.SetPassword(credentials.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &s})
		return
	}

	// The user and their default categories are created together so that a
	// failed seed does not leave a user without categories.
	var session models.Session
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&user).Error
		if err != nil {
			return err
		}

		err = models.SeedDefaultCategories(tx, user.ID)
		if err != nil {
			return err
		}

		session = models.Session{UserID: user.ID}
		return tx.Create(&session).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{Data: &Login{
		Token: session.Token,
		User:  newUser(user),
	}})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a new session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func PostLogin(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Email: strings.TrimSpace(credentials.Email)}).First(&user).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	// The same error for unknown email and wrong password, so that the
	// endpoint does not leak which addresses are registered.
	if err != nil || !user.CheckPassword(credentials.Password) {
		s := errWrongCredentials.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{Error: &s})
		return
	}

	session := models.Session{UserID: user.ID}
	err = models.DB.Create(&session).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{Data: &Login{
		Token: session.Token,
		User:  newUser(user),
	}})
}

// @Summary		Logout
// @Description	Deletes the session the request is authenticated with
// @Tags			Auth
// @Success		204
// @Failure		401	{object}	httpError
// @Router			/v1/auth/logout [delete]
func Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	err := models.DB.Unscoped().Where(&models.Session{Token: token}).Delete(&models.Session{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
