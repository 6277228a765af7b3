package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gagyebu/backend/internal/httputil"
	"github.com/gagyebu/backend/internal/importer"
	"github.com/gagyebu/backend/internal/importer/parser/ledgerfile"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", Import)

		r.OPTIONS("/preview", OptionsImportPreview)
		r.POST("/preview", ImportPreview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/preview [options]
func OptionsImportPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffixes ...string) (multipart.File, string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, "", errNoFilePost
	}

	if err != nil {
		return nil, "", err
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(formFile.Filename, suffix) {
			f, err := formFile.Open()
			if err != nil {
				return nil, "", err
			}

			return f, suffix, nil
		}
	}

	return nil, "", fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(suffixes, ", "))
}

// NovelCategory is a category name found in the file but missing from the
// user's category set.
type NovelCategory struct {
	Name       string `json:"name" example:"취미"`             // The name as it appears in the file
	Suggestion string `json:"suggestion,omitempty" example:"식비"` // An existing category this might be a typo of
}

type ImportPreviewData struct {
	Rows            []importer.Row  `json:"rows"`            // The editable preview rows
	NovelCategories []NovelCategory `json:"novelCategories"` // Categories that must be resolved before saving
}

type ImportPreviewResponse struct {
	Data  *ImportPreviewData `json:"data"`                                          // The preview
	Error *string            `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// @Summary		Import preview
// @Description	Parses an uploaded ledger file and returns editable preview rows together with the categories that do not exist yet
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewResponse
// @Failure		400		{object}	ImportPreviewResponse
// @Param			file	formData	file	true	"The .xls or .csv ledger file"
// @Router			/v1/import/preview [post]
func ImportPreview(c *gin.Context) {
	f, suffix, err := getUploadedFile(c, ".xls", ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{Error: &s})
		return
	}

	var rows []importer.Row
	switch suffix {
	case ".xls":
		data, err := io.ReadAll(f)
		if err == nil {
			rows, err = ledgerfile.Parse(data)
		}
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ImportPreviewResponse{Error: &s})
			return
		}
	case ".csv":
		rows, err = ledgerfile.ParseCSV(f)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ImportPreviewResponse{Error: &s})
			return
		}
	}

	known, err := models.CategoryNames(models.DB, userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewResponse{Error: &s})
		return
	}

	session := importer.NewSession(rows, known)

	c.JSON(http.StatusOK, ImportPreviewResponse{Data: newImportPreviewData(session)})
}

func newImportPreviewData(session importer.Session) *ImportPreviewData {
	novel := make([]NovelCategory, 0, len(session.Novel))
	for _, name := range session.Novel {
		novel = append(novel, NovelCategory{
			Name:       name,
			Suggestion: importer.Suggest(name, session.Known),
		})
	}

	return &ImportPreviewData{
		Rows:            session.Rows,
		NovelCategories: novel,
	}
}

// ImportEditable is the edited preview a client sends back to be saved.
type ImportEditable struct {
	Rows             []importer.Row `json:"rows"`             // The rows as edited in the preview
	CreateCategories []string       `json:"createCategories"` // Novel category names to create before saving
}

type ImportResultData struct {
	Saved int `json:"saved" example:"23"` // Number of transactions saved
}

type ImportResultResponse struct {
	Data  *ImportResultData `json:"data"`                                            // The result
	Error *string           `json:"error" example:"add the new categories before saving: 취미"` // The error, if any occurred
}

// @Summary		Import
// @Description	Saves edited preview rows as transactions. Fails as a whole if any row is invalid or references a category that neither exists nor is listed for creation.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportResultResponse
// @Failure		400		{object}	ImportResultResponse
// @Failure		500		{object}	ImportResultResponse
// @Param			import	body		ImportEditable	true	"The edited preview"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var editable ImportEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}

	known, err := models.CategoryNames(models.DB, userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}

	// The session is rebuilt from the known categories plus the ones the
	// client asks to create, then asked to save. Rows with categories that
	// are still unknown block the whole batch.
	session := importer.NewSession(editable.Rows, known)
	for _, name := range editable.CreateCategories {
		session = session.AddCategory(name)
	}

	session, err = session.BeginSave()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResultResponse{Error: &s})
		return
	}

	owner := userID(c)
	transactions := make([]models.Transaction, 0, len(session.Rows))
	for i, row := range session.Rows {
		transaction, err := row.Transaction(owner)
		if err != nil {
			s := fmt.Errorf("row %d: %w", i+1, err).Error()
			c.JSON(http.StatusBadRequest, ImportResultResponse{Error: &s})
			return
		}

		transactions = append(transactions, transaction)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, name := range editable.CreateCategories {
			// Creating a category that exists already would duplicate it
			if slices.Contains(known, name) {
				continue
			}

			err := tx.Create(&models.Category{UserID: owner, Name: name}).Error
			if err != nil {
				return err
			}
		}

		return models.CreateTransactions(tx, transactions)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResultResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ImportResultResponse{Data: &ImportResultData{
		Saved: len(transactions),
	}})
}
