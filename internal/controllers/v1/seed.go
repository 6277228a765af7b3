package v1

import (
	"net/http"
	"time"

	"github.com/gagyebu/backend/internal/httputil"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSeedRoutes registers the demo data route. It is only mounted when
// demo seeding is enabled for the instance.
func RegisterSeedRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSeed)
		r.POST("", Seed)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Seed
// @Success		204
// @Router			/v1/seed [options]
func OptionsSeed(c *gin.Context) {
	httputil.OptionsPost(c)
}

type SeedResponse struct {
	Data  *ImportResultData `json:"data"`  // How many transactions were created
	Error *string           `json:"error"` // The error, if any occurred
}

// @Summary		Seed demo data
// @Description	Creates a few example transactions in the current month for the authenticated user
// @Tags			Seed
// @Produce		json
// @Success		201	{object}	SeedResponse
// @Failure		500	{object}	SeedResponse
// @Router			/v1/seed [post]
func Seed(c *gin.Context) {
	owner := userID(c)
	month := types.MonthOf(time.Now())
	first, _ := month.Bounds()

	day := func(d int) types.Date {
		return types.DateOf(first.AddDate(0, 0, d-1))
	}

	transactions := []models.Transaction{
		{UserID: owner, Date: day(1), Category: "식비", Amount: 12000, Memo: "점심 김치찌개", Tags: models.Tags{"외식"}},
		{UserID: owner, Date: day(2), Category: "교통비", Amount: 1500, Memo: "버스", Tags: models.Tags{"출근"}},
		{UserID: owner, Date: day(3), Category: "식비", Amount: 4500, Memo: "커피", Tags: models.Tags{"간식"}},
	}

	err := models.CreateTransactions(models.DB, transactions)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SeedResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SeedResponse{Data: &ImportResultData{
		Saved: len(transactions),
	}})
}
