package v1

import (
	"net/http"

	"github.com/gagyebu/backend/internal/httputil"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/internal/report"
	"github.com/gagyebu/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for monthly summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSummary)
		r.GET("", GetSummary)
	}
}

// SummaryEntry is one line of a summary with display values attached.
type SummaryEntry struct {
	Name         string `json:"name" example:"식비"`                 // Category or tag name
	Total        int64  `json:"total" example:"20000"`             // Total spending in won
	TotalDisplay string `json:"totalDisplay" example:"20,000원"`    // Total formatted for display
	Color        int    `json:"color,omitempty" example:"3"`       // Palette slot, only set for tags
}

type Summary struct {
	Month        string         `json:"month" example:"2024-06"`   // The month the summary covers
	Total        int64          `json:"total" example:"26500"`     // Total spending in won
	TotalDisplay string         `json:"totalDisplay" example:"26,500원"` // Total formatted for display
	Categories   []SummaryEntry `json:"categories"`                // Per-category totals, first-seen order
	Tags         []SummaryEntry `json:"tags"`                      // Per-tag totals, first-seen order
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                                  // The summary
	Error *string  `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly summary
// @Description	Returns per-category and per-tag spending totals for a month
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Router			/v1/summary [get]
// @Param			month	query	string	true	"The month in YYYY-MM format"
func GetSummary(c *gin.Context) {
	var query QueryMonth
	_ = c.Bind(&query)

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForMonth(models.DB, userID(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	// The aggregation walks the transactions oldest first so that the
	// first-seen order of the entries matches the order of spending.
	oldestFirst := make([]models.Transaction, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		oldestFirst = append(oldestFirst, transactions[i])
	}

	categories := report.ByCategory(oldestFirst)
	tags := report.ByTag(oldestFirst)

	data := Summary{
		Month:        month.String(),
		Total:        categories.Sum(),
		TotalDisplay: report.FormatWon(categories.Sum()),
		Categories:   make([]SummaryEntry, 0, len(categories)),
		Tags:         make([]SummaryEntry, 0, len(tags)),
	}

	for _, entry := range categories {
		data.Categories = append(data.Categories, SummaryEntry{
			Name:         entry.Name,
			Total:        entry.Total,
			TotalDisplay: report.FormatWon(entry.Total),
		})
	}

	for _, entry := range tags {
		data.Tags = append(data.Tags, SummaryEntry{
			Name:         entry.Name,
			Total:        entry.Total,
			TotalDisplay: report.FormatWon(entry.Total),
			Color:        report.TagColor(entry.Name),
		})
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}
