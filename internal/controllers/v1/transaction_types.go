package v1

import (
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/internal/report"
	"github.com/gagyebu/backend/internal/types"
	"github.com/google/uuid"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date     types.Date  `json:"date" example:"2024-06-01"`     // Calendar date of the transaction
	Category string      `json:"category" example:"식비"`         // Category name, stored verbatim
	Amount   int64       `json:"amount" example:"12000"`        // Amount in won
	Memo     string      `json:"memo" example:"커피"`             // Free-text memo
	Tags     models.Tags `json:"tags" example:"간식"`             // Tags on the transaction
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		Date:     editable.Date,
		Category: editable.Category,
		Amount:   editable.Amount,
		Memo:     editable.Memo,
		Tags:     editable.Tags,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// AmountDisplay is computed from the amount
	AmountDisplay string `json:"amountDisplay" example:"12,000원"`
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:     model.Date,
			Category: model.Category,
			Amount:   model.Amount,
			Memo:     model.Memo,
			Tags:     model.Tags,
		},
		AmountDisplay: report.FormatWon(model.Amount),
	}
}

type TransactionQueryFilter struct {
	Month    string `form:"month" filterField:"false"` // The month the transactions are in, required
	Category string `form:"category"`                  // Filter by category name
	Tag      string `form:"tag" filterField:"false"`   // Filter by tag, supports * globbing
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                            // List of transactions, newest first
	Error *string       `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
