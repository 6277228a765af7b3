package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/gagyebu/backend/internal/controllers/v1"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	login := suite.register("ledger@example.com")

	transaction := suite.createTestTransaction(login, v1.TransactionEditable{
		Date:     mustDate("2024-06-01"),
		Category: "식비",
		Amount:   12000,
		Memo:     "커피",
		Tags:     models.Tags{"간식"},
	})

	suite.Assert().Equal("식비", transaction.Category)
	suite.Assert().Equal(int64(12000), transaction.Amount)
	suite.Assert().Equal("12,000원", transaction.AmountDisplay)
	suite.Assert().Equal(models.Tags{"간식"}, transaction.Tags)
}

func (suite *TestSuiteStandard) TestCreateTransactionWithoutDate() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Category: "식비",
		Amount:   12000,
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsRequiresMonth() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=June", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsForMonth() {
	login := suite.register("ledger@example.com")

	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-01"), Category: "식비", Amount: 12000})
	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-30"), Category: "교통비", Amount: 1500})
	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-07-01"), Category: "식비", Amount: 8000})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-06", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Newest first
	suite.Assert().Equal("교통비", response.Data[0].Category)
	suite.Assert().Equal("식비", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestGetTransactionsLastDayOfMonth() {
	login := suite.register("ledger@example.com")

	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-05-31"), Category: "식비", Amount: 9000})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-05", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilter() {
	login := suite.register("ledger@example.com")

	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-01"), Category: "식비", Amount: 12000, Tags: models.Tags{"간식"}})
	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-02"), Category: "식비", Amount: 8000, Tags: models.Tags{"외식"}})
	_ = suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-03"), Category: "교통비", Amount: 1500, Tags: models.Tags{"출근"}})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"by category", "category=식비", 2},
		{"by unknown category", "category=없음", 0},
		{"by tag", "tag=간식", 1},
		{"by tag glob", "tag=*식", 2},
		{"category and tag", "category=식비&tag=외식", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "/v1/transactions?month=2024-06&"+tt.query, nil, test.BearerHeader(login.Token))
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsAreUserScoped() {
	owner := suite.register("owner@example.com")
	other := suite.register("other@example.com")

	transaction := suite.createTestTransaction(owner, v1.TransactionEditable{Date: mustDate("2024-06-01"), Category: "식비", Amount: 12000})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-06", nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	login := suite.register("ledger@example.com")
	transaction := suite.createTestTransaction(login, v1.TransactionEditable{
		Date:     mustDate("2024-06-01"),
		Category: "식비",
		Amount:   12000,
		Memo:     "커피",
	})

	// Only the amount is updated, everything else is kept
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"amount": 4500,
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(int64(4500), response.Data.Amount)
	suite.Assert().Equal("커피", response.Data.Memo)
	suite.Assert().Equal("식비", response.Data.Category)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	login := suite.register("ledger@example.com")
	transaction := suite.createTestTransaction(login, v1.TransactionEditable{Date: mustDate("2024-06-01"), Category: "식비", Amount: 12000})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
