package v1_test

import (
	"net/http"
	"os"
	"time"

	v1 "github.com/gagyebu/backend/internal/controllers/v1"
	"github.com/gagyebu/backend/internal/types"
	"github.com/gagyebu/backend/test"
)

func (suite *TestSuiteStandard) TestSeedDisabledByDefault() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/seed", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSeed() {
	os.Setenv("ENABLE_SEED", "true")
	defer os.Unsetenv("ENABLE_SEED")

	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/seed", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SeedResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(3, response.Data.Saved)

	month := types.MonthOf(time.Now())
	listRecorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month="+month.String(), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &listRecorder, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &transactions)
	suite.Assert().Len(transactions.Data, 3)
}
