package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/gagyebu/backend/internal/controllers/v1"
	"github.com/gagyebu/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsCategoryList() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/categories", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsCategoryDetail() {
	login := suite.register("ledger@example.com")
	category := suite.createTestCategory(login, "취미")

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	login := suite.register("ledger@example.com")

	category := suite.createTestCategory(login, "취미")
	suite.Assert().Equal("취미", category.Name)
	suite.Assert().NotEmpty(category.ID)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithoutName() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategoriesFilterByName() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories?name=*비", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// 식비, 교통비, 주거비, 통신비 from the default set match the glob
	suite.Assert().Len(response.Data, 4)
}

func (suite *TestSuiteStandard) TestGetCategory() {
	login := suite.register("ledger@example.com")
	category := suite.createTestCategory(login, "취미")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("취미", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesAreUserScoped() {
	owner := suite.register("owner@example.com")
	other := suite.register("other@example.com")

	category := suite.createTestCategory(owner, "취미")

	// Another user's category does not exist from this user's point of view
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	login := suite.register("ledger@example.com")
	category := suite.createTestCategory(login, "취미")

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]string{
		"name": "여가",
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("여가", response.Data.Name)
}

func (suite *TestSuiteStandard) TestRenameCategoryKeepsTransactions() {
	login := suite.register("ledger@example.com")
	category := suite.createTestCategory(login, "취미")

	transaction := suite.createTestTransaction(login, v1.TransactionEditable{
		Date:     mustDate("2024-06-01"),
		Category: "취미",
		Amount:   30000,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]string{
		"name": "여가",
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The transaction keeps the name it was saved with
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("취미", response.Data.Category)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	login := suite.register("ledger@example.com")
	category := suite.createTestCategory(login, "취미")

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryInvalidID() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories/not-a-uuid", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
