package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"

	v1 "github.com/gagyebu/backend/internal/controllers/v1"
	"github.com/gagyebu/backend/internal/importer"
	"github.com/gagyebu/backend/internal/models"
	"github.com/gagyebu/backend/test"
)

const testLedgerCSV = `날짜,시간,대분류,금액,내용,태그,메모
45444,0.5,식비,12000,커피 #간식,,
2024-06-02,09:30,취미,30000,필름,사진,
2024-06-03,,식비,8000,저녁,,
`

// uploadBody builds a multipart body with a single form file and returns it
// together with the Content-Type header for the request.
func uploadBody(suite *TestSuiteStandard, filename, content string) (*bytes.Buffer, map[string]string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	suite.Require().Nil(err)

	_, err = part.Write([]byte(content))
	suite.Require().Nil(err)
	suite.Require().Nil(writer.Close())

	return body, map[string]string{"Content-Type": writer.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestImportPreview() {
	login := suite.register("ledger@example.com")

	body, contentType := uploadBody(suite, "ledger.csv", testLedgerCSV)
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/preview", body, test.BearerHeader(login.Token), contentType)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportPreviewResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	data := *response.Data
	suite.Require().Len(data.Rows, 3)

	suite.Assert().Equal("2024-06-01", data.Rows[0].Date)
	suite.Assert().Equal("식비", data.Rows[0].Category)
	suite.Assert().Equal(int64(12000), data.Rows[0].Amount)
	suite.Assert().Equal("커피", data.Rows[0].Memo)
	suite.Assert().Equal(models.Tags{"간식"}, data.Rows[0].Tags)
	suite.Assert().True(data.Rows[0].KnownCategory)
	suite.Assert().False(data.Rows[1].KnownCategory)

	// 취미 is not one of the default categories
	suite.Require().Len(data.NovelCategories, 1)
	suite.Assert().Equal("취미", data.NovelCategories[0].Name)
}

func (suite *TestSuiteStandard) TestImportPreviewWithoutFile() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/preview", nil, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportPreviewWrongSuffix() {
	login := suite.register("ledger@example.com")

	body, contentType := uploadBody(suite, "ledger.pdf", "not a ledger")
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import/preview", body, test.BearerHeader(login.Token), contentType)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportBlockedByNovelCategory() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", v1.ImportEditable{
		Rows: []importer.Row{
			{Date: "2024-06-02", Category: "취미", Amount: 30000},
		},
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ImportResultResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "취미")

	// Nothing was saved
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-06", nil, test.BearerHeader(login.Token))
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Empty(transactions.Data)
}

func (suite *TestSuiteStandard) TestImportWithCreatedCategory() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", v1.ImportEditable{
		Rows: []importer.Row{
			{Date: "2024-06-01", Category: "식비", Amount: 12000, Memo: "커피", Tags: models.Tags{"간식"}},
			{Date: "2024-06-02", Category: "취미", Amount: 30000, Memo: "필름"},
		},
		CreateCategories: []string{"취미"},
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResultResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.Saved)

	// The new category exists now
	categoriesRecorder := test.Request(suite.T(), http.MethodGet, "/v1/categories?name=취미", nil, test.BearerHeader(login.Token))
	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &categoriesRecorder, &categories)
	suite.Assert().Len(categories.Data, 1)

	// And the transactions were saved
	transactionsRecorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-06", nil, test.BearerHeader(login.Token))
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &transactionsRecorder, &transactions)
	suite.Assert().Len(transactions.Data, 2)
}

func (suite *TestSuiteStandard) TestImportInvalidDateBlocksBatch() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", v1.ImportEditable{
		Rows: []importer.Row{
			{Date: "2024-06-01", Category: "식비", Amount: 12000},
			{Date: "yesterday", Category: "식비", Amount: 8000},
		},
	}, test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ImportResultResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "row 2")

	// The valid row was not saved either
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/transactions?month=2024-06", nil, test.BearerHeader(login.Token))
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	suite.Assert().Empty(transactions.Data)
}

func (suite *TestSuiteStandard) TestImportEmptyBody() {
	login := suite.register("ledger@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/import", "", test.BearerHeader(login.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
