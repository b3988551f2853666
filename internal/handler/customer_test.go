package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmrental/reports-api/internal/repository"
)

func newCustomerHandler(t *testing.T) (*CustomerHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &CustomerHandler{
		Customers: repository.NewCustomerRepo(db),
		Reports:   repository.NewReportRepo(db),
	}, mock
}

func TestRentalInfoRequiresCustomerID(t *testing.T) {
	h, _ := newCustomerHandler(t)

	rec := doRequest(t, h.RentalInfo, "/rental_info")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "customer_id is required", body["error"])
}

func TestRentalInfoRejectsNonNumericID(t *testing.T) {
	h, _ := newCustomerHandler(t)

	rec := doRequest(t, h.RentalInfo, "/rental_info?customer_id=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalInfoUnknownCustomerIsNotFound(t *testing.T) {
	h, mock := newCustomerHandler(t)

	cols := []string{"customer_id", "first_name", "last_name",
		"film_id", "title", "rental_date", "return_date"}
	mock.ExpectQuery("FROM customer c").WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows(cols))
	mock.ExpectQuery("SELECT 1 FROM customer").WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	rec := doRequest(t, h.RentalInfo, "/rental_info?customer_id=9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "customer not found", body["error"])
}

func TestRentalInfoReturnsFlatRows(t *testing.T) {
	h, mock := newCustomerHandler(t)

	cols := []string{"customer_id", "first_name", "last_name",
		"film_id", "title", "rental_date", "return_date"}
	mock.ExpectQuery("FROM customer c").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "MARIA", "MILLER", 1, "ACADEMY DINOSAUR", "2005-05-24 22:53:30", "2005-05-26 22:04:30").
			AddRow(7, "MARIA", "MILLER", 2, "ACE GOLDFINGER", "2005-06-15 21:08:46", nil))

	rec := doRequest(t, h.RentalInfo, "/rental_info?customer_id=7")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	// Customer fields repeat per row; the open rental serializes null.
	assert.Equal(t, "MARIA", body[0]["first_name"])
	assert.Equal(t, "MARIA", body[1]["first_name"])
	assert.Nil(t, body[1]["return_date"])
}

func TestSearchCustomersGroupsHistory(t *testing.T) {
	h, mock := newCustomerHandler(t)

	cols := []string{"customer_id", "first_name", "last_name", "email",
		"film_id", "title", "rental_date", "return_date"}
	mock.ExpectQuery("FROM customer c").
		WithArgs(int64(0), "%mary%", "%mary%").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "MARY", "SMITH", "mary@example.com", 1, "A", "2005-05-25 11:30:37", "2005-05-28 10:01:14").
			AddRow(1, "MARY", "SMITH", "mary@example.com", 2, "B", "2005-06-15 21:08:46", nil))

	rec := doRequest(t, h.SearchCustomers, "/search/customers?keyword=MARY")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	history, ok := body[0]["rental_history"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 2)
}

func TestSearchCustomersRequiresKeyword(t *testing.T) {
	h, _ := newCustomerHandler(t)

	rec := doRequest(t, h.SearchCustomers, "/search/customers")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCustomerValidatesBody(t *testing.T) {
	h, _ := newCustomerHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(`{"store_id":1,"address_id":5,"first_name":"","last_name":"DOE"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateCustomer(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCustomerWithRentalsConflicts(t *testing.T) {
	h, mock := newCustomerHandler(t)

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/customers/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.DeleteCustomer(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
