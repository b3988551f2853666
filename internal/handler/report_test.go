package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmrental/reports-api/internal/repository"
)

func newReportHandler(t *testing.T) (*ReportHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &ReportHandler{Reports: repository.NewReportRepo(db)}, mock
}

func doRequest(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestTopMoviesRespondsWithRankedFilms(t *testing.T) {
	h, mock := newReportHandler(t)

	mock.ExpectQuery("FROM film f").WillReturnRows(
		sqlmock.NewRows([]string{
			"film_id", "title", "description", "release_year", "language_id",
			"rental_duration", "rental_rate", "length", "rating", "special_features",
			"rental_count",
		}).
			AddRow(1, "F1", nil, 2006, 1, 7, 4.99, 120, "PG", nil, 10).
			AddRow(2, "F2", nil, 2006, 1, 7, 2.99, 110, "G", nil, 7))

	rec := doRequest(t, h.TopMovies, "/top_movies")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "F1", body[0]["title"])
	// rental_rate and rental_count serialize as JSON numbers.
	assert.Equal(t, 4.99, body[0]["rental_rate"])
	assert.Equal(t, float64(10), body[0]["rental_count"])
}

func TestTopMoviesStoreFailureIsServerError(t *testing.T) {
	h, mock := newReportHandler(t)
	mock.ExpectQuery("FROM film f").WillReturnError(errors.New("connection refused"))

	rec := doRequest(t, h.TopMovies, "/top_movies")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "database error", body["error"])
}

func TestSearchFilmsRequiresKeyword(t *testing.T) {
	h, _ := newReportHandler(t)

	for _, target := range []string{"/search", "/search?keyword=", "/search?keyword=%20%20"} {
		rec := doRequest(t, h.SearchFilms, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "keyword is required", body["error"])
	}
}

func TestAvailableInventoryOK(t *testing.T) {
	h, mock := newReportHandler(t)

	mock.ExpectQuery("FROM inventory i").WillReturnRows(
		sqlmock.NewRows([]string{"film_id", "title", "inventory_id", "rental_rate"}).
			AddRow(3, "NEVER RENTED", 31, 2.99))

	rec := doRequest(t, h.AvailableInventory, "/available-rent")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(31), body[0]["inventory_id"])
}
