package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trendkart/pkg/errors"
)

func newResponseContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newResponseContext()

	require.NoError(t, Error(c, apperrors.NotFound("Product", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newResponseContext()

	require.NoError(t, Error(c, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestErrorTranslatesEmptyCartValidation(t *testing.T) {
	type orderInput struct {
		Items      []string `validate:"required,min=1"`
		TotalPrice float64  `validate:"gt=0"`
	}
	err := validator.New().Struct(orderInput{Items: []string{}, TotalPrice: 100})
	require.Error(t, err)

	c, rec := newResponseContext()
	require.NoError(t, Error(c, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "order must contain at least 1 item", resp.Error.Message)
}

func TestErrorTranslatesRequiredField(t *testing.T) {
	type searchInput struct {
		Term string `validate:"required"`
	}
	err := validator.New().Struct(searchInput{})
	require.Error(t, err)

	c, rec := newResponseContext()
	require.NoError(t, Error(c, err))

	resp := decodeResponse(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "term is required", resp.Error.Message)
}
