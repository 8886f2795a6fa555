package validate_promo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validatePromo "github.com/m04kA/SMC-ExperienceService/internal/usecase/validate_promo"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
)

type fakeUseCase struct {
	resp *validatePromo.Response
	err  error
	got  *validatePromo.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *validatePromo.Request) (*validatePromo.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc ValidatePromoUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/promos/validate", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Valid(t *testing.T) {
	uc := &fakeUseCase{resp: &validatePromo.Response{
		Valid:          true,
		Message:        "Promo code applied successfully",
		DiscountType:   ptr.Ptr("percentage"),
		DiscountValue:  ptr.Ptr(int64(10)),
		DiscountAmount: ptr.Ptr(int64(300)),
	}}

	rec := doRequest(t, uc, map[string]interface{}{"code": "SUMMER10", "amount": 3000})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ValidatePromoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.DiscountAmount)
	assert.Equal(t, int64(300), *resp.DiscountAmount)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3000), uc.got.AmountCents)
}

func TestHandle_BusinessRejectionIs200(t *testing.T) {
	// Истекший или неизвестный код - штатный результат проверки, не ошибка HTTP
	uc := &fakeUseCase{resp: &validatePromo.Response{
		Valid:   false,
		Message: "Promo code has expired",
	}}

	rec := doRequest(t, uc, map[string]interface{}{"code": "OLD", "amount": 3000})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ValidatePromoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "Promo code has expired", resp.Message)
	assert.Nil(t, resp.DiscountAmount)
}

func TestHandle_CodeRequired(t *testing.T) {
	uc := &fakeUseCase{err: validatePromo.ErrCodeRequired}

	rec := doRequest(t, uc, map[string]interface{}{"code": "", "amount": 3000})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Promo code is required", body.Error)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db down")}

	rec := doRequest(t, uc, map[string]interface{}{"code": "SUMMER10", "amount": 3000})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
