package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/parking-admin/internal/model"
)

func TestPaymentCreateComputesAmount(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodPost, "/v1/payments", tokenFor(t, model.RoleUser),
		`{"vehicle_id":2,"method":"cash","duration":1.5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var p model.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, uint32(10), p.Amount)
	assert.Equal(t, model.PaymentPaid, p.Status)
	assert.Equal(t, 1.5, p.Duration)
	assert.Equal(t, uint64(2), p.VehicleID)
}

func TestPaymentCreateIgnoresCallerAmount(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodPost, "/v1/payments", tokenFor(t, model.RoleAdmin),
		`{"vehicle_id":1,"method":"card","duration":0.5,"amount":999}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var p model.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, uint32(3), p.Amount)
}

func TestPaymentCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "missing vehicle", body: `{"method":"cash","duration":1}`},
		{name: "zero duration", body: `{"vehicle_id":1,"method":"cash","duration":0}`},
		{name: "negative duration", body: `{"vehicle_id":1,"method":"cash","duration":-2}`},
		{name: "unknown method", body: `{"vehicle_id":1,"method":"cheque","duration":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(env, http.MethodPost, "/v1/payments", tokenFor(t, model.RoleUser), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Len(t, env.payments.List(), 2, "rejected requests must not append records")
}

func TestPaymentStatsStaffOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/payments/stats", tokenFor(t, model.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(env, http.MethodGet, "/v1/payments/stats", tokenFor(t, model.RoleEmployee), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalRevenue uint64 `json:"total_revenue"`
		Count        int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, uint64(23), stats.TotalRevenue)
	assert.Equal(t, 2, stats.Count)
}

func TestPaymentHistoryByVehicle(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/payments/history?vehicle_id=1", tokenFor(t, model.RoleAdmin), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Payments []model.Payment `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, uint64(1), resp.Payments[0].VehicleID)
}

func TestPaymentQuote(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/payments/quote?duration=3", tokenFor(t, model.RoleUser), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Amount uint32 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(15), resp.Amount)
}
