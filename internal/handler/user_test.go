package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/parking-admin/internal/model"
)

func TestUserListStaffOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/users", tokenFor(t, model.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(env, http.MethodGet, "/v1/users", tokenFor(t, model.RoleEmployee), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Users  []model.User   `json:"users"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 3)
	for _, u := range resp.Users {
		assert.Empty(t, u.Password)
	}
	assert.Equal(t, 1, resp.Counts["admin"])
}

func TestUserCreateAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email":"new@parking.com","password":"pw","name":"New","role":"user","phone":"06"}`

	rec := doJSON(env, http.MethodPost, "/v1/users", tokenFor(t, model.RoleEmployee), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, env.users.List(), 3)

	rec = doJSON(env, http.MethodPost, "/v1/users", tokenFor(t, model.RoleAdmin), body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint64(4), created.ID)
	assert.Equal(t, model.VehicleInfo{Plate: "", Type: "Voiture"}, created.Vehicle)
	assert.Empty(t, created.Password)
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodPost, "/v1/users", tokenFor(t, model.RoleAdmin),
		`{"email":"x@y.z","password":"pw","name":"X","role":"owner"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.users.List(), 3)
}

func TestMenuPerRole(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/menu", tokenFor(t, model.RoleUser), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Menu         []struct{ Path string } `json:"menu"`
		DefaultRoute string                  `json:"default_route"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Menu, 4)
	assert.Equal(t, "/dashboard", resp.DefaultRoute)
}

func TestMenuResolveFallsBack(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/menu/resolve?path=/users", tokenFor(t, model.RoleUser), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/dashboard", resp.Path)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodGet, "/v1/dashboard", tokenFor(t, model.RoleUser), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Spots struct {
			Total     int `json:"total"`
			Available int `json:"available"`
			Occupied  int `json:"occupied"`
		} `json:"spots"`
		Vehicles     int    `json:"vehicles"`
		TotalRevenue uint64 `json:"total_revenue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Spots.Total)
	assert.Equal(t, 5, resp.Spots.Available)
	assert.Equal(t, 3, resp.Spots.Occupied)
	assert.Equal(t, 2, resp.Vehicles)
	assert.Equal(t, uint64(23), resp.TotalRevenue)
}
