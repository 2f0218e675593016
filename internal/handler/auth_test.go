package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/parking-admin/internal/config"
	"github.com/iliyamo/parking-admin/internal/handler"
	"github.com/iliyamo/parking-admin/internal/model"
	"github.com/iliyamo/parking-admin/internal/router"
	"github.com/iliyamo/parking-admin/internal/session"
	"github.com/iliyamo/parking-admin/internal/store"
	"github.com/iliyamo/parking-admin/internal/utils"
)

const testSecret = "test-secret"

// testEnv bundles the wired application for handler tests: a fully
// routed echo instance plus the stores behind it so assertions can
// inspect state directly.
type testEnv struct {
	e        *echo.Echo
	users    *store.UserStore
	spots    *store.SpotStore
	vehicles *store.VehicleStore
	payments *store.PaymentStore
	sess     *session.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Config{Env: "test", Port: "0", JWTSecret: testSecret, AccessTTLMin: 15}
	env := &testEnv{
		e:        echo.New(),
		users:    store.NewUserStore(store.SeedUsers()),
		spots:    store.NewSpotStore(store.SeedSpots()),
		vehicles: store.NewVehicleStore(store.SeedVehicles()),
		payments: store.NewPaymentStore(store.SeedPayments()),
		sess:     session.New(nil),
	}
	authH := handler.NewAuthHandler(cfg, env.users, env.sess)
	router.RegisterRoutes(env.e)
	router.RegisterAuth(env.e, authH)
	router.RegisterAPI(env.e,
		authH,
		handler.NewSpotHandler(env.spots),
		handler.NewVehicleHandler(env.vehicles),
		handler.NewPaymentHandler(env.payments),
		handler.NewUserHandler(env.users),
		handler.NewDashboardHandler(env.spots, env.vehicles, env.payments),
		testSecret,
	)
	return env
}

// tokenFor issues an access token for one of the seeded demo users.
func tokenFor(t *testing.T, role model.Role) string {
	t.Helper()
	var id uint64
	switch role {
	case model.RoleAdmin:
		id = 1
	case model.RoleEmployee:
		id = 2
	default:
		id = 3
	}
	tok, err := utils.NewAccessToken(testSecret, id, string(role), 15)
	require.NoError(t, err)
	return tok.Token
}

func doJSON(env *testEnv, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodPost, "/v1/auth/login", "",
		`{"email":"admin@parking.com","password":"admin123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		User   model.User `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Empty(t, resp.User.Password, "password must be redacted")
	assert.NotEmpty(t, resp.Access.Token)

	u, ok := env.sess.Current()
	require.True(t, ok)
	assert.Equal(t, "admin@parking.com", u.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(env, http.MethodPost, "/v1/auth/login", "",
		`{"email":"user@parking.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, ok := env.sess.Current()
	assert.False(t, ok, "failed login must not establish a session")
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)
	rec := doJSON(env, http.MethodPost, "/v1/auth/login", "", `{"email":"admin@parking.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	doJSON(env, http.MethodPost, "/v1/auth/login", "",
		`{"email":"admin@parking.com","password":"admin123"}`)

	rec := doJSON(env, http.MethodPost, "/v1/auth/logout", "", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := env.sess.Current()
	assert.False(t, ok)
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t)
	rec := doJSON(env, http.MethodGet, "/v1/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsSessionUser(t *testing.T) {
	env := newTestEnv(t)
	doJSON(env, http.MethodPost, "/v1/auth/login", "",
		`{"email":"employee@parking.com","password":"emp123"}`)

	rec := doJSON(env, http.MethodGet, "/v1/me", tokenFor(t, model.RoleEmployee), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var u model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "employee@parking.com", u.Email)
	assert.Empty(t, u.Password)
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	env := newTestEnv(t)
	doJSON(env, http.MethodPost, "/v1/auth/login", "",
		`{"email":"user@parking.com","password":"user123"}`)

	rec := doJSON(env, http.MethodPut, "/v1/profile", tokenFor(t, model.RoleUser),
		`{"phone":"06 00 00 00 00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	u, ok := env.sess.Current()
	require.True(t, ok)
	assert.Equal(t, "06 00 00 00 00", u.Phone)
	// Untouched fields survive the merge.
	assert.Equal(t, "Regular User", u.Name)
	assert.Equal(t, "user@parking.com", u.Email)
}
