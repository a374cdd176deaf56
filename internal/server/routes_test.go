package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/config"
	"printshop-backend/internal/models"
	"printshop-backend/internal/server"
	"printshop-backend/internal/services"
	"printshop-backend/internal/services/servicetest"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

type testApp struct {
	router *gin.Engine
	store  *servicetest.MemoryStore
	bucket *servicetest.Bucket
	auth   *servicetest.Auth
}

func newTestApp() *testApp {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SupabaseJWTSecret: testSecret,
		MaxUploadSize:     1 << 20,
		Environment:       "test",
	}
	store := servicetest.NewMemoryStore()
	bucket := servicetest.NewBucket()
	auth := servicetest.NewAuth()
	resolver := services.NewSessionResolver(store, services.ResolverOptions{
		Attempts: 2,
		Delay:    time.Millisecond,
		MaxDelay: time.Millisecond,
	})

	router := server.NewRouter(cfg, server.Services{
		Identity: services.NewIdentityService(auth, store),
		Resolver: resolver,
		Orders:   services.NewOrderService(store, services.NewDocumentUploader(bucket, cfg.MaxUploadSize), &servicetest.Events{}),
	})

	return &testApp{router: router, store: store, bucket: bucket, auth: auth}
}

func tokenFor(t *testing.T, p *models.Profile) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": p.AuthID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func (a *testApp) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func orderForm(t *testing.T, fields map[string]string, fileField string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="syllabus.pdf"`, fileField))
		h.Set("Content-Type", "application/pdf")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 print me"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestRoutes_Health(t *testing.T) {
	app := newTestApp()
	w := app.do("GET", "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_ProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/me", "/api/v1/orders", "/api/v1/admin/orders/pending"} {
		w := app.do("GET", path, "", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_Navigation(t *testing.T) {
	app := newTestApp()
	client := app.store.AddProfile("Ana", models.RoleClient)

	w := app.do("GET", "/api/v1/navigation?location=/(tabs)/my-orders", "", nil, "")
	nav := decode[models.NavigationResponse](t, w)
	assert.Equal(t, "/(auth)/signin", nav.Redirect)

	w = app.do("GET", "/api/v1/navigation?location=/(auth)/signin", tokenFor(t, client), nil, "")
	nav = decode[models.NavigationResponse](t, w)
	assert.True(t, nav.Authenticated)
	assert.Equal(t, "/", nav.Redirect)
}

func TestRoutes_SignUpSignInAndMe(t *testing.T) {
	app := newTestApp()

	body := `{"nombre":"Ana","telefono":"600123123","email":"ana@example.com","password":"secret123"}`
	w := app.do("POST", "/api/v1/auth/signup", "", bytes.NewBufferString(body), "application/json")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	signup := decode[models.SignUpResponse](t, w)
	require.NotNil(t, signup.Profile)
	assert.Equal(t, "Cliente", signup.Profile.Role)

	w = app.do("POST", "/api/v1/auth/signin", "", bytes.NewBufferString(`{"email":"ana@example.com","password":"nope"}`), "application/json")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	authID := uuid.MustParse(signup.Session.UserID)
	token := tokenFor(t, &models.Profile{AuthID: authID})
	w = app.do("GET", "/api/v1/me", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.MeResponse](t, w)
	assert.Equal(t, "Ana", me.Profile.Name)
	require.Len(t, me.Screens, 2)
	assert.Equal(t, "create-order", me.Screens[0].Name)
}

func TestRoutes_MeWithoutProfile(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, &models.Profile{AuthID: uuid.New()})

	w := app.do("GET", "/api/v1/me", token, nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	me := decode[models.MeResponse](t, w)
	assert.Nil(t, me.Profile)
	assert.Len(t, me.Screens, 2)
}

func TestRoutes_RefreshExpired(t *testing.T) {
	app := newTestApp()

	w := app.do("POST", "/api/v1/auth/refresh", "", bytes.NewBufferString(`{"refresh_token":"stale"}`), "application/json")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session_expired", decode[models.ErrorResponse](t, w).Error)
}

func TestRoutes_OrderLifecycle(t *testing.T) {
	app := newTestApp()
	client := app.store.AddProfile("Ana", models.RoleClient)
	admin := app.store.AddProfile("Bea", models.RoleAdmin)
	clientToken, adminToken := tokenFor(t, client), tokenFor(t, admin)

	body, contentType := orderForm(t, map[string]string{
		"descripcion": "Print syllabus",
		"n_copias":    "2",
		"a_color":     "false",
	}, "file")
	w := app.do("POST", "/api/v1/orders", clientToken, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.OrderResponse](t, w)
	assert.Equal(t, "Esperando", created.Status)
	assert.Equal(t, 2, created.Copies)
	assert.False(t, created.Color)
	require.NotNil(t, created.DocumentURL)
	assert.NotEmpty(t, *created.DocumentURL)
	assert.True(t, created.Deletable)
	assert.Equal(t, 1, app.bucket.Len())

	// clients cannot reach the admin screens
	w = app.do("GET", "/api/v1/admin/orders/pending", clientToken, nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do("GET", "/api/v1/admin/orders/pending", adminToken, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	pending := decode[models.OrderListResponse](t, w)
	require.Len(t, pending.Orders, 1)
	assert.Equal(t, "Ana", pending.Orders[0].ClientName)

	assignPath := fmt.Sprintf("/api/v1/admin/orders/%d/assign", created.ID)
	w = app.do("POST", assignPath, adminToken, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assigned := decode[models.OrderResponse](t, w)
	assert.Equal(t, "Procesando", assigned.Status)
	assert.Equal(t, admin.ID, *assigned.AdminID)

	w = app.do("POST", assignPath, adminToken, nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	conflict := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "already_claimed", conflict.Error)
	assert.True(t, conflict.Reload)

	w = app.do("DELETE", fmt.Sprintf("/api/v1/orders/%d", created.ID), clientToken, nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "not_deletable", decode[models.ErrorResponse](t, w).Error)

	w = app.do("GET", fmt.Sprintf("/api/v1/orders/%d/status", created.ID), clientToken, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Procesando", decode[models.StatusResponse](t, w).Status)

	w = app.do("POST", fmt.Sprintf("/api/v1/admin/orders/%d/complete", created.ID), adminToken, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	finished := decode[models.OrderResponse](t, w)
	assert.Equal(t, "Terminado", finished.Status)
	assert.Equal(t, admin.ID, *finished.AdminID)

	w = app.do("GET", "/api/v1/admin/orders/history", adminToken, nil, "")
	history := decode[models.OrderListResponse](t, w)
	require.Len(t, history.Orders, 1)
	assert.Equal(t, "Bea", history.Orders[0].AdminName)

	w = app.do("GET", fmt.Sprintf("/api/v1/orders/%d/document", created.ID), clientToken, nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, *created.DocumentURL, w.Header().Get("Location"))
}

func TestRoutes_CreateOrderDefaultsAndValidation(t *testing.T) {
	app := newTestApp()
	client := app.store.AddProfile("Ana", models.RoleClient)
	token := tokenFor(t, client)

	body, contentType := orderForm(t, map[string]string{"descripcion": "Apuntes"}, "file")
	w := app.do("POST", "/api/v1/orders", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, decode[models.OrderResponse](t, w).Copies)

	body, contentType = orderForm(t, map[string]string{"descripcion": "Apuntes", "n_copias": "-3"}, "file")
	w = app.do("POST", "/api/v1/orders", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = orderForm(t, map[string]string{"descripcion": "Apuntes"}, "")
	w = app.do("POST", "/api/v1/orders", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = orderForm(t, map[string]string{"descripcion": ""}, "file")
	w = app.do("POST", "/api/v1/orders", token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 1, app.bucket.Len())
}

func TestRoutes_DeleteWaitingOrder(t *testing.T) {
	app := newTestApp()
	client := app.store.AddProfile("Ana", models.RoleClient)
	other := app.store.AddProfile("Dani", models.RoleClient)
	token := tokenFor(t, client)

	body, contentType := orderForm(t, map[string]string{"descripcion": "Apuntes"}, "file")
	w := app.do("POST", "/api/v1/orders", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.OrderResponse](t, w)
	path := fmt.Sprintf("/api/v1/orders/%d", created.ID)

	w = app.do("DELETE", path, tokenFor(t, other), nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do("DELETE", path, token, nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, app.bucket.Len())

	w = app.do("GET", "/api/v1/orders", token, nil, "")
	assert.Empty(t, decode[models.OrderListResponse](t, w).Orders)

	w = app.do("DELETE", "/api/v1/orders/abc", token, nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_ClientWithoutProfileCannotOrder(t *testing.T) {
	app := newTestApp()
	token := tokenFor(t, &models.Profile{AuthID: uuid.New()})

	w := app.do("GET", "/api/v1/orders", token, nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "profile_not_found", decode[models.ErrorResponse](t, w).Error)
}
