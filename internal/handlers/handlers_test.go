package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/middleware"
	"karttem-admin/internal/models"
	"karttem-admin/internal/repositories"
	"karttem-admin/internal/services"
	"karttem-admin/internal/transformers"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/cache"
	"karttem-admin/pkg/imageproc"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "handler-test-secret-0123456789"
	testCookie = "karttem_session"
)

// fakeBackend answers like the listings backend and records what it received.
type fakeBackend struct {
	t        *testing.T
	mu       sync.Mutex
	requests []string
	lastForm *multipart.Form
	reject   bool
	token    string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(2 * time.Hour).Unix(),
	}).SignedString([]byte("backend-key"))
	require.NoError(t, err)
	return &fakeBackend{t: t, token: signed}
}

func (b *fakeBackend) setReject(reject bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reject = reject
}

func (b *fakeBackend) envelope(w http.ResponseWriter, status int, ok bool, msg string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": ok, "msg": msg, "data": data})
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	reject := b.reject
	b.mu.Unlock()

	if r.URL.Path != "/user/login" && r.Header.Get("Authorization") != "Bearer "+b.backendToken() {
		b.envelope(w, http.StatusUnauthorized, false, "Token inválido", nil)
		return
	}
	if reject {
		b.envelope(w, http.StatusUnauthorized, false, "Token expirado", nil)
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/user/login":
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "secreto" {
			b.envelope(w, http.StatusUnauthorized, false, "Credenciales incorrectas", nil)
			return
		}
		b.envelope(w, http.StatusOK, true, "", map[string]interface{}{
			"jwt":  b.backendToken(),
			"user": map[string]interface{}{"id": 7, "email": creds["email"], "firstname": "Ana", "lastname": "Pérez"},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/properties":
		b.envelope(w, http.StatusOK, true, "", []map[string]interface{}{
			{"id": 1, "title": "Casa Quinta", "type": "casa", "status": "sale", "price_usd": 120000, "address": "Ruta 9"},
			{"id": 2, "title": "Departamento", "type": "departamento", "status": "rent", "price_ars": "350000", "address": "Centro"},
			{"id": 3, "title": "Lote", "type": "terreno", "status": "sale", "address": "Barrio Casas Blancas"},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/property/1":
		b.envelope(w, http.StatusOK, true, "", map[string]interface{}{
			"id": 1, "title": "Casa Quinta", "type": "casa", "status": "sale", "price_usd": 120000,
			"description": "Amplia casa", "has_electricity": 1, "amenities": `{"has_pool":true}`,
		})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/property/"):
		b.envelope(w, http.StatusNotFound, false, "Propiedad no encontrada", nil)
	case r.Method == http.MethodPost && r.URL.Path == "/property":
		assert.NoError(b.t, r.ParseMultipartForm(10<<20))
		b.mu.Lock()
		b.lastForm = r.MultipartForm
		b.mu.Unlock()
		b.envelope(w, http.StatusOK, true, "Propiedad creada", map[string]interface{}{"id": 9, "title": r.FormValue("title")})
	case r.Method == http.MethodGet && r.URL.Path == "/owners/search":
		b.envelope(w, http.StatusOK, true, "", []map[string]interface{}{{"_id": "64ab", "name": "Juan Gómez"}})
	default:
		b.envelope(w, http.StatusNotFound, false, "Ruta no encontrada", nil)
	}
}

func (b *fakeBackend) backendToken() string {
	return b.token
}

func (b *fakeBackend) saw(request string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if r == request {
			return true
		}
	}
	return false
}

type testApp struct {
	router  *gin.Engine
	backend *fakeBackend
	redis   *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := newFakeBackend(t)
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	client := inmobiliaria.NewClient(server.URL, inmobiliaria.ClientOptions{Timeout: 5 * time.Second})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := cache.NewStore(rdb)
	tiered := cache.NewTiered(store, cache.PropertyListIndexKey(), time.Second)
	t.Cleanup(tiered.Stop)

	activity := services.NewActivityRecorder(repositories.NewNoopActivityRepository())
	trans := transformers.NewPropertyTransformer()
	authSvc := services.NewAuthService(client.Auth, repositories.NewSessionRepository(store), validators.NewUserValidator(), activity, testSecret, time.Hour)
	propertySvc := services.NewPropertyService(
		client.Properties, client.Owners, repositories.NewListingCache(tiered, time.Minute), trans,
		validators.NewPropertyValidator(), imageproc.NewCompressor(imageproc.Options{}), activity, "Karttem Inmobiliaria",
	)
	ownerSvc := services.NewOwnerService(client.Owners, validators.NewOwnerValidator(), activity)

	cookie := middleware.CookieConfig{Name: testCookie}
	authHandler := NewAuthHandler(authSvc, cookie)
	propertyHandler := NewPropertyHandler(propertySvc)
	ownerHandler := NewOwnerHandler(ownerSvc)

	r := gin.New()
	r.Use(middleware.ErrorHandler(authSvc, cookie))
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authSvc, testCookie))
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/properties", propertyHandler.GetProperties)
	protected.POST("/properties", propertyHandler.CreateProperty)
	protected.GET("/properties/:id", propertyHandler.GetPropertyByID)
	protected.GET("/properties/:id/pdf", propertyHandler.ExportPropertySheet)
	protected.GET("/owners/search", ownerHandler.SearchOwners)

	return &testApp{router: r, backend: backend, redis: mr}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ana@example.com","password":"secreto"}`))
	req.Header.Set("Content-Type", "application/json")
	w := a.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) models.PageResponse {
	t.Helper()
	var page models.PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page), w.Body.String())
	return page
}

func TestLoginOpensSession(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	assert.True(t, cookie.HttpOnly)
	assert.Len(t, app.redis.Keys(), 1)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookie)
	page := decodePage(t, app.do(req))
	assert.True(t, page.OK)
	assert.Equal(t, "/", page.Redirect)
}

func TestLoginRejectedByBackend(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=ana%40example.com&password=otra"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := app.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	page := decodePage(t, w)
	assert.False(t, page.OK)
	assert.Equal(t, "Credenciales incorrectas", page.Notice.Message)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginValidatesForm(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"ana"}`))
	req.Header.Set("Content-Type", "application/json")
	w := app.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	page := decodePage(t, w)
	assert.Contains(t, page.Errors, "email")
	assert.Contains(t, page.Errors, "password")
	assert.False(t, app.backend.saw("POST /user/login"))
}

func TestListPropertiesFiltersAndPaginates(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodGet, "/properties?q=casa&limit=1", nil)
	req.AddCookie(cookie)
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page struct {
		OK   bool                  `json:"ok"`
		Data []map[string]any      `json:"data"`
		Meta models.PaginationMeta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Casa Quinta", page.Data[0]["title"])
	assert.Equal(t, "USD $120.000", page.Data[0]["price_display"])
	assert.Equal(t, "En Venta", page.Data[0]["status_label"])
	assert.Equal(t, int64(2), page.Meta.Total)
	require.NotNil(t, page.Meta.Next)
	assert.Contains(t, *page.Meta.Next, "offset=1")
}

func TestPropertyNotFound(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodGet, "/properties/99", nil)
	req.AddCookie(cookie)
	w := app.do(req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.MsgPropertyNotFound, decodePage(t, w).Notice.Message)
}

func TestBackendUnauthorizedSignsOut(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)
	app.backend.setReject(true)

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	req.AddCookie(cookie)
	w := app.do(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	page := decodePage(t, w)
	assert.Equal(t, apperrors.MsgSessionExpired, page.Notice.Message)
	assert.Equal(t, "/login", page.Redirect)
	assert.Empty(t, app.redis.Keys())

	// the revoked session no longer opens protected pages
	app.backend.setReject(false)
	req = httptest.NewRequest(http.MethodGet, "/properties", nil)
	req.AddCookie(cookie)
	assert.Equal(t, http.StatusUnauthorized, app.do(req).Code)
}

func TestProtectedPageRequiresSession(t *testing.T) {
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", decodePage(t, w).Redirect)
	assert.False(t, app.backend.saw("GET /properties"))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	w := app.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", decodePage(t, w).Redirect)
	assert.Empty(t, app.redis.Keys())
}

func multipartBody(t *testing.T, fields map[string][]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images[]"; filename="`+name+`"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreatePropertyForwardsMultipart(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	body, contentType := multipartBody(t, map[string][]string{
		"title":         {"Casa en Yerba Buena"},
		"description":   {"Tres dormitorios"},
		"type":          {"casa"},
		"price_usd":     {"95000"},
		"has_pool":      {"on"},
		"images_main[]": {"1"},
	}, map[string]string{"frente.jpg": "not really a jpeg"})

	req := httptest.NewRequest(http.MethodPost, "/properties", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	w := app.do(req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	page := decodePage(t, w)
	assert.Equal(t, "Propiedad creada exitosamente", page.Notice.Message)
	assert.Equal(t, "/properties", page.Redirect)

	app.backend.mu.Lock()
	form := app.backend.lastForm
	app.backend.mu.Unlock()
	require.NotNil(t, form)
	assert.Equal(t, []string{"sale"}, form.Value["status"])
	assert.Equal(t, []string{"1"}, form.Value["images_main[]"])
	require.Len(t, form.File["images[]"], 1)
	assert.Equal(t, "frente.jpg", form.File["images[]"][0].Filename)

	var amenities map[string]bool
	require.NoError(t, json.Unmarshal([]byte(form.Value["amenities"][0]), &amenities))
	assert.True(t, amenities["has_pool"])
}

func TestCreatePropertyValidationError(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	body, contentType := multipartBody(t, map[string][]string{"title": {"Sin precio"}, "type": {"casa"}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/properties", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	w := app.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	page := decodePage(t, w)
	assert.Equal(t, "Debe especificar al menos un precio", page.Errors["price"])
	assert.Contains(t, page.Errors, "description")
	assert.False(t, app.backend.saw("POST /property"))
}

func TestCreatePropertyMalformedMultipart(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodPost, "/properties", strings.NewReader("--cortado\r\nsin cierre"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=cortado")
	req.AddCookie(cookie)
	w := app.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	page := decodePage(t, w)
	require.NotNil(t, page.Notice)
	assert.Equal(t, apperrors.MsgInvalidParameters, page.Notice.Message)
	assert.False(t, app.backend.saw("POST /property"))
}

func TestExportPropertySheet(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodGet, "/properties/1/pdf", nil)
	req.AddCookie(cookie)
	w := app.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Casa Quinta.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestOwnerQuickSearch(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t)

	req := httptest.NewRequest(http.MethodGet, "/owners/search?q=%20ju%20", nil)
	req.AddCookie(cookie)
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"ok":true,"data":[]}`, strings.TrimSpace(w.Body.String()))
	assert.False(t, app.backend.saw("GET /owners/search"))

	req = httptest.NewRequest(http.MethodGet, "/owners/search?q=juan", nil)
	req.AddCookie(cookie)
	w = app.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"64ab"`)
}

func TestParseAmenities(t *testing.T) {
	got, err := parseAmenities(`{"has_ac":true}`, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"has_ac": true}, got)

	got, err = parseAmenities("", map[string][]string{
		"has_garden":      {"on"},
		"has_electricity": {"1"},
		"title":           {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"has_garden": true}, got)

	_, err = parseAmenities("{", nil)
	assert.Error(t, err)
}
