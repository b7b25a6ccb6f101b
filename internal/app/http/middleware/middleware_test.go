package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coachsport-app/database"
	"coachsport-app/internal/domain/access"
	"coachsport-app/internal/domain/users"
	"coachsport-app/internal/session"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*session.Store, *gorm.DB) {
	db, err := database.OpenMemory(t.Name())
	require.NoError(t, err)
	_, err = database.Seed(db, testNow)
	require.NoError(t, err)

	store := session.NewStore(db, "test-secret", time.Hour,
		session.WithClock(func() time.Time { return testNow }),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	store.MarkReady()
	return store, db
}

func login(t *testing.T, store *session.Store, email string) string {
	token, _, err := store.Login(context.Background(), email)
	require.NoError(t, err)
	return token
}

func guardedEngine(store *session.Store) *gin.Engine {
	r := gin.New()
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"destination": c.Value(DestinationKey)})
	}
	screens := r.Group("/")
	screens.Use(AuthMiddleware(store), LoadSession(store), RouteGuard(store.Now))
	for _, p := range []string{"/home", "/exercises", "/exercise/:id", "/progress", "/profile", "/routines", "/nowhere"} {
		screens.GET(p, ok)
	}
	staff := r.Group("/admin")
	staff.Use(AuthMiddleware(store), LoadSession(store), RequireRole(access.RoleAdmin), RouteGuard(store.Now))
	staff.GET("", ok)
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	store, _ := setup(t)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(UserIDKey),
			"role":    c.GetString(RoleKey),
			"email":   c.GetString(EmailKey),
		})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + login(t, store, "trainer@coachsport.dev"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := do(r, "/whoami", login(t, store, "trainer@coachsport.dev"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "trainer", body["role"])
	assert.Equal(t, "trainer@coachsport.dev", body["email"])
}

func TestAuthMiddleware_Revoked(t *testing.T) {
	store, _ := setup(t)
	token := login(t, store, "admin@coachsport.dev")
	claims, err := store.Authenticate(token)
	require.NoError(t, err)
	store.Logout(claims)

	w := do(guardedEngine(store), "/home", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "closed")
}

func TestRouteGuard(t *testing.T) {
	store, _ := setup(t)
	r := guardedEngine(store)

	pro := login(t, store, "cliente1@coachsport.dev")
	full := login(t, store, "cliente2@coachsport.dev")
	admin := login(t, store, "admin@coachsport.dev")

	tests := []struct {
		name     string
		token    string
		path     string
		status   int
		location string
	}{
		{"pro client home", pro, "/home", http.StatusOK, ""},
		{"pro client exercises", pro, "/exercises", http.StatusTemporaryRedirect, "/home"},
		{"pro client exercise detail", pro, "/exercise/3", http.StatusTemporaryRedirect, "/home"},
		{"pro client profile", pro, "/profile", http.StatusOK, ""},
		{"full client exercises", full, "/exercises", http.StatusOK, ""},
		{"full client progress", full, "/progress", http.StatusOK, ""},
		{"admin progress", admin, "/progress", http.StatusOK, ""},
		{"unknown path", full, "/nowhere", http.StatusTemporaryRedirect, "/home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestRouteGuard_NoSubscriptionGoesToProfile(t *testing.T) {
	store, db := setup(t)
	u := users.User{Email: "new@coachsport.dev", Role: "client"}
	require.NoError(t, db.Create(&u).Error)
	token := login(t, store, u.Email)

	w := do(guardedEngine(store), "/progress", token)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "redirect", body["verdict"])
	assert.Equal(t, "profile", body["target"])

	w = do(guardedEngine(store), "/profile", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_SubscriptionChangeAppliesImmediately(t *testing.T) {
	store, db := setup(t)
	r := guardedEngine(store)
	token := login(t, store, "cliente2@coachsport.dev")

	assert.Equal(t, http.StatusOK, do(r, "/exercises", token).Code)

	require.NoError(t, db.Model(&users.Subscription{}).
		Where("user_id = (?)", db.Model(&users.User{}).Select("id").Where("email = ?", "cliente2@coachsport.dev")).
		Update("is_active", false).Error)

	w := do(r, "/exercises", token)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))
}

func TestRequireRole(t *testing.T) {
	store, _ := setup(t)
	r := guardedEngine(store)

	assert.Equal(t, http.StatusOK, do(r, "/admin", login(t, store, "admin@coachsport.dev")).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", login(t, store, "trainer@coachsport.dev")).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", login(t, store, "cliente2@coachsport.dev")).Code)
}

func TestLoadSession_Loading(t *testing.T) {
	db, err := database.OpenMemory(t.Name())
	require.NoError(t, err)
	_, err = database.Seed(db, testNow)
	require.NoError(t, err)
	store := session.NewStore(db, "test-secret", time.Hour,
		session.WithClock(func() time.Time { return testNow }))

	token := login(t, store, "admin@coachsport.dev")
	w := do(guardedEngine(store), "/home", token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestSanitizeAndCleanInputMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"<b>a@b.dev</b>","nested":{"note":"<script>x</script>ok"},"list":["<i>y</i>"],"n":12}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@b.dev","nested":{"note":"ok"},"list":["y"],"n":12}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, post(`{"email":`).Code)
	assert.Equal(t, http.StatusOK, post(``).Code)
}
