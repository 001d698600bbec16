package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store/mocks"
	"github.com/redhat-data-and-ai/coursenaut/pkg/types"
)

func authConfig(mode string) *config.AppConfig {
	return &config.AppConfig{
		APIServer: config.APIServerConfig{
			Auth: config.AuthConfig{
				Enabled:    true,
				Mode:       mode,
				APIKeys:    []string{"secret-key", "other-key"},
				BasicUsers: []config.BasicUser{{Username: "ops", Password: "pw"}},
			},
			CORS: config.CORSConfig{
				AllowedOrigins: []string{"https://lms.example.com"},
				AllowedMethods: []string{"GET", "POST"},
				AllowedHeaders: []string{"Content-Type"},
			},
		},
	}
}

// serve runs mw in front of a handler that echoes the identity set on the context.
func serve(mw gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.Any("/x", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"client": c.GetString(ContextClientID),
			"user":   c.GetInt(ContextUserID),
			"rid":    logger.RequestID(c.Request.Context()),
		})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		key        string
		wantStatus int
		wantBody   string
	}{
		{name: "disabled", enabled: false, wantStatus: http.StatusOK},
		{name: "missing key", enabled: true, wantStatus: http.StatusUnauthorized, wantBody: HeaderAPIKey},
		{name: "wrong key", enabled: true, key: "nope", wantStatus: http.StatusUnauthorized, wantBody: "invalid API key"},
		{name: "second key", enabled: true, key: "other-key", wantStatus: http.StatusOK, wantBody: `"client":"apikey-1"`},
		{name: "valid key", enabled: true, key: "secret-key", wantStatus: http.StatusOK, wantBody: `"client":"apikey-0"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := authConfig(AuthModeAPIKey)
			cfg.APIServer.Auth.Enabled = tt.enabled

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			w := serve(Auth(cfg, nil), req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestBasicAuth(t *testing.T) {
	cfg := authConfig(AuthModeBasic)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := serve(Auth(cfg, nil), req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, basicRealm, w.Header().Get("WWW-Authenticate"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.SetBasicAuth("ops", "wrong")
	assert.Equal(t, http.StatusUnauthorized, serve(Auth(cfg, nil), req).Code)

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.SetBasicAuth("ops", "pw")
	w = serve(Auth(cfg, nil), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client":"ops"`)
}

func TestUserBasicAuth(t *testing.T) {
	hash, err := types.HashPassword("s3cret")
	require.NoError(t, err)
	student, err := types.NewStudent(types.AccountParams{
		UserID: 5, Username: "sam", Email: "sam@example.com", Password: hash, PasswordHashed: true,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		email      string
		password   string
		setupMock  func(users *mocks.MockUserStoreInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no credentials",
			setupMock:  func(users *mocks.MockUserStoreInterface) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "s3cret",
			setupMock: func(users *mocks.MockUserStoreInterface) {
				users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, false)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			email:    "sam@example.com",
			password: "guess",
			setupMock: func(users *mocks.MockUserStoreInterface) {
				users.EXPECT().GetByEmail(gomock.Any(), "sam@example.com").Return(student, true)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "valid credentials",
			email:    "SAM@example.com",
			password: "s3cret",
			setupMock: func(users *mocks.MockUserStoreInterface) {
				users.EXPECT().GetByEmail(gomock.Any(), "SAM@example.com").Return(student, true)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"user":5`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewMockUserStoreInterface(gomock.NewController(t))
			tt.setupMock(users)

			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.email != "" {
				req.SetBasicAuth(tt.email, tt.password)
			}
			w := serve(Auth(authConfig(AuthModeUsers), users), req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	cfg := authConfig(AuthModeAPIKey)

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://lms.example.com")
	w := serve(CORS(&cfg.APIServer), req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://lms.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(CORS(&cfg.APIServer), req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := serve(RequestID(), req)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
	assert.Contains(t, w.Body.String(), `"rid":"req-1"`)

	w = serve(RequestID(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}
