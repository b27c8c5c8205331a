package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizbot/internal/infrastructure"
	"bizbot/internal/repository"
	"bizbot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatEnvelope struct {
	Message string          `json:"message"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, auth *usecases.AuthUsecase, limiter *infrastructure.MessageRateLimiter, cfg RouterConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := repository.LoadDefaultCatalog()
	require.NoError(t, err)
	service := usecases.NewMessageService(usecases.NewContentGenerator(catalog, nil), nil)

	r := gin.New()
	SetupRoutes(r, service, NewMiddleware(auth, limiter, ""), cfg)
	return r
}

func postChat(r *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) chatEnvelope {
	t.Helper()
	var env chatEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandleChatSteps(t *testing.T) {
	r := newTestRouter(t, nil, nil, RouterConfig{})

	w := postChat(r, `{"message":"Give me the STEPS","business_idea":"coffee shop"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "steps", env.Type)
	assert.Equal(t, "Here's a comprehensive step-by-step plan for your coffee shop business:", env.Message)

	var steps []string
	require.NoError(t, json.Unmarshal(env.Data, &steps))
	assert.Len(t, steps, 10)
	assert.Contains(t, steps[1], "(especially important for food businesses)")
}

func TestHandleChatResponses(t *testing.T) {
	r := newTestRouter(t, nil, nil, RouterConfig{})

	tests := []struct {
		name        string
		body        string
		wantType    string
		wantMessage string
		wantData    string
	}{
		{
			name:        "welcome",
			body:        `{"message":"hello"}`,
			wantType:    "text",
			wantMessage: "Welcome to your Small Business Assistant!",
			wantData:    "null",
		},
		{
			name:        "missing message field",
			body:        `{}`,
			wantType:    "text",
			wantMessage: "Welcome to your Small Business Assistant!",
			wantData:    "null",
		},
		{
			name:        "clarifying question",
			body:        `{"message":"suggest names"}`,
			wantType:    "text",
			wantMessage: "I'd be happy to suggest some creative names! What's your business idea?",
			wantData:    "null",
		},
		{
			name:        "whitespace idea is absent",
			body:        `{"message":"ideas","business_idea":"   "}`,
			wantType:    "text",
			wantMessage: "I'd be happy to suggest innovative ideas! What's your business concept?",
			wantData:    "null",
		},
		{
			name:        "logo",
			body:        `{"message":"make a logo","business_idea":"coffee shop","business_name":"Bean There"}`,
			wantType:    "logo_prompt",
			wantMessage: "Here's a detailed prompt for creating your logo.",
			wantData:    `"Create a professional logo for 'Bean There'`,
		},
		{
			name:        "social default name",
			body:        `{"message":"instagram post","business_idea":"food truck"}`,
			wantType:    "social_media",
			wantMessage: "Here's your Instagram Post with Hashtags:",
			wantData:    `"platform":"instagram"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postChat(r, tt.body, nil)
			require.Equal(t, http.StatusOK, w.Code)

			env := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantType, env.Type)
			assert.True(t, strings.HasPrefix(env.Message, tt.wantMessage), env.Message)
			assert.Contains(t, string(env.Data), tt.wantData)
		})
	}
}

func TestHandleChatInvalidJSON(t *testing.T) {
	r := newTestRouter(t, nil, nil, RouterConfig{})

	w := postChat(r, `{"message":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, w.Body.String())
}

func TestHandleChatBodyTooLarge(t *testing.T) {
	r := newTestRouter(t, nil, nil, RouterConfig{MaxRequestBytes: 64})

	body := `{"message":"` + strings.Repeat("a", 200) + `"}`
	w := postChat(r, body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2026-03-01T09:30:00Z"}`, w.Body.String())
}

func TestHealthIsPublic(t *testing.T) {
	r := newTestRouter(t, usecases.NewAuthUsecase("secret"), nil, RouterConfig{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}
