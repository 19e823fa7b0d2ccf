package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/reportrack/reportrack/app/core"
	"github.com/reportrack/reportrack/app/response"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(I18n(), response.NewResponse())
	e.Use(Cors)
	return e
}

func Test_CorsPreflight(t *testing.T) {
	e := newTestEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ai/search", nil)
	req.Header.Set("Origin", "https://reportrack.example")
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func Test_AuthorizationRejectsAnonymous(t *testing.T) {
	e := newTestEngine()

	var handlerCalled bool
	e.POST("/api/v1/bookmarks", Authorization(&core.Core{}), func(c *gin.Context) {
		handlerCalled = true
		response.APISuccess(c, nil)
	})

	for _, tt := range []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"invalid token", "Bearer not-a-jwt"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks",
				strings.NewReader(`{"title":"MZ세대 소비 트렌드"}`))
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			e.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, handlerCalled)

			var res response.Response
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, http.StatusUnauthorized, res.Meta.Code)
			assert.NotEmpty(t, res.Meta.Message)
			assert.NotEmpty(t, res.Meta.RequestID)
		})
	}
}
