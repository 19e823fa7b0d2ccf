package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/reportrack/reportrack/app/response"
)

func newTestContext(acceptLanguage string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func Test_GetLangFromRequestOrDefault(t *testing.T) {
	assert.Equal(t, "ko", response.GetLangFromRequestOrDefault(newTestContext("")))
	assert.Equal(t, "ko", response.GetLangFromRequestOrDefault(newTestContext("fr")))
	assert.Equal(t, "en", response.GetLangFromRequestOrDefault(newTestContext("en")))
	assert.Equal(t, "ko", response.GetLangFromRequestOrDefault(newTestContext("ko")))
}
