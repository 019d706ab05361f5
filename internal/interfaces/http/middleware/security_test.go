package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/utils"
)

var testOrigins = []string{"http://localhost:4200", "https://helpdesk.example.com"}

func securityTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", ValidateRequestSecurity(testOrigins), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestSecurity_AllowedOrigin(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestSecurity_UnknownOriginRejected(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request origin")
}

func TestRequestSecurity_RefererPrefixAccepted(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Referer", "https://helpdesk.example.com/login")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// Requests without Origin and Referer pass the filter unchallenged.
func TestRequestSecurity_NoHeadersPass(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestSecurity_MalformedAccessTokenCookie(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid cookie: access_token")
}

func TestRequestSecurity_ShapelessCookiesPass(t *testing.T) {
	router := securityTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionIDCookie, Value: "anything-goes"})
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: "aaa.bbb.ccc"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeaders_SetOnResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
