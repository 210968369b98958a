package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter(secret string) (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var seen uint
	r := gin.New()
	r.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		seen = id
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	t.Run("valid token reaches the handler with the user id set", func(t *testing.T) {
		token, err := NewGenerator(testSecret, time.Hour).GenerateToken(42, "alice@example.com")
		require.NoError(t, err)

		r, seen := newProtectedRouter(testSecret)
		w := doRequest(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), *seen)
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("header without the Bearer prefix", func(t *testing.T) {
		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		token, err := NewGenerator("other-secret", time.Hour).GenerateToken(42, "alice@example.com")
		require.NoError(t, err)

		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := NewGenerator(testSecret, -time.Minute).GenerateToken(42, "alice@example.com")
		require.NoError(t, err)

		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-HMAC algorithm is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 42})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		r, _ := newProtectedRouter(testSecret)
		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty secret answers 500", func(t *testing.T) {
		r, _ := newProtectedRouter("")
		w := doRequest(r, "Bearer whatever")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGenerateToken_Claims(t *testing.T) {
	token, err := NewGenerator(testSecret, time.Hour).GenerateToken(7, "bob@example.com")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "bob@example.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}
