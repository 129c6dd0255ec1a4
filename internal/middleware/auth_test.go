package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
)

type stubVerifier struct {
	claims *authModel.Claims
	err    error
}

func (s *stubVerifier) Verify(token string) (*authModel.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

// protectedRouter guards an endpoint that writes a body and reports
// whether it ran, so a guard that rejects only after letting the chain
// advance cannot pass.
func protectedRouter(guard gin.HandlerFunc) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	handlerRan := false
	r := gin.New()
	r.GET("/protected", guard, func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"result": "mutated"})
	})
	return r, &handlerRan
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		router, handlerRan := protectedRouter(RequireAuth(&stubVerifier{}))
		w := doGet(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("malformed header", func(t *testing.T) {
		router, handlerRan := protectedRouter(RequireAuth(&stubVerifier{}))
		w := doGet(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("invalid token", func(t *testing.T) {
		verifier := &stubVerifier{err: errors.New("bad token")}
		router, handlerRan := protectedRouter(RequireAuth(verifier))
		w := doGet(router, "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("valid token passes", func(t *testing.T) {
		verifier := &stubVerifier{claims: &authModel.Claims{UserID: "u1", Role: authModel.RoleViewer}}
		router, handlerRan := protectedRouter(RequireAuth(verifier))
		w := doGet(router, "Bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *handlerRan)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("viewer is forbidden and handler never runs", func(t *testing.T) {
		verifier := &stubVerifier{claims: &authModel.Claims{UserID: "u1", Role: authModel.RoleViewer}}
		router, handlerRan := protectedRouter(RequireAdmin(verifier))
		w := doGet(router, "Bearer abc")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *handlerRan)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
		assert.NotContains(t, w.Body.String(), "mutated")
	})

	t.Run("admin passes", func(t *testing.T) {
		verifier := &stubVerifier{claims: &authModel.Claims{UserID: "u1", Role: authModel.RoleAdmin}}
		router, handlerRan := protectedRouter(RequireAdmin(verifier))
		w := doGet(router, "Bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *handlerRan)
	})

	t.Run("no token still unauthorized", func(t *testing.T) {
		router, handlerRan := protectedRouter(RequireAdmin(&stubVerifier{}))
		w := doGet(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})
}
