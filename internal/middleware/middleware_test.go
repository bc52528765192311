package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"petclinic/internal/platform/logger"
	"petclinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

type stubVerifier struct {
	claims auth.Claims
	err    error
	got    string
}

func (v *stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	v.got = token
	return v.claims, v.err
}

func TestAccess(t *testing.T) {
	t.Run("anonymous allowed passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Access(Policy{AnonymousAllowed: true})(okHandler).ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denied without claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Access(Policy{})(okHandler).ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrTypeAccessDenied, body.Type)
	})

	t.Run("allowed with claims", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", nil)
		req = req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: "u1"}))

		rec := httptest.NewRecorder()
		Access(Policy{})(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthContext(t *testing.T) {
	capture := func(out *auth.Claims, found *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*out, *found = GetClaims(r.Context())
		})
	}

	t.Run("dev mode uses debug header", func(t *testing.T) {
		var c auth.Claims
		var ok bool
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(DebugUserHeader, " owner-1 ")

		AuthContext(nil)(capture(&c, &ok)).ServeHTTP(httptest.NewRecorder(), req)
		require.True(t, ok)
		assert.Equal(t, "owner-1", c.UserID)
	})

	t.Run("verifier mode uses bearer token", func(t *testing.T) {
		v := &stubVerifier{claims: auth.Claims{UserID: "u2"}}
		var c auth.Claims
		var ok bool
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "bearer tok-1")

		AuthContext(v)(capture(&c, &ok)).ServeHTTP(httptest.NewRecorder(), req)
		require.True(t, ok)
		assert.Equal(t, "tok-1", v.got)
		assert.Equal(t, "u2", c.UserID)
	})

	t.Run("verifier failure leaves request anonymous", func(t *testing.T) {
		v := &stubVerifier{err: errors.New("bad")}
		var ok bool
		var c auth.Claims
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		req.Header.Set(DebugUserHeader, "ignored")

		rec := httptest.NewRecorder()
		AuthContext(v)(capture(&c, &ok)).ServeHTTP(rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  BEARER   abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "given")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "given", seen)
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})

	h := Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/connect/OwnerEndpoint/save", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrTypeEndpoint, body.Type)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestLogging_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})

	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/x", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, 500, entry["status"])
	assert.Equal(t, "/x", entry["path"])
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(0, 0)(okHandler)
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
