package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGenerateState_Unique(t *testing.T) {
	svc := NewGoogleService("id", "secret", "http://localhost/cb", []string{"email"})

	a, b := svc.GenerateState(), svc.GenerateState()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRedirectURL(t *testing.T) {
	svc := NewGoogleService("client-1", "secret", "http://localhost/cb", []string{"email"})

	u, err := url.Parse(svc.RedirectURL("abc"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "abc", u.Query().Get("state"))
	assert.Equal(t, "client-1", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost/cb", u.Query().Get("redirect_uri"))
}

func TestVerifyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","email":"siti@unand.ac.id","verified_email":true}`))
	}))
	defer srv.Close()

	svc := NewGoogleService("id", "secret", "http://localhost/cb", nil).(*GoogleServiceImpl)
	svc.userInfoURL = srv.URL

	info, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, GoogleInformation{GoogleID: "42", Email: "siti@unand.ac.id", VerifiedEmail: true}, info)
}

func TestVerifyUser_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewGoogleService("id", "secret", "http://localhost/cb", nil).(*GoogleServiceImpl)
	svc.userInfoURL = srv.URL

	_, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	assert.Error(t, err)
}
