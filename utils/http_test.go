package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cctools/internal/types"
)

func TestNewSession(t *testing.T) {
	config := types.DefaultConfig()
	logger := logrus.New()

	session := NewSession(config, logger)

	assert.NotNil(t, session)
	assert.Equal(t, config, session.config)
	assert.Equal(t, logger, session.logger)
	assert.NotNil(t, session.client)
	assert.NotNil(t, session.client.Jar)
}

func TestSession_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	body, err := session.Get(server.URL)

	require.NoError(t, err)
	assert.Equal(t, "test response", string(body))
}

func TestSession_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	_, err := session.Get(server.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
}

func TestSession_CookiesPersistAcrossRequests(t *testing.T) {
	// The admin sets a PHP session cookie on login; later requests must
	// carry it or every export request would land on the login page.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "PHPSESSID", Value: "abc123"})
			w.WriteHeader(http.StatusOK)
		default:
			cookie, err := r.Cookie("PHPSESSID")
			if err != nil || cookie.Value != "abc123" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("authenticated"))
		}
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	_, err := session.PostForm(server.URL+"/login", url.Values{"userId": {"u"}})
	require.NoError(t, err)

	body, err := session.Get(server.URL + "/export")
	require.NoError(t, err)
	assert.Equal(t, "authenticated", string(body))
}

func TestSession_PostForm_SendsValues(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	_, err := session.PostForm(server.URL, url.Values{
		"userId":   {"merchant"},
		"password": {"secret"},
	})

	require.NoError(t, err)
	assert.Equal(t, "merchant", got.Get("userId"))
	assert.Equal(t, "secret", got.Get("password"))
}

func TestSession_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("SKU,Product Name\nA001,Necklace\n"))
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	filename := filepath.Join(t.TempDir(), "products.csv")
	err := session.Download(server.URL, filename)

	require.NoError(t, err)
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "SKU,Product Name\nA001,Necklace\n", string(data))
}

func TestSession_Download_ErrorLeavesNoFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	session := NewSession(types.DefaultConfig(), logrus.New())

	filename := filepath.Join(t.TempDir(), "products.csv")
	err := session.Download(server.URL, filename)

	assert.Error(t, err)
	_, statErr := os.Stat(filename)
	assert.True(t, os.IsNotExist(statErr))
}
