package enhance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientEnhance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"  Polished text.  "}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	out, err := c.Enhance(context.Background(), "worked on stuff at acme")
	require.NoError(t, err)
	assert.Equal(t, "Polished text.", out)
}

func TestClientEnhanceTooShort(t *testing.T) {
	c := NewClient("http://unused.invalid", time.Second)
	_, err := c.Enhance(context.Background(), "short")
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestClientEnhanceRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Enhance(context.Background(), "worked on stuff at acme")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteFailed)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestClientEnhanceEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Enhance(context.Background(), "worked on stuff at acme")
	assert.ErrorIs(t, err, ErrRemoteFailed)
}

func TestServiceFallsBackOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var notes []Notification
	svc := NewService(NewClient(srv.URL, 5*time.Second), func(n Notification) { notes = append(notes, n) })

	res, err := svc.Enhance(context.Background(), "i can't deploy. it's fine")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "I cannot deploy. It is fine", res.Text)
	require.Len(t, notes, 1)
	assert.Equal(t, "fallback", notes[0].Stage)
	assert.True(t, notes[0].Fallback)
}

func TestServiceUsesRemoteWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"Deployed the service."}`))
	}))
	defer srv.Close()

	svc := NewService(NewClient(srv.URL, 5*time.Second), nil)
	res, err := svc.Enhance(context.Background(), "i deployed the service ok")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Deployed the service.", res.Text)
}

func TestServiceNilClientAlwaysFallsBack(t *testing.T) {
	svc := NewService(nil, nil)
	res, err := svc.Enhance(context.Background(), "worked on the api")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Developed the api", res.Text)
}

func TestServiceRejectsShortText(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Enhance(context.Background(), "short")
	assert.ErrorIs(t, err, ErrTextTooShort)
}
