package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecraft/go-services/internal/enhance"
)

func enhanceRouter(remote string) *gin.Engine {
	var client *enhance.Client
	if remote != "" {
		client = enhance.NewClient(remote, 5*time.Second)
	}
	r := gin.New()
	NewEnhanceHandler(enhance.NewService(client, nil)).Register(r.Group("/api"))
	return r
}

func postEnhance(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/enhance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEnhanceRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"Led the rewrite."}`))
	}))
	defer srv.Close()

	w := postEnhance(enhanceRouter(srv.URL), `{"text":"was responsible for the rewrite"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Result   string `json:"result"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Led the rewrite.", res.Result)
	assert.False(t, res.Fallback)
}

func TestEnhanceFallbackOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	w := postEnhance(enhanceRouter(srv.URL), `{"text":"was responsible for the rewrite"}`)
	require.Equal(t, http.StatusOK, w.Code, "remote failure must not surface as an error")

	var res struct {
		Result   string `json:"result"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Fallback)
	assert.Equal(t, "Led the rewrite", res.Result)
}

func TestEnhanceTooShort(t *testing.T) {
	w := postEnhance(enhanceRouter(""), `{"text":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnhanceMissingText(t *testing.T) {
	w := postEnhance(enhanceRouter(""), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
