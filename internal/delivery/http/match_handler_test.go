package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bazaarhttp "bazaar/internal/delivery/http"
	"bazaar/internal/logger"
	"bazaar/internal/repository"
)

func newTestRouter(t *testing.T) (*gin.Engine, repository.MatchRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	level := "error"
	require.NoError(t, logger.Init(&level))

	repo := repository.NewInMemoryMatchRepository(nil)
	handler := bazaarhttp.NewMatchHandler(repo, nil, nil)
	router := bazaarhttp.SetupRouter(handler, []string{"*"})
	return router, repo
}

func TestMatchHandlerHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
}

func TestMatchHandlerCreateMatch(t *testing.T) {
	router, repo := newTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"actors": [][]string{{"alice", "purchase-points"}, {"bob", "purchase-size"}},
		"seed":   int64(7),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)

	var resp bazaarhttp.CreateMatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Match.ID)
	assert.Equal(t, "running", resp.Match.Status)
	assert.ElementsMatch(t, []string{"alice", "bob"}, resp.Match.Actors)

	// the referee runs in a background goroutine; give it a moment so the
	// repository write at the end of this test doesn't race test teardown.
	time.Sleep(10 * time.Millisecond)
	_, err = repo.Get(req.Context(), resp.Match.ID)
	assert.NoError(t, err)
}

func TestMatchHandlerCreateMatchRejectsBadActors(t *testing.T) {
	router, _ := newTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"actors": [][]string{{"alice", "not-a-policy"}},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestMatchHandlerGetMatchNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/matches/does-not-exist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func TestMatchHandlerListMatches(t *testing.T) {
	router, _ := newTestRouter(t)

	body, err := json.Marshal(map[string]interface{}{
		"actors": [][]string{{"alice", "purchase-points"}},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/matches", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/api/v1/matches", nil)
	router.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)

	var listResp bazaarhttp.ListMatchesResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Matches, 1)
}
