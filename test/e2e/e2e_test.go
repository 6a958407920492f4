// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/engine"
	"pegrio-chatbot/internal/models"
	"pegrio-chatbot/internal/server"
	"pegrio-chatbot/internal/session"
	"pegrio-chatbot/pkg/patterns"
)

type chatResponse struct {
	SessionID      string                 `json:"sessionId"`
	Intent         string                 `json:"intent"`
	Confidence     float64                `json:"confidence"`
	State          string                 `json:"state"`
	LeadScore      int                    `json:"leadScore"`
	LeadLevel      string                 `json:"leadLevel"`
	Recommendation *models.Recommendation `json:"recommendation"`
	AskNext        string                 `json:"askNext"`
	ShowFormCTA    bool                   `json:"showFormCta"`
	Stuck          bool                   `json:"stuck"`
}

// newStack boots the whole service against a miniredis-backed session
// store, the same wiring production uses with store=redis.
func newStack(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := session.NewRedisStore(client, 24*time.Hour)

	set, err := patterns.Load("")
	require.NoError(t, err)

	eng := engine.New(set, logger.NewTestLogger(t))
	handler := server.NewChatHandler(eng, store, nil, logger.NewTestLogger(t))
	srv := httptest.NewServer(server.NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func sendMessage(t *testing.T, srv *httptest.Server, sessionID, message string) chatResponse {
	t.Helper()
	body, err := json.Marshal(map[string]string{"sessionId": sessionID, "message": message})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/v1/chat/message", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out chatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ==========================================
// Full Conversation E2E
// ==========================================

func TestQualifyingConversationEndToEnd(t *testing.T) {
	srv := newStack(t)

	r := sendMessage(t, srv, "", "hello")
	require.NotEmpty(t, r.SessionID)
	id := r.SessionID
	assert.Equal(t, "greeting", r.Intent)
	assert.Equal(t, "welcome", r.State)
	assert.Equal(t, "business_type", r.AskNext)
	lastScore := r.LeadScore

	r = sendMessage(t, srv, id, "i own a restaurant")
	assert.Equal(t, "business_info", r.Intent)
	assert.Equal(t, "business_profiling", r.State)
	assert.Greater(t, r.LeadScore, lastScore)
	lastScore = r.LeadScore

	r = sendMessage(t, srv, id, "we need online ordering and booking appointments")
	assert.Equal(t, "feature_inquiry", r.Intent)
	assert.Equal(t, "needs_assessment", r.State)
	assert.Greater(t, r.LeadScore, lastScore)
	lastScore = r.LeadScore

	r = sendMessage(t, srv, id, "my budget is around $3000")
	assert.Equal(t, "budget_info", r.Intent)
	assert.Equal(t, "budget_discussion", r.State)
	assert.Greater(t, r.LeadScore, lastScore)

	r = sendMessage(t, srv, id, "i need it asap")
	assert.Equal(t, "timeline_info", r.Intent)
	assert.Equal(t, "timeline_assessment", r.State)

	r = sendMessage(t, srv, id, "how fast can you build it")
	assert.Equal(t, "recommendation", r.State)
	require.NotNil(t, r.Recommendation)
	assert.Equal(t, models.PackagePremium, r.Recommendation.Package)
	assert.Greater(t, r.Recommendation.ROI.MonthlyRevenue, 0)
	assert.False(t, r.ShowFormCTA)

	r = sendMessage(t, srv, id, "i'm ready to start")
	assert.Equal(t, "ready_to_start", r.Intent)
	assert.Equal(t, "closing", r.State)
	assert.Equal(t, "qualified", r.LeadLevel)
	assert.True(t, r.ShowFormCTA)
}

// ==========================================
// Session Persistence E2E
// ==========================================

func TestSessionSurvivesAcrossRequests(t *testing.T) {
	srv := newStack(t)

	first := sendMessage(t, srv, "", "i own a cafe")
	id := first.SessionID

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/chat/session/%s", srv.URL, id))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sess models.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	assert.Equal(t, id, sess.ID)
	assert.Equal(t, models.BusinessCafe, sess.Profile.BusinessType)
	assert.Equal(t, 1, sess.MessageCount)
}

func TestResetEndsTheConversation(t *testing.T) {
	srv := newStack(t)

	first := sendMessage(t, srv, "", "hello")
	id := first.SessionID

	body, _ := json.Marshal(map[string]string{"sessionId": id})
	resp, err := http.Post(srv.URL+"/api/v1/chat/reset", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The old id is gone; a follow-up with it is a 404.
	msg, _ := json.Marshal(map[string]string{"sessionId": id, "message": "hello again"})
	resp, err = http.Post(srv.URL+"/api/v1/chat/message", "application/json", bytes.NewReader(msg))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ==========================================
// Exit and Metrics E2E
// ==========================================

func TestNotInterestedExitsImmediately(t *testing.T) {
	srv := newStack(t)

	first := sendMessage(t, srv, "", "hello")
	r := sendMessage(t, srv, first.SessionID, "not interested")

	assert.Equal(t, "not_interested", r.Intent)
	assert.Equal(t, "exit", r.State)

	// Exit is terminal regardless of what comes next.
	r = sendMessage(t, srv, first.SessionID, "i own a restaurant")
	assert.Equal(t, "exit", r.State)
}

func TestMetricsEndpointExposesTurnCounters(t *testing.T) {
	srv := newStack(t)

	sendMessage(t, srv, "", "hello")

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "chatbot_turns_processed_total")
}
