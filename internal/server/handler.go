// internal/server/handler.go

// Package server is the HTTP shell over the conversation engine: gin
// routes, request validation and error mapping. All conversation logic
// lives in internal/engine.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	stderrors "pegrio-chatbot/internal/common/errors"
	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/common/observability"
	"pegrio-chatbot/internal/engine"
	"pegrio-chatbot/internal/models"
	"pegrio-chatbot/internal/session"
)

// ChatHandler exposes the conversation engine over HTTP. The engine is
// shared; per-visitor state lives in the session store.
type ChatHandler struct {
	engine *engine.Engine
	store  session.Store
	obs    *observability.Observability
	log    logger.Logger
}

// NewChatHandler wires the handler. obs may be nil in tests.
func NewChatHandler(eng *engine.Engine, store session.Store, obs *observability.Observability, log logger.Logger) *ChatHandler {
	return &ChatHandler{
		engine: eng,
		store:  store,
		obs:    obs,
		log:    log.WithFields(map[string]interface{}{"component": "chat-handler"}),
	}
}

// RegisterRoutes mounts the chat API under /api/v1.
func (h *ChatHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1/chat")
	v1.POST("/message", h.HandleMessage)
	v1.POST("/reset", h.HandleReset)
	v1.GET("/session/:id", h.HandleGetSession)
}

type messageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type messageResponse struct {
	SessionID      string                 `json:"sessionId"`
	Intent         string                 `json:"intent"`
	Confidence     float64                `json:"confidence"`
	State          string                 `json:"state"`
	LeadScore      int                    `json:"leadScore"`
	LeadLevel      string                 `json:"leadLevel"`
	Recommendation *models.Recommendation `json:"recommendation,omitempty"`
	AskNext        string                 `json:"askNext,omitempty"`
	ShowFormCTA    bool                   `json:"showFormCta"`
	Stuck          bool                   `json:"stuck"`
}

// HandleMessage runs one utterance through the pipeline. A missing
// sessionId starts a fresh conversation; an unknown one is a 404 so the
// client can distinguish expiry from a typo.
func (h *ChatHandler) HandleMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, stderrors.NewInvalidRequestError(err.Error()))
		return
	}

	sess, err := h.loadOrCreate(c, req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			respondError(c, http.StatusNotFound, stderrors.NewSessionNotFoundError(req.SessionID))
			return
		}
		respondError(c, http.StatusServiceUnavailable, stderrors.NewSessionStoreUnavailableError(err.Error()))
		return
	}

	start := time.Now()
	result := h.engine.ProcessTurn(sess, req.Message)
	if result.Stuck {
		// Force-advance now so the next turn starts in a fresh state.
		h.engine.Unstick(sess)
	}
	if h.obs != nil {
		h.obs.RecordTurn(c.Request.Context(), string(sess.State))
		h.obs.RecordTurnDuration(c.Request.Context(), time.Since(start), string(sess.State))
	}

	if err := h.store.Put(c.Request.Context(), sess); err != nil {
		h.log.WithError(err).Error("session persist failed", map[string]interface{}{
			"session_id": sess.ID,
		})
		respondError(c, http.StatusServiceUnavailable, stderrors.NewSessionStoreUnavailableError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		SessionID:      sess.ID,
		Intent:         string(result.Intent.Name),
		Confidence:     result.Intent.Confidence,
		State:          string(sess.State),
		LeadScore:      sess.LeadScore.Score,
		LeadLevel:      string(sess.LeadScore.Level),
		Recommendation: sess.Recommendation,
		AskNext:        string(result.AskNext),
		ShowFormCTA:    result.ShowFormCTA,
		Stuck:          result.Stuck,
	})
}

func (h *ChatHandler) loadOrCreate(c *gin.Context, id string) (*models.Session, error) {
	if id == "" {
		sess := models.NewSession(uuid.NewString())
		h.log.Info("session started", map[string]interface{}{"session_id": sess.ID})
		return sess, nil
	}
	return h.store.Get(c.Request.Context(), id)
}

type resetRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// HandleReset discards a session entirely.
func (h *ChatHandler) HandleReset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, stderrors.NewInvalidRequestError(err.Error()))
		return
	}

	if err := h.store.Delete(c.Request.Context(), req.SessionID); err != nil {
		respondError(c, http.StatusServiceUnavailable, stderrors.NewSessionStoreUnavailableError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": req.SessionID, "reset": true})
}

// HandleGetSession returns the raw session record, mainly for debugging
// and the e2e suite.
func (h *ChatHandler) HandleGetSession(c *gin.Context) {
	id := c.Param("id")
	sess, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			respondError(c, http.StatusNotFound, stderrors.NewSessionNotFoundError(id))
			return
		}
		respondError(c, http.StatusServiceUnavailable, stderrors.NewSessionStoreUnavailableError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, sess)
}

// HandleHealth reports liveness plus session store reachability.
func (h *ChatHandler) HandleHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, status int, err *stderrors.StandardError) {
	c.JSON(status, gin.H{"error": err})
}
