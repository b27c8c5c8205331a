package http

import (
	"errors"
	"net/http"
	"time"

	"bizbot/internal/entities"
	"bizbot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message      string `json:"message"`
	BusinessIdea string `json:"business_idea"`
	BusinessName string `json:"business_name"`
}

type Handler struct {
	messageService *usecases.MessageService
	now            func() time.Time
}

func NewHandler(service *usecases.MessageService) *Handler {
	return &Handler{
		messageService: service,
		now:            time.Now,
	}
}

// RouterConfig carries the transport settings SetupRoutes applies
type RouterConfig struct {
	MaxRequestBytes int64
}

func SetupRoutes(r *gin.Engine, service *usecases.MessageService, middleware *Middleware, cfg RouterConfig) {
	h := NewHandler(service)

	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = 1 << 20
	}

	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(cfg.MaxRequestBytes))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired(), middleware.RateLimitPerClient())
	{
		api.POST("/chat", h.HandleChat)
	}
}

// HandleChat answers one chat message with the response envelope
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg := entities.Message{
		ID:           c.GetString(requestIDKey),
		From:         c.ClientIP(),
		Content:      CleanInput(req.Message, MaxMessageLength),
		Platform:     "web",
		BusinessIdea: CleanInput(req.BusinessIdea, MaxBusinessIdeaLength),
		BusinessName: CleanInput(req.BusinessName, MaxBusinessNameLength),
	}
	if clientID := c.GetString(clientIDKey); clientID != "" {
		msg.From = clientID
	}

	resp := h.messageService.Reply(msg)
	log.Debug().Str("request_id", msg.ID).Str("type", string(resp.Type)).Msg("[HTTP] chat reply")
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
	})
}
