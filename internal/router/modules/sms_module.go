package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aidigitalcashout-cell/v0-ecobank/internal/container"
	handlers "github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/http"
	"github.com/aidigitalcashout-cell/v0-ecobank/internal/interface/middleware"
)

// SMSModule wires the outbound messaging routes. Both routes hit a paid
// provider, so they sit behind a per-IP rate limit.
type SMSModule struct {
	Handler *handlers.SMSHandler
	Limit   int
}

func NewSMSModule(h *handlers.SMSHandler, limitPerMin int) *SMSModule {
	return &SMSModule{Handler: h, Limit: limitPerMin}
}

func (m *SMSModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), m.Limit, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/sms/send", limiter, m.Handler.Send)
	rg.POST("/sms/business-card", limiter, m.Handler.SendBusinessCard)
}
