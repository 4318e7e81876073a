package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daveylupes/womantech/internal/services"
	"github.com/daveylupes/womantech/internal/utils"
)

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

// List reports the session surface state
// @Summary List sessions
// @Description Session booking is not live yet; returns a typed placeholder
// @Tags sessions
// @Produce json
// @Success 200 {object} services.PlaceholderResponse
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	result, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
