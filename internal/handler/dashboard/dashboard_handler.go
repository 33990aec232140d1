package handler

import (
	"errors"
	"net/http"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/model/response/wrapper"
	service "github.com/LakshyaxGupta/FlowBreak/internal/service/dashboard"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetUserAnalytics godoc
// @Summary      User dashboard
// @Description  Focus analytics for every session of a user plus overall totals
// @Tags         /api/dashboard
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  wrapper.ResponseWrapper{data=entity.DashboardResponse}
// @Failure      404    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /dashboard/users/{email}/analytics [get]
func (h *DashboardHandler) GetUserAnalytics(c *gin.Context) {
	dashboard, err := h.service.GetUserDashboard(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{
				Message: "User not found",
				Success: false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: "Failed to get dashboard analytics: " + err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    dashboard,
		Success: true,
	})
}

// GetSessionAnalytics godoc
// @Summary      Session analytics
// @Description  Focus score, attention breaks with explanations and domain summary for one session
// @Tags         /api/dashboard
// @Produce      json
// @Param        sessionId  path      string  true  "Session ID"
// @Success      200        {object}  wrapper.ResponseWrapper{data=entity.SessionAnalyticsResponse}
// @Failure      400        {object}  wrapper.ErrorWrapper
// @Failure      404        {object}  wrapper.ErrorWrapper
// @Failure      500        {object}  wrapper.ErrorWrapper
// @Router       /dashboard/sessions/{sessionId}/analytics [get]
func (h *DashboardHandler) GetSessionAnalytics(c *gin.Context) {
	idStr := c.Param("sessionId")
	if !utils.ValidateUUID(idStr) {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid UUID format",
			Success: false,
		})
		return
	}

	analytics, err := h.service.GetSessionAnalytics(c.Request.Context(), uuid.FromStringOrNil(idStr))
	if err != nil {
		if errors.Is(err, entity.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{
				Message: "Session not found",
				Success: false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: "Failed to get session analytics: " + err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    analytics,
		Success: true,
	})
}
