package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/model/response/wrapper"
	service "github.com/LakshyaxGupta/FlowBreak/internal/service/session"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type IngestHandler struct {
	service service.SessionService
}

func NewIngestHandler(service service.SessionService) *IngestHandler {
	return &IngestHandler{
		service: service,
	}
}

// IngestEvents godoc
// @Summary      Ingest browser events
// @Description  Store a batch of tab switch / navigation events, creating the user and session on first sight
// @Tags         /api/ingest
// @Accept       json
// @Produce      json
// @Param        request  body      entity.IngestRequest  true  "Events batch"
// @Success      200      {object}  wrapper.ResponseWrapper{data=entity.IngestResult}
// @Failure      400      {object}  wrapper.ErrorWrapper
// @Failure      429      {object}  wrapper.ErrorWrapper
// @Failure      500      {object}  wrapper.ErrorWrapper
// @Router       /ingest/events [post]
func (h *IngestHandler) IngestEvents(c *gin.Context) {
	var req entity.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
			Success: false,
		})
		return
	}

	result, err := h.service.Ingest(c.Request.Context(), req)
	if err != nil {
		c.JSON(errorStatus(err), wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    result,
		Success: true,
	})
}

// EndSession godoc
// @Summary      End a session
// @Description  Set the session end time; defaults to now when endTime is omitted
// @Tags         /api/ingest
// @Accept       json
// @Produce      json
// @Param        sessionId  path      string                    true   "Session ID"
// @Param        request    body      entity.EndSessionRequest  false  "End time"
// @Success      200        {object}  wrapper.ResponseWrapper{data=entity.Session}
// @Failure      400        {object}  wrapper.ErrorWrapper
// @Failure      404        {object}  wrapper.ErrorWrapper
// @Failure      500        {object}  wrapper.ErrorWrapper
// @Router       /ingest/sessions/{sessionId}/end [post]
func (h *IngestHandler) EndSession(c *gin.Context) {
	idStr := c.Param("sessionId")
	if !utils.ValidateUUID(idStr) {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid UUID format",
			Success: false,
		})
		return
	}
	sessionID := uuid.FromStringOrNil(idStr)

	var req entity.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
			Success: false,
		})
		return
	}

	var endTime *time.Time
	if req.EndTime != nil && *req.EndTime != "" {
		ts, err := utils.ParseTimestamp(*req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: err.Error(),
				Success: false,
			})
			return
		}
		endTime = &ts
	}

	session, err := h.service.EndSession(c.Request.Context(), sessionID, endTime)
	if err != nil {
		c.JSON(errorStatus(err), wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    session,
		Success: true,
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest), errors.Is(err, utils.ErrInvalidTimestamp):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrSessionNotFound), errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
