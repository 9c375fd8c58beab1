package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/wigest/internal/api/dto"
	"github.com/martijn/wigest/internal/api/util"
	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
	"github.com/martijn/wigest/internal/core/service"
)

// LogHandler serves the audit trail. Read-only: log rows come from the
// database trigger.
type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// ListLogs handles GET /logs
//
//	@Summary	List audit log entries
//	@Tags		logs
//	@Param		table	query	string	false	"Filter by modified table"
//	@Param		page	query	int		false	"Page number"		default(1)
//	@Param		limit	query	int		false	"Items per page"	default(10)	maximum(100)
//	@Success	200	{object}	dto.LogListResponse
//	@Router		/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"))

	filter := repository.LogFilter{
		TableName: optionalString(c, "table"),
		Limit:     limit,
		Offset:    util.Offset(page, limit),
	}

	logs, err := h.logService.ListLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.logService.CountLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.LogListResponse{
		Items:      make([]dto.LogResponse, len(logs)),
		Pagination: dto.NewPaginationInfo(total, page, limit),
	}
	for i, log := range logs {
		response.Items[i] = toLogResponse(log)
	}

	c.JSON(http.StatusOK, response)
}

// GetLog handles GET /logs/:id
//
//	@Summary	Get an audit log entry
//	@Tags		logs
//	@Param		id	path	int	true	"Log ID"
//	@Success	200	{object}	dto.LogResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/logs/{id} [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	log, err := h.logService.GetLog(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLogResponse(log))
}

func toLogResponse(log *domain.Log) dto.LogResponse {
	return dto.LogResponse{
		ID:            log.ID,
		TableModifiee: log.TableName,
		Action:        string(log.Action),
		DateAction:    log.ActionDate,
		Donnees:       log.Data,
	}
}
