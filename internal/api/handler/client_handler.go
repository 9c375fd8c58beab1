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

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// ListClients handles GET /clients
//
//	@Summary	List clients
//	@Tags		clients
//	@Param		search	query	string	false	"Substring match on name or email"
//	@Param		page	query	int		false	"Page number"		default(1)
//	@Param		limit	query	int		false	"Items per page"	default(10)	maximum(100)
//	@Success	200	{object}	dto.ClientListResponse
//	@Router		/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"))

	filter := repository.ClientFilter{
		Search: optionalString(c, "search"),
		Limit:  limit,
		Offset: util.Offset(page, limit),
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	// The count query shares the filter, so total and items always agree
	total, err := h.clientService.CountClients(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ClientListResponse{
		Items:      make([]dto.ClientResponse, len(clients)),
		Pagination: dto.NewPaginationInfo(total, page, limit),
	}
	for i, client := range clients {
		response.Items[i] = toClientResponse(client)
	}

	c.JSON(http.StatusOK, response)
}

// GetClient handles GET /clients/:id
//
//	@Summary	Get a client
//	@Tags		clients
//	@Param		id	path	int	true	"Client ID"
//	@Success	200	{object}	dto.ClientResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// CreateClient handles POST /clients
//
//	@Summary	Create a client
//	@Tags		clients
//	@Param		client	body	dto.CreateClientRequest	true	"Client"
//	@Success	201	{object}	dto.ClientResponse
//	@Failure	409	{object}	dto.ErrorResponse
//	@Router		/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.Nom, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

// UpdateClient handles PUT /clients/:id
//
//	@Summary	Update a client
//	@Tags		clients
//	@Param		id		path	int						true	"Client ID"
//	@Param		client	body	dto.UpdateClientRequest	true	"Client"
//	@Success	200	{object}	dto.ClientResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, req.Nom, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// DeleteClient handles DELETE /clients/:id
//
//	@Summary	Delete a client
//	@Tags		clients
//	@Param		id	path	int	true	"Client ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	outcome, err := h.clientService.DeleteClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	switch outcome {
	case domain.DeleteOutcomeDeleted:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Client supprimé avec succès"})
	default:
		notFound(c, "Client non trouvé")
	}
}

func toClientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:    client.ID,
		Nom:   client.Name,
		Email: client.Email,
	}
}
