package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/wigest/internal/api/dto"
	"github.com/martijn/wigest/internal/api/util"
	"github.com/martijn/wigest/internal/core/domain"
	"github.com/martijn/wigest/internal/core/repository"
	"github.com/martijn/wigest/internal/core/service"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// ListSubscriptions handles GET /abonnements
//
//	@Summary	List subscriptions
//	@Tags		abonnements
//	@Param		client_id	query	int		false	"Filter by client"
//	@Param		offre_id	query	int		false	"Filter by offer"
//	@Param		mois		query	string	false	"Start month (YYYY-MM)"
//	@Param		page		query	int		false	"Page number"		default(1)
//	@Param		limit		query	int		false	"Items per page"	default(10)	maximum(100)
//	@Success	200	{object}	dto.SubscriptionListResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/abonnements [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"))

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Offset = util.Offset(page, limit)

	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.subscriptionService.CountSubscriptions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.SubscriptionListResponse{
		Items:      make([]dto.SubscriptionResponse, len(subs)),
		Pagination: dto.NewPaginationInfo(total, page, limit),
	}
	for i, sub := range subs {
		response.Items[i] = toSubscriptionResponse(sub)
	}

	c.JSON(http.StatusOK, response)
}

// GetSubscription handles GET /abonnements/:id
//
//	@Summary	Get a subscription
//	@Tags		abonnements
//	@Param		id	path	int	true	"Subscription ID"
//	@Success	200	{object}	dto.SubscriptionResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/abonnements/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.GetSubscription(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}

// CreateSubscription handles POST /abonnements
//
//	@Summary	Create a subscription
//	@Tags		abonnements
//	@Param		abonnement	body	dto.CreateSubscriptionRequest	true	"Subscription"
//	@Success	201	{object}	dto.SubscriptionResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/abonnements [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startDate, err := parseDate(req.DateDebut)
	if err != nil {
		badRequest(c, "Date de début invalide (format attendu: YYYY-MM-DD)")
		return
	}
	endDate, ok := h.parseEndDate(c, req.DateFin)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), req.ClientID, req.OffreID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(sub))
}

// UpdateSubscription handles PUT /abonnements/:id. Omitted fields keep their
// stored values; the client reference cannot be changed.
//
//	@Summary	Update a subscription
//	@Tags		abonnements
//	@Param		id			path	int								true	"Subscription ID"
//	@Param		abonnement	body	dto.UpdateSubscriptionRequest	true	"Subscription"
//	@Success	200	{object}	dto.SubscriptionResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/abonnements/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var startDate *time.Time
	if req.DateDebut != nil {
		parsed, err := parseDate(*req.DateDebut)
		if err != nil {
			badRequest(c, "Date de début invalide (format attendu: YYYY-MM-DD)")
			return
		}
		startDate = &parsed
	}
	endDate, ok := h.parseEndDate(c, req.DateFin)
	if !ok {
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), id, req.OffreID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}

// DeleteSubscription handles DELETE /abonnements/:id. A 409 means payments
// still reference the subscription; a 404 means it never existed.
//
//	@Summary	Delete a subscription
//	@Tags		abonnements
//	@Param		id	path	int	true	"Subscription ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	409	{object}	dto.ErrorResponse
//	@Router		/abonnements/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	outcome, err := h.subscriptionService.DeleteSubscription(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	switch outcome {
	case domain.DeleteOutcomeDeleted:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Abonnement supprimé avec succès"})
	case domain.DeleteOutcomeBlocked:
		conflict(c, "Impossible de supprimer cet abonnement car il a des paiements associés")
	default:
		notFound(c, "Abonnement non trouvé")
	}
}

func (h *SubscriptionHandler) parseFilter(c *gin.Context) (repository.SubscriptionFilter, bool) {
	clientID, err := parseOptionalInt64(c, "client_id")
	if err != nil {
		badRequest(c, "client_id invalide")
		return repository.SubscriptionFilter{}, false
	}
	offerID, err := parseOptionalInt64(c, "offre_id")
	if err != nil {
		badRequest(c, "offre_id invalide")
		return repository.SubscriptionFilter{}, false
	}

	return repository.SubscriptionFilter{
		ClientID: clientID,
		OfferID:  offerID,
		Month:    optionalString(c, "mois"),
	}, true
}

// parseEndDate parses an optional YYYY-MM-DD string, answering 400 itself on
// a malformed value.
func (h *SubscriptionHandler) parseEndDate(c *gin.Context, value *string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	parsed, err := parseDate(*value)
	if err != nil {
		badRequest(c, "Date de fin invalide (format attendu: YYYY-MM-DD)")
		return nil, false
	}
	return &parsed, true
}

func toSubscriptionResponse(sub *domain.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:        sub.ID,
		ClientID:  sub.ClientID,
		ClientNom: sub.ClientName,
		OffreID:   sub.OfferID,
		OffreNom:  sub.OfferName,
		DateDebut: formatDate(sub.StartDate),
		DateFin:   formatDatePtr(sub.EndDate),
	}
}
