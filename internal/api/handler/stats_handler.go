package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/wigest/internal/api/dto"
	"github.com/martijn/wigest/internal/core/repository"
	"github.com/martijn/wigest/internal/core/service"
)

// statsLimit caps the unpaginated stats listings.
const statsLimit = 1000

// StatsHandler serves flat, unpaginated listings meant for dashboard charts.
type StatsHandler struct {
	subscriptionService *service.SubscriptionService
	paymentService      *service.PaymentService
}

func NewStatsHandler(
	subscriptionService *service.SubscriptionService,
	paymentService *service.PaymentService,
) *StatsHandler {
	return &StatsHandler{
		subscriptionService: subscriptionService,
		paymentService:      paymentService,
	}
}

// PaymentStats handles GET /stats/paiements
//
//	@Summary	Payment statistics
//	@Tags		stats
//	@Param		mois	query	string	false	"Payment month (YYYY-MM)"
//	@Param		offre	query	int		false	"Filter by offer"
//	@Success	200	{object}	dto.PaymentStatsResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/stats/paiements [get]
func (h *StatsHandler) PaymentStats(c *gin.Context) {
	offerID, err := parseOptionalInt64(c, "offre")
	if err != nil {
		badRequest(c, "offre invalide")
		return
	}

	filter := repository.PaymentFilter{
		OfferID: offerID,
		Month:   optionalString(c, "mois"),
		Limit:   statsLimit,
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.PaymentStatsResponse{
		Paiements: make([]dto.PaymentResponse, len(payments)),
	}
	for i, payment := range payments {
		response.Paiements[i] = toPaymentResponse(payment)
	}

	c.JSON(http.StatusOK, response)
}

// SubscriptionStats handles GET /stats/abonnements
//
//	@Summary	Subscription statistics
//	@Tags		stats
//	@Param		mois	query	string	false	"Start month (YYYY-MM)"
//	@Param		offre	query	int		false	"Filter by offer"
//	@Success	200	{object}	dto.SubscriptionStatsResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/stats/abonnements [get]
func (h *StatsHandler) SubscriptionStats(c *gin.Context) {
	offerID, err := parseOptionalInt64(c, "offre")
	if err != nil {
		badRequest(c, "offre invalide")
		return
	}

	filter := repository.SubscriptionFilter{
		OfferID: offerID,
		Month:   optionalString(c, "mois"),
		Limit:   statsLimit,
	}

	subs, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.SubscriptionStatsResponse{
		Abonnements: make([]dto.SubscriptionResponse, len(subs)),
	}
	for i, sub := range subs {
		response.Abonnements[i] = toSubscriptionResponse(sub)
	}

	c.JSON(http.StatusOK, response)
}
