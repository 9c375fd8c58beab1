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

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ListPayments handles GET /paiements
//
//	@Summary	List payments
//	@Tags		paiements
//	@Param		abonnement_id	query	int		false	"Filter by subscription"
//	@Param		client_id		query	int		false	"Filter by client"
//	@Param		offre_id		query	int		false	"Filter by offer"
//	@Param		mois			query	string	false	"Payment month (YYYY-MM)"
//	@Param		page			query	int		false	"Page number"		default(1)
//	@Param		limit			query	int		false	"Items per page"	default(10)	maximum(100)
//	@Success	200	{object}	dto.PaymentListResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/paiements [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"))

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Offset = util.Offset(page, limit)

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.paymentService.CountPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.PaymentListResponse{
		Items:      make([]dto.PaymentResponse, len(payments)),
		Pagination: dto.NewPaginationInfo(total, page, limit),
	}
	for i, payment := range payments {
		response.Items[i] = toPaymentResponse(payment)
	}

	c.JSON(http.StatusOK, response)
}

// GetPayment handles GET /paiements/:id
//
//	@Summary	Get a payment
//	@Tags		paiements
//	@Param		id	path	int	true	"Payment ID"
//	@Success	200	{object}	dto.PaymentResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/paiements/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// CreatePayment handles POST /paiements
//
//	@Summary	Create a payment
//	@Tags		paiements
//	@Param		paiement	body	dto.CreatePaymentRequest	true	"Payment"
//	@Success	201	{object}	dto.PaymentResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/paiements [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	paymentDate, err := parseDate(req.DatePaiement)
	if err != nil {
		badRequest(c, "Date de paiement invalide (format attendu: YYYY-MM-DD)")
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req.AbonnementID, *req.Montant, paymentDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

// UpdatePayment handles PUT /paiements/:id. Omitted fields keep their stored
// values; the subscription reference cannot be changed.
//
//	@Summary	Update a payment
//	@Tags		paiements
//	@Param		id			path	int							true	"Payment ID"
//	@Param		paiement	body	dto.UpdatePaymentRequest	true	"Payment"
//	@Success	200	{object}	dto.PaymentResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/paiements/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var paymentDate *time.Time
	if req.DatePaiement != nil {
		parsed, err := parseDate(*req.DatePaiement)
		if err != nil {
			badRequest(c, "Date de paiement invalide (format attendu: YYYY-MM-DD)")
			return
		}
		paymentDate = &parsed
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, req.Montant, paymentDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// DeletePayment handles DELETE /paiements/:id
//
//	@Summary	Delete a payment
//	@Tags		paiements
//	@Param		id	path	int	true	"Payment ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/paiements/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	outcome, err := h.paymentService.DeletePayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if outcome == domain.DeleteOutcomeDeleted {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Paiement supprimé avec succès"})
		return
	}
	notFound(c, "Paiement non trouvé")
}

func (h *PaymentHandler) parseFilter(c *gin.Context) (repository.PaymentFilter, bool) {
	subscriptionID, err := parseOptionalInt64(c, "abonnement_id")
	if err != nil {
		badRequest(c, "abonnement_id invalide")
		return repository.PaymentFilter{}, false
	}
	clientID, err := parseOptionalInt64(c, "client_id")
	if err != nil {
		badRequest(c, "client_id invalide")
		return repository.PaymentFilter{}, false
	}
	offerID, err := parseOptionalInt64(c, "offre_id")
	if err != nil {
		badRequest(c, "offre_id invalide")
		return repository.PaymentFilter{}, false
	}

	return repository.PaymentFilter{
		SubscriptionID: subscriptionID,
		ClientID:       clientID,
		OfferID:        offerID,
		Month:          optionalString(c, "mois"),
	}, true
}

func toPaymentResponse(payment *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:           payment.ID,
		AbonnementID: payment.SubscriptionID,
		ClientNom:    payment.ClientName,
		OffreNom:     payment.OfferName,
		Montant:      payment.Amount,
		DatePaiement: formatDate(payment.PaymentDate),
	}
}
