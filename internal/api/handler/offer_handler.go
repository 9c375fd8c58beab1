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

type OfferHandler struct {
	offerService *service.OfferService
}

func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// ListOffers handles GET /offres
//
//	@Summary	List offers
//	@Tags		offres
//	@Param		search	query	string	false	"Substring match on name"
//	@Param		page	query	int		false	"Page number"		default(1)
//	@Param		limit	query	int		false	"Items per page"	default(10)	maximum(100)
//	@Success	200	{object}	dto.OfferListResponse
//	@Router		/offres [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	page := util.ParsePage(c.Query("page"))
	limit := util.ParseLimit(c.Query("limit"))

	filter := repository.OfferFilter{
		Search: optionalString(c, "search"),
		Limit:  limit,
		Offset: util.Offset(page, limit),
	}

	offers, err := h.offerService.ListOffers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.offerService.CountOffers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.OfferListResponse{
		Items:      make([]dto.OfferResponse, len(offers)),
		Pagination: dto.NewPaginationInfo(total, page, limit),
	}
	for i, offer := range offers {
		response.Items[i] = toOfferResponse(offer)
	}

	c.JSON(http.StatusOK, response)
}

// GetOffer handles GET /offres/:id
//
//	@Summary	Get an offer
//	@Tags		offres
//	@Param		id	path	int	true	"Offer ID"
//	@Success	200	{object}	dto.OfferResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/offres/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	offer, err := h.offerService.GetOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOfferResponse(offer))
}

// CreateOffer handles POST /offres
//
//	@Summary	Create an offer
//	@Tags		offres
//	@Param		offre	body	dto.CreateOfferRequest	true	"Offer"
//	@Success	201	{object}	dto.OfferResponse
//	@Failure	409	{object}	dto.ErrorResponse
//	@Router		/offres [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), req.Nom, req.DebitMbps, req.Prix)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOfferResponse(offer))
}

// UpdateOffer handles PUT /offres/:id
//
//	@Summary	Update an offer
//	@Tags		offres
//	@Param		id		path	int						true	"Offer ID"
//	@Param		offre	body	dto.UpdateOfferRequest	true	"Offer"
//	@Success	200	{object}	dto.OfferResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/offres/{id} [put]
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), id, req.Nom, req.DebitMbps, req.Prix)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOfferResponse(offer))
}

// DeleteOffer handles DELETE /offres/:id. A 409 means subscriptions still
// reference the offer; a 404 means it never existed.
//
//	@Summary	Delete an offer
//	@Tags		offres
//	@Param		id	path	int	true	"Offer ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	409	{object}	dto.ErrorResponse
//	@Router		/offres/{id} [delete]
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	outcome, err := h.offerService.DeleteOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	switch outcome {
	case domain.DeleteOutcomeDeleted:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Offre supprimée avec succès"})
	case domain.DeleteOutcomeBlocked:
		conflict(c, "Impossible de supprimer cette offre car elle est utilisée par des abonnements")
	default:
		notFound(c, "Offre non trouvée")
	}
}

func toOfferResponse(offer *domain.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:        offer.ID,
		Nom:       offer.Name,
		DebitMbps: offer.DebitMbps,
		Prix:      offer.Price,
	}
}
