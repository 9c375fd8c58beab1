package domain

import "time"

type Payment struct {
	ID             int64     `db:"id"`
	SubscriptionID int64     `db:"abonnement_id"`
	Amount         float64   `db:"montant"`
	PaymentDate    time.Time `db:"date_paiement"`

	// Denormalized on read via join through abonnements
	ClientName string `db:"client_nom"`
	OfferName  string `db:"offre_nom"`
}

func NewPayment(subscriptionID int64, amount float64, paymentDate time.Time) *Payment {
	return &Payment{
		SubscriptionID: subscriptionID,
		Amount:         amount,
		PaymentDate:    paymentDate,
	}
}
