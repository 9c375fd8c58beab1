package domain

import "time"

type Subscription struct {
	ID        int64      `db:"id"`
	ClientID  int64      `db:"client_id"`
	OfferID   int64      `db:"offre_id"`
	StartDate time.Time  `db:"date_debut"`
	EndDate   *time.Time `db:"date_fin"`

	// Denormalized on read via join
	ClientName string `db:"client_nom"`
	OfferName  string `db:"offre_nom"`
}

func NewSubscription(clientID, offerID int64, startDate time.Time, endDate *time.Time) *Subscription {
	return &Subscription{
		ClientID:  clientID,
		OfferID:   offerID,
		StartDate: startDate,
		EndDate:   endDate,
	}
}
