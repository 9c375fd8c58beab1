package domain

type Offer struct {
	ID        int64  `db:"id"`
	Name      string `db:"nom"` // unique
	DebitMbps *int   `db:"debit_mbps"`
	Price     *int   `db:"prix"`
}

func NewOffer(name string, debitMbps, price *int) *Offer {
	return &Offer{
		Name:      name,
		DebitMbps: debitMbps,
		Price:     price,
	}
}
