package domain

type Client struct {
	ID    int64  `db:"id"`
	Name  string `db:"nom"`
	Email string `db:"email"` // unique
}

func NewClient(name, email string) *Client {
	return &Client{
		Name:  name,
		Email: email,
	}
}
