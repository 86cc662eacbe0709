package address

import "github.com/google/uuid"

type Address struct {
	ID     uuid.UUID `json:"id"`
	UserID uint      `json:"user_id"`

	Label string `json:"label"`
	Name  string `json:"name"`
	Phone string `json:"phone"`

	Line1 string  `json:"line1"`
	Line2 *string `json:"line2,omitempty"`

	City   string `json:"city"`
	Postal string `json:"postal"`

	IsDefault bool `json:"is_default"`
	IsActive  bool `json:"-"`
}

type CreateAddressInput struct {
	Label        string  `json:"label"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Line1        string  `json:"line1"`
	Line2        *string `json:"line2,omitempty"`
	City         string  `json:"city"`
	Postal       string  `json:"postal"`
	SetAsDefault bool    `json:"set_as_default"`
}
