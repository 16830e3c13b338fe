package models

import "time"

// Card is a purchasable catalog item.
type Card struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Image is the uploaded picture as a data URI:
	// "data:<mime>;base64,<payload>".
	Image string `json:"image"`

	// Price is transported as-is; no currency semantics are attached.
	Price float64 `json:"price"`

	// Quantity is the stock counter, transported as-is.
	Quantity int `json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// CardUpload carries the fields of a card creation request together with
// the raw bytes of the attached image.
type CardUpload struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Price       float64 `form:"price" validate:"gte=0"`
	Quantity    int     `form:"quantity" validate:"gte=0"`

	// Image is the raw file content. ImageType is the MIME type reported by
	// the client; it may be empty, in which case it is sniffed from Image.
	Image     []byte `form:"-" validate:"required"`
	ImageType string `form:"-"`
}
