package store

import (
	"time"

	"github.com/MKhiriev/go-storefront/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// schema describes how a record type maps onto its table.
// columns, scan and values must agree on column order.
type schema[T any] struct {
	table   string
	columns []string
	scan    func(row rowScanner) (T, error)
	values  func(item T) []any

	// stamp sets the identifier and creation time of a new record.
	stamp func(item *T, id string, createdAt time.Time)

	// duplicateErr is returned instead of [ErrDuplicateRecord] when an
	// insert violates a unique constraint.
	duplicateErr error
}

var userSchema = schema[models.User]{
	table:   models.User{}.TableName(),
	columns: []string{"id", "name", "username", "email", "password", "created_at"},
	scan: func(row rowScanner) (models.User, error) {
		var u models.User
		err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
		return u, err
	},
	values: func(u models.User) []any {
		return []any{u.ID, u.Name, u.Username, u.Email, u.Password, u.CreatedAt}
	},
	stamp: func(u *models.User, id string, createdAt time.Time) {
		u.ID, u.CreatedAt = id, createdAt
	},
	duplicateErr: ErrUsernameTaken,
}

var cardSchema = schema[models.Card]{
	table:   models.Card{}.TableName(),
	columns: []string{"id", "name", "description", "image", "price", "quantity", "created_at"},
	scan: func(row rowScanner) (models.Card, error) {
		var c models.Card
		err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Price, &c.Quantity, &c.CreatedAt)
		return c, err
	},
	values: func(c models.Card) []any {
		return []any{c.ID, c.Name, c.Description, c.Image, c.Price, c.Quantity, c.CreatedAt}
	},
	stamp: func(c *models.Card, id string, createdAt time.Time) {
		c.ID, c.CreatedAt = id, createdAt
	},
}

var orderSchema = schema[models.Order]{
	table: models.Order{}.TableName(),
	columns: []string{
		"id", "user_id", "card_id", "quantity", "address", "total",
		"order_date", "order_time", "created_at",
	},
	scan: func(row rowScanner) (models.Order, error) {
		var o models.Order
		err := row.Scan(&o.ID, &o.User, &o.Card, &o.Quantity, &o.Address, &o.Total, &o.Date, &o.Time, &o.CreatedAt)
		return o, err
	},
	values: func(o models.Order) []any {
		return []any{o.ID, o.User, o.Card, o.Quantity, o.Address, o.Total, o.Date, o.Time, o.CreatedAt}
	},
	stamp: func(o *models.Order, id string, createdAt time.Time) {
		o.ID, o.CreatedAt = id, createdAt
	},
}
