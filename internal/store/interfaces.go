package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// ListUsers returns every user in the store's natural order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID returns the user with the given id or [ErrNotFound].
	GetUserByID(ctx context.Context, id string) (models.User, error)

	// GetUserByUsername returns the first user with the given username or
	// [ErrNotFound].
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser assigns an id and creation time to user and stores it.
	// A duplicate username yields [ErrUsernameTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateCredential replaces the credential of the user with the given id.
	UpdateCredential(ctx context.Context, id, credential string) error

	// SwapCredential replaces the credential only if it still equals
	// expected. It returns [ErrCredentialConflict] when it does not and
	// [ErrNotFound] when the user does not exist.
	SwapCredential(ctx context.Context, id, expected, credential string) error
}

// ResourceRepository is the storage contract shared by catalog cards and
// orders.
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	DeleteByID(ctx context.Context, id string) error
}
