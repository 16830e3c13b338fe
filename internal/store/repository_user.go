package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Plain CRUD goes through the generic resource repository;
// this type adds the username lookup and the credential updates.
type userRepository struct {
	users *resourceRepository[models.User]
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, ids IDGenerator, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		users: newResourceRepository(db, userSchema, ids),
	}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.users.List(ctx)
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.users.GetByID(ctx, id)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.users.getOne(ctx, sq.Eq{"username": username})
}

// CreateUser stores user. A username that is already registered yields
// [ErrUsernameTaken].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.users.Create(ctx, user)
}

// UpdateCredential overwrites the stored credential unconditionally.
func (r *userRepository) UpdateCredential(ctx context.Context, id, credential string) error {
	log := logger.FromContext(ctx)

	if !isValidID(id) {
		return ErrNotFound
	}

	affected, err := r.users.update(ctx, map[string]any{"password": credential}, sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateCredential").Str("user_id", id).Msg("failed to update credential")
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// SwapCredential overwrites the stored credential only while it still equals
// expected. When nothing was updated the user is looked up again to tell a
// missing user from a concurrent change.
func (r *userRepository) SwapCredential(ctx context.Context, id, expected, credential string) error {
	log := logger.FromContext(ctx)

	if !isValidID(id) {
		return ErrNotFound
	}

	affected, err := r.users.update(ctx,
		map[string]any{"password": credential},
		sq.Eq{"id": id, "password": expected},
	)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SwapCredential").Str("user_id", id).Msg("failed to swap credential")
		return err
	}
	if affected > 0 {
		return nil
	}

	if _, err = r.users.GetByID(ctx, id); err != nil {
		return err
	}

	log.Warn().Str("func", "userRepository.SwapCredential").Str("user_id", id).Msg("credential changed concurrently")
	return ErrCredentialConflict
}
