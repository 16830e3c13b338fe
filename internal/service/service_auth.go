package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are turned into credentials by the CredentialCodec; only the
// credential ever reaches the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// codec hashes new passwords and verifies presented ones.
	codec crypto.CredentialCodec

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository.
// The returned service holds no mutable state and is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, codec crypto.CredentialCodec, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		codec:          codec,
		logger:         logger,
	}
}

func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (a *authService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := a.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// Signup creates a new account.
//
// Returns the stored user or:
//   - a wrapped crypto.ErrPasswordTooLong if the password exceeds 72 bytes;
//   - a wrapped crypto.ErrHashingFailed if the password cannot be hashed;
//   - a wrapped store.ErrUsernameTaken if the username is registered.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	credential, err := a.codec.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     request.Name,
		Username: request.Username,
		Email:    request.Email,
		Password: credential,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing user.
//
// Returns the user or:
//   - a wrapped store.ErrNotFound if no user has the username;
//   - ErrWrongPassword if the password does not match the credential.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.codec.Verify(request.Password, user.Password) {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// ChangePassword verifies the current password and replaces the credential.
// The swap only succeeds if the credential is still the one that was
// verified; otherwise a wrapped store.ErrCredentialConflict is returned.
func (a *authService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, request.ID)
	if err != nil {
		log.Err(err).Str("user_id", request.ID).Msg("user search by id failed")
		return models.UpdateResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.codec.Verify(request.Password, user.Password) {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.UpdateResult{}, ErrWrongPassword
	}

	credential, err := a.codec.Hash(request.NewPassword)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password hashing failed")
		return models.UpdateResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.SwapCredential(ctx, user.ID, user.Password, credential); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("credential update failed")
		return models.UpdateResult{}, fmt.Errorf("credential update failed: %w", err)
	}

	return models.UpdateResult{ID: user.ID, Updated: true}, nil
}
