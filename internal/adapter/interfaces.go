// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the storefront HTTP API.
//
// [StorefrontClient] mirrors the REST surface one method per route. Failed
// requests are mapped from HTTP status codes to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server's {"error": ...} message is kept in
// the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

// StorefrontClient is a client of the storefront HTTP API.
type StorefrontClient interface {
	// Greeting returns the plain-text body of GET /.
	Greeting(ctx context.Context) (string, error)

	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// ChangePassword replaces the password of the user request.ID.
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (models.UpdateResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	// AddCard uploads a card as a multipart form; filename names the image
	// part.
	AddCard(ctx context.Context, upload models.CardUpload, filename string) (models.Card, error)
	ListCards(ctx context.Context) ([]models.Card, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	DeleteCard(ctx context.Context, id string) (models.DeleteResult, error)

	AddOrder(ctx context.Context, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
}
