package service

import "time"

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// CardServiceWrapper decorates a CardService.
type CardServiceWrapper interface {
	Wrap(CardService) CardService
}

// OrderServiceWrapper decorates an OrderService.
type OrderServiceWrapper interface {
	Wrap(OrderService) OrderService
}

// Clock returns the current time. Order stamps are taken from it.
type Clock func() time.Time
