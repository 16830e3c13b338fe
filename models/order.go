// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Order is an immutable purchase record.
//
// User and Card are copied identifier values. They are not checked against
// existing users or cards.
type Order struct {
	ID       string  `json:"_id" form:"-"`
	User     string  `json:"user" form:"user" validate:"required"`
	Card     string  `json:"card" form:"card" validate:"required"`
	Quantity int     `json:"quantity" form:"quantity"`
	Address  string  `json:"address" form:"address" validate:"required"`
	Total    float64 `json:"total" form:"total"`

	// Date and Time are the human-readable creation stamps, formatted with
	// the configured layouts when the order is placed.
	Date string `json:"date" form:"-"`
	Time string `json:"time" form:"-"`

	CreatedAt time.Time `json:"created_at" form:"-"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
