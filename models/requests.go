package models

// SignupRequest is the payload of POST /users/signup.
type SignupRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest is the payload of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ChangePasswordRequest is the payload of PUT /users/{id}/update.
// ID is taken from the URL, not from the body.
type ChangePasswordRequest struct {
	ID          string `json:"-" form:"-" validate:"required"`
	Password    string `json:"password" form:"password" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required"`
}
