package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UpdateResult reports the outcome of a credential change.
type UpdateResult struct {
	ID      string `json:"_id"`
	Updated bool   `json:"updated"`
}

// DeleteResult reports the outcome of a card deletion.
type DeleteResult struct {
	ID      string `json:"_id"`
	Deleted bool   `json:"deleted"`
}
