package dto

// SuccessResponse is the plain {message} body the legacy clients expect.
type SuccessResponse struct {
	Message string `json:"message"`
}
