package dto

// RefreshReq represents the request body for token refresh and logout.
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
