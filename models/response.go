package models

type SignupResponse struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"anna@example.com"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Expense deleted"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"error"`
}
