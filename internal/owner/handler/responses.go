package handler

import (
	"time"

	"aquaria/internal/owner/models"
	"aquaria/internal/owner/service"
)

type OwnerResponse struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	LastLoginClient string     `json:"last_login_client,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Owner       OwnerResponse `json:"owner"`
}

func toOwnerResponse(o *models.Owner) OwnerResponse {
	return OwnerResponse{
		ID:              o.ID.String(),
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		Email:           o.Email,
		Role:            string(o.Role),
		LastLogin:       o.LastLogin,
		LastLoginClient: o.LastLoginClient,
		CreatedAt:       o.CreatedAt,
	}
}

func toLoginResponse(res *service.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: res.Token.Token,
		TokenType:   "Bearer",
		ExpiresAt:   res.Token.ExpiresAt,
		Owner:       toOwnerResponse(res.Owner),
	}
}
