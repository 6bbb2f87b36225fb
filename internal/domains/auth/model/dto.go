package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ExchangeRequest is posted by the trusted front-end gateway after it
// authenticates a user upstream. ExchangeSecret proves the caller is
// the gateway; the profile fields are merged into the user record.
type ExchangeRequest struct {
	ExchangeSecret string     `json:"exchange_secret"`
	UserID         *uuid.UUID `json:"user_id"`
	Email          *string    `json:"email"`
	Name           *string    `json:"name"`
	Image          *string    `json:"image"`
}

func (r ExchangeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ExchangeSecret,
			validation.Required.Error("exchange_secret is required"),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty,
			is.Email,
		),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken,
			validation.Required.Error("refresh_token is required"),
		),
	)
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r LogoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken,
			validation.Required.Error("refresh_token is required"),
		),
	)
}

// TokenPair is the issued session: a short-lived access token and a
// rotating refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
