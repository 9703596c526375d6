package models

import "github.com/golang-jwt/jwt"

// Claims binds a user identifier to the issuance time. No expiry is set.
type Claims struct {
	UserID string `json:"uid"`
	jwt.StandardClaims
}

type TokenRequest struct {
	UserID string `json:"userID"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
