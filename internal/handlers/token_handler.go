package handlers

import (
	"net/http"

	"lawmanBack/internal/models"
)

// TokenIssuer signs tokens for a user identifier.
type TokenIssuer interface {
	NewJWT(userID string) (string, error)
}

type TokenHandler struct {
	Tokens TokenIssuer
}

// CreateJWT handles POST /createjwt.
func (h *TokenHandler) CreateJWT(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		invalidRequest(w, r, err)
		return
	}
	if req.UserID == "" {
		WriteEnvelope(w, http.StatusBadRequest, models.Bad("userID is required."))
		return
	}

	token, err := h.Tokens.NewJWT(req.UserID)
	if err != nil {
		ServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
}
