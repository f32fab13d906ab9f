// club/api/auth_handler.go
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/sundayfc/club-service/club/auth"
	"github.com/sundayfc/club-service/club/service"
	"github.com/sundayfc/club-service/club/session"
	"github.com/sundayfc/club-service/shared/api"
	"github.com/sundayfc/club-service/shared/models"
)

type LoginRequest struct {
	OpenID string `json:"openid"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
	IsNew bool         `json:"isNew"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// LoginHandler resolves an identity to a user account, creating it on first
// sight, and returns a signed session token.
// POST /login
func (ch *ClubAPIHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}
	if req.OpenID == "" {
		api.WriteBadRequest(w, "openid is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, isNew, err := ch.UserService.Login(ctx, req.OpenID, req.Name, req.Avatar)
	if err != nil {
		log.Printf("ERROR: Login failed for %s: %v", req.OpenID, err)
		api.WriteInternalServerError(w, "Login failed")
		return
	}

	token, err := auth.IssueToken(user.OpenID, user.Role, ch.jwtSecret, ch.jwtExpiry)
	if err != nil {
		log.Printf("ERROR: Failed to issue token for %s: %v", user.OpenID, err)
		api.WriteInternalServerError(w, "Login failed")
		return
	}

	api.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: user, IsNew: isNew})
	log.Printf("INFO: User %s logged in.", user.OpenID)
}

// LogoutHandler clears the caller's cached session.
// POST /logout
func (ch *ClubAPIHandlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.UserService.Logout(ctx, sess.OpenID); err != nil {
		log.Printf("ERROR: Logout failed for %s: %v", sess.OpenID, err)
		api.WriteInternalServerError(w, "Logout failed")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// MeHandler returns the caller's stored profile.
// GET /me
func (ch *ClubAPIHandlers) MeHandler(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := ch.UserService.GetUser(ctx, sess.OpenID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			api.WriteNotFound(w, "User not found")
		default:
			log.Printf("ERROR: Failed to load user %s: %v", sess.OpenID, err)
			api.WriteInternalServerError(w, "Failed to load user")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler updates the caller's editable profile fields.
// PUT /me
func (ch *ClubAPIHandlers) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.UserService.UpdateProfile(ctx, sess.OpenID, req.Name, req.Avatar, req.Bio); err != nil {
		switch err {
		case service.ErrUserNotFound:
			api.WriteNotFound(w, "User not found")
		default:
			log.Printf("ERROR: Failed to update profile for %s: %v", sess.OpenID, err)
			api.WriteInternalServerError(w, "Failed to update profile")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
}
