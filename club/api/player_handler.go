// club/api/player_handler.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sundayfc/club-service/club/service"
	"github.com/sundayfc/club-service/shared/api"
	"github.com/sundayfc/club-service/shared/models"
)

// PlayerDetailResponse decorates a player profile with its derived ability
// average.
type PlayerDetailResponse struct {
	*models.Player
	AbilityAverage int `json:"abilityAverage"`
}

// CreatePlayerHandler handles requests to create a new player profile.
// POST /players
func (ch *ClubAPIHandlers) CreatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	var player models.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.PlayerService.CreatePlayer(ctx, &player); err != nil {
		if err.Error() == "player name is required" {
			api.WriteBadRequest(w, "Player name is required")
			return
		}
		log.Printf("ERROR: Failed to create player: %v", err)
		api.WriteInternalServerError(w, "Failed to create player")
		return
	}

	api.WriteJSON(w, http.StatusCreated, player)
	log.Printf("INFO: Player %s (%s) created.", player.Name, player.ID)
}

// GetPlayerHandler handles requests to retrieve a player profile by ID.
// GET /players/{id}
func (ch *ClubAPIHandlers) GetPlayerHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Player ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	player, err := ch.PlayerService.GetPlayer(ctx, id)
	if err != nil {
		switch err {
		case service.ErrPlayerNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Player %s not found", id))
		default:
			log.Printf("ERROR: Failed to get player %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to retrieve player")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, PlayerDetailResponse{
		Player:         player,
		AbilityAverage: player.AbilityAverage(),
	})
}

// UpdatePlayerHandler handles requests to overwrite a player profile.
// PUT /players/{id}
func (ch *ClubAPIHandlers) UpdatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Player ID is required")
		return
	}

	var player models.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.PlayerService.UpdatePlayer(ctx, id, &player); err != nil {
		switch err {
		case service.ErrPlayerNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Player %s not found", id))
		default:
			if err.Error() == "player name is required" {
				api.WriteBadRequest(w, "Player name is required")
				return
			}
			log.Printf("ERROR: Failed to update player %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to update player")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Player %s updated", id)})
}

// DeletePlayerHandler handles requests to remove a player.
// DELETE /players/{id}
func (ch *ClubAPIHandlers) DeletePlayerHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Player ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.PlayerService.DeletePlayer(ctx, id); err != nil {
		switch err {
		case service.ErrPlayerNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Player %s not found", id))
		default:
			log.Printf("ERROR: Failed to delete player %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to delete player")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Player %s deleted", id)})
	log.Printf("INFO: Player %s deleted.", id)
}

// ListPlayersHandler handles requests for the roster. Supports ?active=true
// to restrict to active players and ?q= for fuzzy name search.
// GET /players
func (ch *ClubAPIHandlers) ListPlayersHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	query := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	players, err := ch.PlayerService.ListPlayers(ctx, activeOnly, query)
	if err != nil {
		log.Printf("ERROR: Failed to list players: %v", err)
		api.WriteInternalServerError(w, "Failed to list players")
		return
	}
	if players == nil {
		players = []models.Player{}
	}

	api.WriteJSON(w, http.StatusOK, players)
}

// PlayerMatchHistoryHandler handles requests for a player's per-match stats
// joined with match details.
// GET /players/{id}/matches
func (ch *ClubAPIHandlers) PlayerMatchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Player ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	history, err := ch.StatsService.PlayerMatchHistory(ctx, id)
	if err != nil {
		log.Printf("ERROR: Failed to load match history for player %s: %v", id, err)
		api.WriteInternalServerError(w, "Failed to load match history")
		return
	}

	api.WriteJSON(w, http.StatusOK, history)
}

// PlayerAttendanceHandler handles requests for one player's attendance rows
// and summary.
// GET /players/{id}/attendance
func (ch *ClubAPIHandlers) PlayerAttendanceHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Player ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summary, err := ch.PlayerService.PlayerAttendance(ctx, id)
	if err != nil {
		log.Printf("ERROR: Failed to load attendance for player %s: %v", id, err)
		api.WriteInternalServerError(w, "Failed to load attendance")
		return
	}
	rows, err := ch.AttendanceService.PlayerAttendanceRows(ctx, id)
	if err != nil {
		log.Printf("ERROR: Failed to list attendance rows for player %s: %v", id, err)
		api.WriteInternalServerError(w, "Failed to load attendance")
		return
	}
	if rows == nil {
		rows = []models.Attendance{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
		"rows":    rows,
	})
}
