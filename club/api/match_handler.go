// club/api/match_handler.go
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sundayfc/club-service/club/service"
	"github.com/sundayfc/club-service/club/store"
	"github.com/sundayfc/club-service/shared/api"
	"github.com/sundayfc/club-service/shared/models"
)

// scopeFromQuery builds a match scope from ?season=, ?from= and ?to=.
// Dates are YYYY-MM-DD; an unparseable date is reported to the caller.
func scopeFromQuery(r *http.Request) (store.Scope, error) {
	scope := store.Scope{Season: r.URL.Query().Get("season")}
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return store.Scope{}, fmt.Errorf("invalid from date %q", raw)
		}
		scope.From = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return store.Scope{}, fmt.Errorf("invalid to date %q", raw)
		}
		scope.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return scope, nil
}

// CreateMatchHandler handles requests to record a new match.
// POST /matches
func (ch *ClubAPIHandlers) CreateMatchHandler(w http.ResponseWriter, r *http.Request) {
	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.MatchService.CreateMatch(ctx, &match); err != nil {
		switch err.Error() {
		case "opponent is required", "match date is required", "goals and conceded must not be negative":
			api.WriteBadRequest(w, err.Error())
		default:
			log.Printf("ERROR: Failed to create match: %v", err)
			api.WriteInternalServerError(w, "Failed to create match")
		}
		return
	}

	api.WriteJSON(w, http.StatusCreated, match)
	log.Printf("INFO: Match vs %s (%s) created.", match.Opponent, match.ID)
}

// GetMatchHandler handles requests to retrieve a match by ID.
// GET /matches/{id}
func (ch *ClubAPIHandlers) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Match ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	match, err := ch.MatchService.GetMatch(ctx, id)
	if err != nil {
		switch err {
		case service.ErrMatchNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Match %s not found", id))
		default:
			log.Printf("ERROR: Failed to get match %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to retrieve match")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, match)
}

// UpdateMatchHandler handles requests to overwrite a match.
// PUT /matches/{id}
func (ch *ClubAPIHandlers) UpdateMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Match ID is required")
		return
	}

	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.MatchService.UpdateMatch(ctx, id, &match); err != nil {
		switch err {
		case service.ErrMatchNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Match %s not found", id))
		default:
			switch err.Error() {
			case "opponent is required", "match date is required", "goals and conceded must not be negative":
				api.WriteBadRequest(w, err.Error())
				return
			}
			log.Printf("ERROR: Failed to update match %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to update match")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Match %s updated", id)})
}

// DeleteMatchHandler handles requests to remove a match and its performance
// records.
// DELETE /matches/{id}
func (ch *ClubAPIHandlers) DeleteMatchHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Match ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := ch.MatchService.DeleteMatch(ctx, id); err != nil {
		switch err {
		case service.ErrMatchNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Match %s not found", id))
		default:
			log.Printf("ERROR: Failed to delete match %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to delete match")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Match %s deleted", id)})
	log.Printf("INFO: Match %s deleted with its records.", id)
}

// ListMatchesHandler handles requests for matches, newest first. Supports
// ?season=, ?from=, ?to= to scope the list and ?limit= to truncate it.
// GET /matches
func (ch *ClubAPIHandlers) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		api.WriteBadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var matches []models.Match
	if raw := r.URL.Query().Get("limit"); raw != "" && scope.IsAll() {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil || limit < 1 {
			api.WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		matches, err = ch.MatchService.RecentMatches(ctx, limit)
	} else {
		matches, err = ch.MatchService.ListMatches(ctx, scope)
	}
	if err != nil {
		log.Printf("ERROR: Failed to list matches: %v", err)
		api.WriteInternalServerError(w, "Failed to list matches")
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}

	api.WriteJSON(w, http.StatusOK, matches)
}

// MatchRecordsHandler handles requests for a match's performance records.
// GET /matches/{id}/records
func (ch *ClubAPIHandlers) MatchRecordsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Match ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, err := ch.MatchService.MatchRecords(ctx, id)
	if err != nil {
		log.Printf("ERROR: Failed to load records for match %s: %v", id, err)
		api.WriteInternalServerError(w, "Failed to load match records")
		return
	}
	if records == nil {
		records = []models.MatchRecord{}
	}

	api.WriteJSON(w, http.StatusOK, records)
}

// ReplaceMatchRecordsHandler handles requests to replace a match's
// performance records wholesale.
// PUT /matches/{id}/records
func (ch *ClubAPIHandlers) ReplaceMatchRecordsHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		api.WriteBadRequest(w, "Match ID is required")
		return
	}

	var records []models.MatchRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ch.MatchService.ReplaceMatchRecords(ctx, id, records); err != nil {
		switch err {
		case service.ErrMatchNotFound:
			api.WriteNotFound(w, fmt.Sprintf("Match %s not found", id))
		default:
			if strings.Contains(err.Error(), "carries no performance data") {
				api.WriteBadRequest(w, err.Error())
				return
			}
			log.Printf("ERROR: Failed to replace records for match %s: %v", id, err)
			api.WriteInternalServerError(w, "Failed to replace match records")
		}
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Records replaced for match %s", id)})
}
