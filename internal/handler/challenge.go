package handler

import (
	"net/http"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/challenge"
	"github.com/fitquest/FitQuest_Go/internal/domain"
)

// CreateChallengeRequest represents the request to create a community challenge
type CreateChallengeRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Goal        string    `json:"goal"`
	Reward      string    `json:"reward"`
	IsFeatured  bool      `json:"isFeatured"`
}

// JoinChallengeRequest identifies the joining user
type JoinChallengeRequest struct {
	UserID int `json:"userId" validate:"required,gt=0"`
}

// HandleListChallenges returns all challenges
// @Summary List challenges
// @Tags challenges
// @Produce json
// @Success 200 {array} domain.Challenge
// @Router /api/challenges [get]
func HandleListChallenges(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenges, err := svc.GetChallenges(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, challenges)
	}
}

// HandleGetChallenge returns a single challenge
// @Summary Get a challenge
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} domain.Challenge
// @Failure 404 {object} ErrorResponse
// @Router /api/challenges/{id} [get]
func HandleGetChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.GetChallenge(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, found)
	}
}

// HandleCreateChallenge creates a challenge
// @Summary Create a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge details"
// @Success 201 {object} domain.Challenge
// @Failure 400 {object} ErrorResponse
// @Router /api/challenges [post]
func HandleCreateChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateChallengeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create challenge"); err != nil {
			return
		}

		created, err := svc.CreateChallenge(r.Context(), domain.NewChallenge{
			Name:        req.Name,
			Description: req.Description,
			Difficulty:  req.Difficulty,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Goal:        req.Goal,
			Reward:      req.Reward,
			IsFeatured:  req.IsFeatured,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleJoinChallenge adds a user to a challenge
// @Summary Join a challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param request body JoinChallengeRequest true "Joining user"
// @Success 201 {object} domain.ChallengeParticipant
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/challenges/{id}/join [post]
func HandleJoinChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req JoinChallengeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Join challenge"); err != nil {
			return
		}

		participant, err := svc.JoinChallenge(r.Context(), id, req.UserID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, participant)
	}
}

// HandleLeaveChallenge removes a user from a challenge
// @Summary Leave a challenge
// @Tags challenges
// @Param id path int true "Challenge ID"
// @Param userId query int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/challenges/{id}/leave [delete]
func HandleLeaveChallenge(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}
		userID, ok := QueryParamInt(r, w, "userId")
		if !ok {
			return
		}

		if err := svc.LeaveChallenge(r.Context(), id, userID); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGetChallengeParticipants lists a challenge's participants
// @Summary List challenge participants
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {array} domain.ChallengeParticipant
// @Failure 404 {object} ErrorResponse
// @Router /api/challenges/{id}/participants [get]
func HandleGetChallengeParticipants(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		participants, err := svc.GetChallengeParticipants(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, participants)
	}
}

// HandleGetUserChallenges lists the challenges a user has joined
// @Summary List a user's challenges
// @Tags challenges
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.Challenge
// @Router /api/users/{id}/challenges [get]
func HandleGetUserChallenges(svc challenge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		challenges, err := svc.GetUserChallenges(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, challenges)
	}
}
