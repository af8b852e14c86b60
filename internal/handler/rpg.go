package handler

import (
	"net/http"

	"github.com/fitquest/FitQuest_Go/internal/domain"
	"github.com/fitquest/FitQuest_Go/internal/rpg"
)

// CreateCharacterRequest represents the request to create a character
type CreateCharacterRequest struct {
	UserID    int    `json:"userId" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	ClassName string `json:"className" validate:"required,characterclass"`
}

// GrantXPRequest carries an XP award for a character
type GrantXPRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// CreateQuestRequest represents the request to add a quest to the catalog
type CreateQuestRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Tier        string `json:"tier" validate:"required,questtier"`
}

// ClassesResponse lists the playable character classes
type ClassesResponse struct {
	Classes []string `json:"classes"`
}

// HandleCreateCharacter creates a level 1 character
// @Summary Create a character
// @Tags rpg
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character details"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ErrorResponse
// @Router /api/rpg/characters [post]
func HandleCreateCharacter(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		created, err := svc.CreateCharacter(r.Context(), domain.NewCharacter{
			UserID:    req.UserID,
			Name:      req.Name,
			ClassName: req.ClassName,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetCharacter returns a single character
// @Summary Get a character
// @Tags rpg
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/rpg/characters/{id} [get]
func HandleGetCharacter(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		found, err := svc.GetCharacter(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, found)
	}
}

// HandleGetUserCharacters lists a user's characters
// @Summary List a user's characters
// @Tags rpg
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} domain.Character
// @Router /api/rpg/users/{userId}/characters [get]
func HandleGetUserCharacters(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := URLParamInt(r, w, "userId")
		if !ok {
			return
		}

		characters, err := svc.GetUserCharacters(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, characters)
	}
}

// HandleGrantXP awards XP to a character and returns the updated state
// @Summary Grant XP to a character
// @Tags rpg
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body GrantXPRequest true "XP amount"
// @Success 200 {object} domain.Character
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/rpg/characters/{id}/xp [post]
func HandleGrantXP(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id")
		if !ok {
			return
		}

		var req GrantXPRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant XP"); err != nil {
			return
		}

		updated, err := svc.GrantXP(r.Context(), id, req.Amount)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleGetClasses returns the fixed set of playable classes
// @Summary List character classes
// @Tags rpg
// @Produce json
// @Success 200 {object} ClassesResponse
// @Router /api/rpg/classes [get]
func HandleGetClasses(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ClassesResponse{Classes: svc.Classes(r.Context())})
	}
}

// HandleListQuests returns the quest catalog
// @Summary List quests
// @Tags rpg
// @Produce json
// @Success 200 {array} domain.Quest
// @Router /api/rpg/quests [get]
func HandleListQuests(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quests, err := svc.ListQuests(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, quests)
	}
}

// HandleCreateQuest adds a quest to the catalog
// @Summary Create a quest
// @Tags rpg
// @Accept json
// @Produce json
// @Param request body CreateQuestRequest true "Quest details"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Router /api/rpg/quests [post]
func HandleCreateQuest(svc rpg.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
			return
		}

		created, err := svc.CreateQuest(r.Context(), domain.NewQuest{
			Title:       req.Title,
			Description: req.Description,
			Tier:        req.Tier,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}
