package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/presence-analyzer/presence-analyzer/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	UserId int    `json:"user_id"`
	Name   string `json:"name"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// GetAvailableUsers godoc
// @Summary List users
// @Description List every user present in the presence data
// @Tags User
// @Produce json
// @Success 200 {array} UserDTO
// @Router /api/v1/users [get]
func (h *Handler) GetAvailableUsers(w http.ResponseWriter, r *http.Request) {
	log.Trace("Listing users")

	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		rest.WriteError(w, http.StatusServiceUnavailable, "Presence data unavailable", err.Error())
		return
	}

	usersDTO := make([]UserDTO, 0, len(users))
	for _, u := range users {
		usersDTO = append(usersDTO, userToDTO(u))
	}
	rest.WriteJSON(w, usersDTO)
}

// GetUser godoc
// @Summary Get user
// @Tags User
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} UserDTO
// @Failure 404 {object} rest.ErrorResponse "User not found"
// @Router /api/v1/users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid user id", "userId must be an integer")
		return
	}

	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			rest.WriteError(w, http.StatusNotFound, "User not found", "")
			return
		}
		log.Errorf("failed to get user: %v", err)
		rest.WriteError(w, http.StatusServiceUnavailable, "Presence data unavailable", err.Error())
		return
	}
	rest.WriteJSON(w, userToDTO(u))
}

func userToDTO(u User) UserDTO {
	return UserDTO{UserId: u.Id, Name: u.Name}
}
