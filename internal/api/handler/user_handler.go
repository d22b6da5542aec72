package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"galaxy_api/internal/api/middleware"
	"galaxy_api/internal/app/service"
	"galaxy_api/internal/common"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
	policy      *security.Policy
}

func NewUserHandler(userService *service.UserService, policy *security.Policy) *UserHandler {
	return &UserHandler{userService: userService, policy: policy}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.create) // public registration
	r.With(middleware.RequireRole(h.policy, model.RoleReader)).Get("/{userID}", h.get)
	r.With(middleware.RequireRole(h.policy, model.RoleEditor)).Put("/{userID}", h.update)
	r.With(middleware.RequireRole(h.policy, model.RoleAdmin)).Delete("/{userID}", h.delete)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, common.ErrBadRequest
	}
	return id, nil
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	user, err := h.userService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req service.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	user, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "userID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.userService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondNoContent(w)
}
