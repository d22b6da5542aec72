package handler

import (
	"encoding/json"
	"net/http"

	"galaxy_api/internal/api/middleware"
	"galaxy_api/internal/app/service"
	"galaxy_api/internal/common"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type LocationHandler struct {
	locationService *service.LocationService
	policy          *security.Policy
}

func NewLocationHandler(locationService *service.LocationService, policy *security.Policy) *LocationHandler {
	return &LocationHandler{locationService: locationService, policy: policy}
}

// Role matrix: create needs WRITER, read needs READER, update needs EDITOR,
// delete needs ADMIN.
func (h *LocationHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(h.policy, model.RoleWriter)).Post("/", h.create)
	r.With(middleware.RequireRole(h.policy, model.RoleReader)).Get("/{locationID}", h.get)
	r.With(middleware.RequireRole(h.policy, model.RoleEditor)).Put("/{locationID}", h.update)
	r.With(middleware.RequireRole(h.policy, model.RoleAdmin)).Delete("/{locationID}", h.delete)
}

func (h *LocationHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.UpsertLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	location, err := h.locationService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, location)
}

func (h *LocationHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "locationID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid location id")
		return
	}
	location, err := h.locationService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, location)
}

func (h *LocationHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "locationID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid location id")
		return
	}
	var req service.UpsertLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	location, err := h.locationService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, location)
}

func (h *LocationHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "locationID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid location id")
		return
	}
	if err := h.locationService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondNoContent(w)
}
