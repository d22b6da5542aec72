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

type EmpireHandler struct {
	empireService *service.EmpireService
	policy        *security.Policy
}

func NewEmpireHandler(empireService *service.EmpireService, policy *security.Policy) *EmpireHandler {
	return &EmpireHandler{empireService: empireService, policy: policy}
}

func (h *EmpireHandler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireRole(h.policy, model.RoleWriter)).Post("/", h.create)
	r.With(middleware.RequireRole(h.policy, model.RoleReader)).Get("/{empireID}", h.get)
	r.With(middleware.RequireRole(h.policy, model.RoleEditor)).Put("/{empireID}", h.update)
	r.With(middleware.RequireRole(h.policy, model.RoleAdmin)).Delete("/{empireID}", h.delete)
}

func (h *EmpireHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.UpsertEmpireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	empire, err := h.empireService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, empire)
}

func (h *EmpireHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "empireID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid empire id")
		return
	}
	empire, err := h.empireService.Get(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, empire)
}

func (h *EmpireHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "empireID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid empire id")
		return
	}
	var req service.UpsertEmpireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	empire, err := h.empireService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, empire)
}

func (h *EmpireHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "empireID")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid empire id")
		return
	}
	if err := h.empireService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondNoContent(w)
}
