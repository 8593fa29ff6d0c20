package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinerh/personnel-backend/internal/domain/bank"
	"github.com/marinerh/personnel-backend/internal/domain/unit"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
	masterService "github.com/marinerh/personnel-backend/internal/service/master"
)

type MasterHandler interface {
	CreateUnit(w http.ResponseWriter, r *http.Request)
	ListUnits(w http.ResponseWriter, r *http.Request)
	UpdateUnit(w http.ResponseWriter, r *http.Request)
	DeleteUnit(w http.ResponseWriter, r *http.Request)
	CreateBankIdentity(w http.ResponseWriter, r *http.Request)
	ListBankIdentities(w http.ResponseWriter, r *http.Request)
	UpdateBankIdentity(w http.ResponseWriter, r *http.Request)
	DeleteBankIdentity(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	service *masterService.MasterService
}

func NewMasterHandler(service *masterService.MasterService) MasterHandler {
	return &MasterHandlerImpl{service: service}
}

type UnitView struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id,omitempty"`
	Code     string  `json:"code"`
	NameFr   string  `json:"name_fr"`
	NameAr   string  `json:"name_ar"`
}

func toUnitView(u unit.Unit) UnitView {
	return UnitView{
		ID:       u.ID,
		ParentID: u.ParentID,
		Code:     u.Code,
		NameFr:   u.NameFr,
		NameAr:   u.NameAr,
	}
}

type BankIdentityView struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	BankName   string `json:"bank_name"`
	AgencyName string `json:"agency_name,omitempty"`
	RIB        string `json:"rib"`
}

func toBankIdentityView(identity bank.Identity) BankIdentityView {
	return BankIdentityView{
		ID:         identity.ID,
		EmployeeID: identity.EmployeeID,
		BankName:   identity.BankName,
		AgencyName: identity.AgencyName,
		RIB:        identity.RIB,
	}
}

// CreateUnit implements MasterHandler.
func (m *MasterHandlerImpl) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req unit.CreateUnitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := m.service.CreateUnit(r.Context(), req)
	if err != nil {
		slog.Error("Create unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unit created", toUnitView(created))
}

// ListUnits implements MasterHandler.
func (m *MasterHandlerImpl) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := m.service.ListUnits(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]UnitView, 0, len(units))
	for _, u := range units {
		views = append(views, toUnitView(u))
	}
	response.Success(w, views)
}

// UpdateUnit implements MasterHandler.
func (m *MasterHandlerImpl) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	var req unit.UpdateUnitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update unit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := m.service.UpdateUnit(r.Context(), req)
	if err != nil {
		slog.Error("Update unit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit updated", toUnitView(updated))
}

// DeleteUnit implements MasterHandler.
func (m *MasterHandlerImpl) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	if err := m.service.DeleteUnit(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete unit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Unit deleted", nil)
}

// CreateBankIdentity implements MasterHandler.
func (m *MasterHandlerImpl) CreateBankIdentity(w http.ResponseWriter, r *http.Request) {
	var req bank.CreateIdentityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create bank identity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	created, err := m.service.CreateBankIdentity(r.Context(), req)
	if err != nil {
		slog.Error("Create bank identity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bank identity created", toBankIdentityView(created))
}

// ListBankIdentities implements MasterHandler.
func (m *MasterHandlerImpl) ListBankIdentities(w http.ResponseWriter, r *http.Request) {
	identities, err := m.service.ListBankIdentities(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]BankIdentityView, 0, len(identities))
	for _, identity := range identities {
		views = append(views, toBankIdentityView(identity))
	}
	response.Success(w, views)
}

// UpdateBankIdentity implements MasterHandler.
func (m *MasterHandlerImpl) UpdateBankIdentity(w http.ResponseWriter, r *http.Request) {
	var req bank.UpdateIdentityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update bank identity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := m.service.UpdateBankIdentity(r.Context(), req)
	if err != nil {
		slog.Error("Update bank identity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bank identity updated", toBankIdentityView(updated))
}

// DeleteBankIdentity implements MasterHandler.
func (m *MasterHandlerImpl) DeleteBankIdentity(w http.ResponseWriter, r *http.Request) {
	if err := m.service.DeleteBankIdentity(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete bank identity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bank identity deleted", nil)
}
