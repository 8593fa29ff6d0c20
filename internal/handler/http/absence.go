package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	absenceService "github.com/marinerh/personnel-backend/internal/service/absence"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetEndDate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	service *absenceService.Service
}

func NewAbsenceHandler(service *absenceService.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{service: service}
}

type AbsenceRecordView struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
	ReferenceStart string `json:"reference_start,omitempty"`
	ReferenceEnd   string `json:"reference_end,omitempty"`
	DurationDays   int    `json:"duration_days"`
}

func toAbsenceRecordView(rec absence.Record) AbsenceRecordView {
	view := AbsenceRecordView{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		StartDate:      dates.Format(rec.StartDate),
		ReferenceStart: rec.ReferenceStart,
		ReferenceEnd:   rec.ReferenceEnd,
		DurationDays:   rec.DurationDays,
	}
	if rec.EndDate != nil {
		view.EndDate = dates.Format(*rec.EndDate)
	}
	return view
}

// List implements AbsenceHandler.
func (a *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := a.service.List(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]AbsenceRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, toAbsenceRecordView(rec))
	}
	response.Success(w, views)
}

// Create implements AbsenceHandler.
func (a *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create absence record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	created, err := a.service.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create absence record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence record created", toAbsenceRecordView(created))
}

// Update implements AbsenceHandler.
func (a *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req absence.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update absence record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := a.service.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update absence record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence record updated", toAbsenceRecordView(updated))
}

// SetEndDate implements AbsenceHandler. The response carries the employee
// status resolved after the close so the client can update the header badge
// without a second round trip.
func (a *AbsenceHandlerImpl) SetEndDate(w http.ResponseWriter, r *http.Request) {
	var req absence.SetEndDateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set absence end date decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, status, err := a.service.SetEndDate(r.Context(), req)
	if err != nil {
		slog.Error("Set absence end date service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"record":          toAbsenceRecordView(updated),
		"employee_status": string(status),
	})
}

// Delete implements AbsenceHandler.
func (a *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete absence record service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence record deleted", nil)
}
