package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	leaveService "github.com/marinerh/personnel-backend/internal/service/leave"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	service *leaveService.Service
}

func NewLeaveHandler(service *leaveService.Service) LeaveHandler {
	return &LeaveHandlerImpl{service: service}
}

type LeaveRecordView struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	DurationDays int    `json:"duration_days"`
	Status       string `json:"status"`
}

func toLeaveRecordView(rec leave.Record) LeaveRecordView {
	view := LeaveRecordView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Type:         string(rec.Type),
		StartDate:    dates.Format(rec.StartDate),
		DurationDays: rec.DurationDays,
		Status:       string(rec.Status),
	}
	if rec.EndDate != nil {
		view.EndDate = dates.Format(*rec.EndDate)
	}
	return view
}

type LeaveTypeView struct {
	Code      string `json:"code"`
	LabelFr   string `json:"label_fr"`
	LabelAr   string `json:"label_ar"`
	QuotaDays int    `json:"quota_days"`
	Color     string `json:"color"`
}

// ListTypes implements LeaveHandler. The catalog is already filtered for
// the employee's gender at the repository.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := l.service.ListTypes(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]LeaveTypeView, 0, len(types))
	for _, info := range types {
		views = append(views, LeaveTypeView{
			Code:      string(info.Code),
			LabelFr:   info.LabelFr,
			LabelAr:   info.LabelAr,
			QuotaDays: info.QuotaDays,
			Color:     info.Color,
		})
	}
	response.Success(w, views)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := l.service.List(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]LeaveRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, toLeaveRecordView(rec))
	}
	response.Success(w, views)
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	created, err := l.service.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create leave record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record created", toLeaveRecordView(created))
}

// Update implements LeaveHandler.
func (l *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := l.service.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update leave record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record updated", toLeaveRecordView(updated))
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := l.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete leave record service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave record deleted", nil)
}

// Balance implements LeaveHandler. Defaults: current year, annual type.
func (l *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	typeCode := r.URL.Query().Get("type")
	if typeCode == "" {
		typeCode = string(leave.TypeAnnual)
	}

	balance, err := l.service.Balance(r.Context(), chi.URLParam(r, "employeeID"), year, typeCode)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}
