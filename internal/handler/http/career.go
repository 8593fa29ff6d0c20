package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	careerService "github.com/marinerh/personnel-backend/internal/service/career"
)

type CareerHandler interface {
	Hierarchy(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// CareerHandlerImpl serves one career track; the router mounts one instance
// for grades and one for functions.
type CareerHandlerImpl struct {
	service *careerService.Service
}

func NewCareerHandler(service *careerService.Service) CareerHandler {
	return &CareerHandlerImpl{service: service}
}

type CareerRecordView struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Rank         string `json:"rank"`
	ObtainedDate string `json:"obtained_date"`
	EndDate      string `json:"end_date,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

func toCareerRecordView(rec career.Record) CareerRecordView {
	view := CareerRecordView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Rank:         rec.Rank,
		ObtainedDate: dates.Format(rec.ObtainedDate),
		Reference:    rec.Reference,
	}
	if rec.EndDate != nil {
		view.EndDate = dates.Format(*rec.EndDate)
	}
	return view
}

// Hierarchy implements CareerHandler. Lowest rank first.
func (c *CareerHandlerImpl) Hierarchy(w http.ResponseWriter, r *http.Request) {
	response.Success(w, []string(c.service.Hierarchy()))
}

// List implements CareerHandler.
func (c *CareerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := c.service.List(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]CareerRecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, toCareerRecordView(rec))
	}
	response.Success(w, views)
}

// Create implements CareerHandler.
func (c *CareerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req career.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create career record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	created, err := c.service.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create career record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Career record created", toCareerRecordView(created))
}

// Update implements CareerHandler.
func (c *CareerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req career.UpdateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update career record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := c.service.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update career record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Career record updated", toCareerRecordView(updated))
}

// Delete implements CareerHandler.
func (c *CareerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete career record service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Career record deleted", nil)
}
