package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/handler/http/response"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	employeeService "github.com/marinerh/personnel-backend/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	service *employeeService.Service
}

func NewEmployeeHandler(service *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{service: service}
}

// EmployeeView is the wire shape of an employee. Dates travel as
// YYYY-MM-DD strings and the decimal base pay as its string form.
type EmployeeView struct {
	ID         string  `json:"id"`
	Matricule  string  `json:"matricule"`
	FullNameFr string  `json:"full_name_fr"`
	FullNameAr string  `json:"full_name_ar"`
	Gender     string  `json:"gender"`
	Status     string  `json:"status"`
	UnitID     *string `json:"unit_id,omitempty"`
	HireDate   string  `json:"hire_date"`
	BasePay    *string `json:"base_pay,omitempty"`
	Locale     string  `json:"locale"`
}

func toEmployeeView(emp employee.Employee) EmployeeView {
	view := EmployeeView{
		ID:         emp.ID,
		Matricule:  emp.Matricule,
		FullNameFr: emp.FullNameFr,
		FullNameAr: emp.FullNameAr,
		Gender:     string(emp.Gender),
		Status:     string(emp.Status),
		UnitID:     emp.UnitID,
		HireDate:   dates.Format(emp.HireDate),
		Locale:     string(emp.Locale),
	}
	if emp.BasePay != nil {
		basePay := emp.BasePay.String()
		view.BasePay = &basePay
	}
	return view
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.service.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", toEmployeeView(created))
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{Page: 1, Limit: 20}

	q := r.URL.Query()
	if v := q.Get("unit_id"); v != "" {
		filter.UnitID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	employees, total, err := e.service.List(r.Context(), filter)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	views := make([]EmployeeView, 0, len(employees))
	for _, emp := range employees {
		views = append(views, toEmployeeView(emp))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, views, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetByID implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	emp, err := e.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toEmployeeView(emp))
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := e.service.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", toEmployeeView(updated))
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := e.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Status implements EmployeeHandler. It resolves the live aggregate status
// from the record sets without touching the stored value.
func (e *EmployeeHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resolved, err := e.service.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": string(resolved)})
}
