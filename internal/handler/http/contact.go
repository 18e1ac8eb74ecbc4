package http

import (
	"encoding/json"
	"net/http"

	"github.com/das-hq/duty-backend-go/internal/domain/contact"
	"github.com/das-hq/duty-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ContactHandler interface {
	UpsertContact(w http.ResponseWriter, r *http.Request)
	GetContact(w http.ResponseWriter, r *http.Request)
	ListContacts(w http.ResponseWriter, r *http.Request)
}

type contactHandlerImpl struct {
	contactService contact.ContactService
}

func NewContactHandler(contactService contact.ContactService) ContactHandler {
	return &contactHandlerImpl{contactService: contactService}
}

// UpsertContact implements ContactHandler
func (h *contactHandlerImpl) UpsertContact(w http.ResponseWriter, r *http.Request) {
	var req contact.UpsertContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.contactService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetContact implements ContactHandler
func (h *contactHandlerImpl) GetContact(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.contactService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListContacts implements ContactHandler
func (h *contactHandlerImpl) ListContacts(w http.ResponseWriter, r *http.Request) {
	var filter contact.ContactFilter
	if factory := r.URL.Query().Get("factory"); factory != "" {
		filter.Factory = &factory
	}
	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	results, err := h.contactService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
