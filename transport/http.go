package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	contactapp "github.com/muhammadheryan/contact-store/application/contact"
	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/model"
	"github.com/muhammadheryan/contact-store/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ContactApp contactapp.ContactApp
}

func NewTransport(ContactApp contactapp.ContactApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ContactApp: ContactApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	api := mux.PathPrefix("/api/contacts").Subrouter()
	api.HandleFunc("", rh.ListContacts).Methods(http.MethodGet)
	api.HandleFunc("", rh.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/{id}", rh.GetContact).Methods(http.MethodGet)
	api.HandleFunc("/{id}", rh.UpdateContact).Methods(http.MethodPut)
	api.HandleFunc("/{id}", rh.PatchContact).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", rh.DeleteContact).Methods(http.MethodDelete)

	mux.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Route not found"})
	})
	mux.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	// middleware, outermost first
	return chain(mux,
		RequestIDMiddleware(),
		LoggingMiddleware(),
		RecoveryMiddleware(),
		CORSMiddleware(),
	)
}

func chain(h http.Handler, middlewares ...mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Health handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

// ListContacts handler
// @Summary List contacts
// @Description Search, sort and paginate contacts
// @Tags Contacts
// @Produce json
// @Param search query string false "Substring matched against name, email or phone"
// @Param sortBy query string false "name, email, phone or created_at" default(name)
// @Param order query string false "asc or desc" default(asc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} model.ContactListResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &model.ContactListQuery{
		Search: q.Get("search"),
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
		Page:   atoiOrZero(q.Get("page")),
		Limit:  atoiOrZero(q.Get("limit")),
	}

	res, err := s.ContactApp.ListContacts(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, res)
}

// GetContact handler
// @Summary Get contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 404 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts/{id} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.ContactApp.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, res)
}

// CreateContact handler
// @Summary Create contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact"
// @Success 201 {object} model.Contact
// @Failure 400 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.CreateContact(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, res)
}

// UpdateContact handler
// @Summary Replace contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body model.ContactRequest true "Contact"
// @Success 200 {object} model.Contact
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts/{id} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	var req model.ContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.UpdateContact(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, res)
}

// PatchContact handler
// @Summary Partially update contact
// @Description Only name, email and phone are applied; other keys are ignored
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} model.Contact
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts/{id} [patch]
func (s *RestHandler) PatchContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	updates := map[string]any{}
	if err := decodeBody(r, &updates); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.PatchContact(r.Context(), id, updates)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, res)
}

// DeleteContact handler
// @Summary Delete contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.DeleteContactResponse
// @Failure 404 {object} transport.ErrorResponse
// @Failure 500 {object} transport.ErrorResponse
// @Router /api/contacts/{id} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	res, err := s.ContactApp.DeleteContact(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, res)
}

// contactID parses the {id} path variable. Ids that are not positive
// integers cannot exist.
func contactID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
