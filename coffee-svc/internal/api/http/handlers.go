package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"coffeehouse/coffee-svc/internal/domain"
	"coffeehouse/coffee-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Sessions service.SessionServiceInterface
	logger   *zap.Logger
}

func NewHandler(catalog service.CatalogServiceInterface, sessions service.SessionServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Catalog:  catalog,
		Sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/{category}/coffees", h.getCategoryCoffees).Methods("GET")
	r.HandleFunc("/api/coffees/{id}", h.getCoffee).Methods("GET")
	r.HandleFunc("/api/options", h.getOptions).Methods("GET")

	r.HandleFunc("/api/coffees/{id}/sessions", h.openSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{sessionId}", h.closeSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{sessionId}/size", h.selectSize).Methods("PUT")
	r.HandleFunc("/api/sessions/{sessionId}/milk", h.selectMilk).Methods("PUT")
	r.HandleFunc("/api/sessions/{sessionId}/topping", h.selectTopping).Methods("PUT")
	r.HandleFunc("/api/sessions/{sessionId}/refresh", h.refreshSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}/submit", h.submitSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sessionId}/flash", h.getFlashes).Methods("GET")
	r.HandleFunc("/api/sessions/{sessionId}/checkout", h.getCheckout).Methods("GET")
}

type sessionView struct {
	SessionID string              `json:"session_id"`
	Item      *domain.CatalogItem `json:"item"`
	Selection domain.Selection    `json:"selection"`
	State     service.State       `json:"state"`
	Location  string              `json:"location,omitempty"`
	Back      string              `json:"back"`
}

type sizeOptionView struct {
	domain.SizeOption
	Surcharge float64 `json:"surcharge"`
}

func newSessionView(session *service.Session) sessionView {
	return sessionView{
		SessionID: session.ID,
		Item:      session.Customizer.Item(),
		Selection: session.Customizer.Selection(),
		State:     session.Customizer.State(),
		Location:  session.Location(),
		Back:      service.DashboardPath,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// parseID accepts only positive integers.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "coffee-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategoryCoffees(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(mux.Vars(r)["category"])
	items, err := h.Catalog.List(category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) getCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Coffee not found", http.StatusNotFound)
		return
	}

	item, err := h.Catalog.FetchCatalogItem(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Coffee not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	sizes := make([]sizeOptionView, 0, len(domain.Sizes))
	for _, size := range domain.Sizes {
		surcharge, _ := service.Surcharge(size)
		sizes = append(sizes, sizeOptionView{SizeOption: size, Surcharge: surcharge})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sizes":    sizes,
		"milks":    domain.Milks,
		"toppings": domain.Toppings,
	})
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Coffee not found", http.StatusNotFound)
		return
	}

	session, err := h.Sessions.Open(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Coffee not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to open session", zap.Int("item_id", id), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, newSessionView(session))
}

// lookupSession writes a 404 and returns nil when the session is unknown.
func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) *service.Session {
	session, err := h.Sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil
	}
	return session
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(session))
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.Close(mux.Vars(r)["sessionId"]) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectSize(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	size, ok := domain.FindSize(payload.Description)
	if !ok {
		http.Error(w, "Unknown size option", http.StatusBadRequest)
		return
	}

	session.Customizer.SelectSize(size)
	session.ClearLocation()
	respondJSON(w, http.StatusOK, newSessionView(session))
}

func (h *Handler) selectMilk(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}

	var payload struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	milk, ok := domain.FindMilk(payload.Type)
	if !ok {
		http.Error(w, "Unknown milk option", http.StatusBadRequest)
		return
	}

	session.Customizer.SelectMilk(milk)
	session.ClearLocation()
	respondJSON(w, http.StatusOK, newSessionView(session))
}

func (h *Handler) selectTopping(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}

	var payload struct {
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	topping, ok := domain.FindTopping(payload.Type)
	if !ok {
		http.Error(w, "Unknown topping option", http.StatusBadRequest)
		return
	}

	session.Customizer.SelectTopping(topping)
	session.ClearLocation()
	respondJSON(w, http.StatusOK, newSessionView(session))
}

func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}

	if err := session.Customizer.Refresh(r.Context()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Coffee not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respondJSON(w, http.StatusOK, newSessionView(session))
}

func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	session := h.lookupSession(w, r)
	if session == nil {
		return
	}

	result, err := session.Customizer.Submit(r.Context())
	if err != nil {
		h.logger.Error("submit failed", zap.String("session_id", session.ID), zap.Error(err))
		http.Error(w, "Failed to place order", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) getFlashes(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Sessions.Flashes(r.Context(), mux.Vars(r)["sessionId"])
	if errors.Is(err, service.ErrSessionNotFound) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	params, err := h.Sessions.Checkout(r.Context(), mux.Vars(r)["sessionId"])
	if errors.Is(err, service.ErrNothingToCheckout) {
		http.Error(w, "Nothing to check out", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, params)
}
