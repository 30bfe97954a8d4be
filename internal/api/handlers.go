package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mpattadkal/baxi/internal/service"
	"github.com/mpattadkal/baxi/logger"
)

// messageResponse wraps a payload under the "message" key.
type messageResponse struct {
	Message any `json:"message"`
}

// itemResponse echoes the path parameter and optional query string.
// Q is a pointer so an absent query renders as JSON null.
type itemResponse struct {
	ItemID int     `json:"item_id"`
	Q      *string `json:"q"`
}

// Handlers holds the dependencies shared by the HTTP handlers.
type Handlers struct {
	log *logger.Logger
}

// NewHandlers creates the handler set backed by the given logger.
func NewHandlers(log *logger.Logger) *Handlers {
	return &Handlers{log: log}
}

// Root handles GET / with a greeting.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.log.Info("root endpoint hit",
		logger.String("trace_id", GetTraceID(r.Context())))
	RespondWithJSON(w, http.StatusOK, messageResponse{Message: "Hello, World!"})
}

// Animal handles GET /Animal and returns the resident animal.
func (h *Handlers) Animal(w http.ResponseWriter, r *http.Request) {
	animal := service.NewAnimal("Simba", "Lion")
	h.log.Debug("animal requested",
		logger.String("trace_id", GetTraceID(r.Context())),
		logger.String("sound", animal.MakeSound()))
	RespondWithJSON(w, http.StatusOK, messageResponse{Message: animal})
}

// Item handles GET /items/{item_id}. The path segment must parse as an
// integer; otherwise the request is rejected as unprocessable.
func (h *Handlers) Item(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "item_id")
	itemID, err := strconv.Atoi(raw)
	if err != nil {
		h.log.Warn("invalid item id",
			logger.String("trace_id", GetTraceID(r.Context())),
			logger.String("item_id", raw))
		RespondWithError(w, http.StatusUnprocessableEntity, "item_id must be an integer")
		return
	}

	resp := itemResponse{ItemID: itemID}
	if q := r.URL.Query().Get("q"); q != "" {
		resp.Q = &q
	}
	RespondWithJSON(w, http.StatusOK, resp)
}
