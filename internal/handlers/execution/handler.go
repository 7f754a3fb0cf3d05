package execution

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/semaphore"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/services/execution"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

// ExecutionHandler handles free-form code execution requests
type ExecutionHandler struct {
	executionService execution.IExecutionService
	logger           primary.Logger

	// sem caps how many executions run at once across all routes that
	// launch sandbox containers; the same instance guards exercise
	// grading. Callers over the ceiling wait until a slot frees or their
	// request context is done.
	sem *semaphore.Weighted
}

// NewExecutionHandler creates a new execution handler
func NewExecutionHandler(executionService execution.IExecutionService, sem *semaphore.Weighted, logger primary.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		executionService: executionService,
		logger:           logger,
		sem:              sem,
	}
}

// RegisterRoutes registers the API routes for ExecutionHandler
func (h *ExecutionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/execute", h.Execute).Methods("POST")
}

// Execute handles code execution requests
func (h *ExecutionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Code == "" {
		http.Error(w, "Code is required", http.StatusBadRequest)
		return
	}

	if err := h.sem.Acquire(r.Context(), 1); err != nil {
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
		return
	}
	defer h.sem.Release(1)

	result, err := h.executionService.Execute(r.Context(), &domain.ExecutionRequest{
		Source:  req.Code,
		Stdin:   req.Stdin,
		Timeout: time.Duration(req.Timeout) * time.Second,
	})
	if err != nil {
		if errors.Is(err, errs.RuntimeUnavailable) {
			h.logger.Error("Execution runtime unavailable", "error", err)
			http.Error(w, "Execution runtime unavailable", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("Failed to execute code", "error", err)
		http.Error(w, "Failed to execute code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
