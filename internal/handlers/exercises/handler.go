package exercises

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/sync/semaphore"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/services/exercise"
	"gitlab.com/codecamp-2025.net/internal/handlers"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

const defaultSubmissionLimit = 20

// ExerciseHandler handles exercise grading API requests
type ExerciseHandler struct {
	exerciseService exercise.IExerciseService
	logger          primary.Logger

	// sem is shared with ExecutionHandler: grading a submission or a
	// reference comparison launches sandbox containers and counts against
	// the same ceiling as free-form execution.
	sem *semaphore.Weighted
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(exerciseService exercise.IExerciseService, sem *semaphore.Weighted, logger primary.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger,
		sem:             sem,
	}
}

// RegisterRoutes registers the API routes for ExerciseHandler
func (h *ExerciseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/exercises/{exerciseId}/submit", h.Submit).Methods("POST")
	router.HandleFunc("/exercises/{exerciseId}/compare", h.Compare).Methods("POST")
	router.HandleFunc("/exercises/{exerciseId}/hints", h.GetHints).Methods("GET")
	router.HandleFunc("/submissions", h.GetSubmissions).Methods("GET")
}

// Submit handles submission grading requests
func (h *ExerciseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := h.exerciseID(w, r)
	if !ok {
		return
	}
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
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

	outcome, err := h.exerciseService.SubmitExercise(r.Context(), exerciseID, userID, req.Code)
	if err != nil {
		h.writeServiceError(w, "Failed to grade submission", err)
		return
	}

	resp := SubmitResponse{
		SubmissionID: outcome.Submission.ID,
		IsCorrect:    outcome.Submission.IsCorrect,
		Score:        outcome.Submission.Score,
		TotalTests:   outcome.Validation.TotalTests,
		PassedTests:  outcome.Validation.PassedTests,
		FailedTests:  outcome.Validation.FailedTests,
		TotalTimeMs:  outcome.Validation.TotalTimeMs,
		ErrorMessage: outcome.Submission.ErrorMessage,
		TestResults:  outcome.Validation.RedactedResults(),
	}
	handlers.ResponseWithJson(w, http.StatusOK, resp)
}

// Compare handles reference solution comparison requests
func (h *ExerciseHandler) Compare(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := h.exerciseID(w, r)
	if !ok {
		return
	}

	var req CompareRequest
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

	result, err := h.exerciseService.CompareWithSolution(r.Context(), exerciseID, req.Code)
	if err != nil {
		h.writeServiceError(w, "Failed to compare with solution", err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, result.Redacted())
}

// GetHints handles hint retrieval requests
func (h *ExerciseHandler) GetHints(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := h.exerciseID(w, r)
	if !ok {
		return
	}
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	maxHints := 0
	if raw := r.URL.Query().Get("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid max parameter", http.StatusBadRequest)
			return
		}
		maxHints = parsed
	}

	hints, err := h.exerciseService.GetHints(r.Context(), exerciseID, userID, maxHints)
	if err != nil {
		h.writeServiceError(w, "Failed to get hints", err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, HintsResponse{Hints: hints})
}

// GetSubmissions handles submission history requests
func (h *ExerciseHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var exerciseID *uuid.UUID
	if raw := r.URL.Query().Get("exercise_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Invalid exercise ID", http.StatusBadRequest)
			return
		}
		exerciseID = &parsed
	}

	limit := defaultSubmissionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	submissions, err := h.exerciseService.GetUserSubmissions(r.Context(), userID, exerciseID, limit)
	if err != nil {
		h.writeServiceError(w, "Failed to get submissions", err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, submissions)
}

func (h *ExerciseHandler) exerciseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["exerciseId"]
	exerciseID, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Error("Invalid exercise ID", "id", raw)
		http.Error(w, "Invalid exercise ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return exerciseID, true
}

func (h *ExerciseHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	payload, ok := handlers.AuthPayloadFromContext(r.Context())
	if !ok || payload.UserID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *ExerciseHandler) writeServiceError(w http.ResponseWriter, fallback string, err error) {
	switch {
	case errors.Is(err, errs.ExerciseNotFound):
		http.Error(w, "Exercise not found", http.StatusNotFound)
	case errors.Is(err, errs.NoTestCases):
		http.Error(w, "Exercise has no test cases", http.StatusBadRequest)
	case errors.Is(err, errs.NoReferenceSolution):
		http.Error(w, "Exercise has no reference solution", http.StatusBadRequest)
	case errors.Is(err, errs.RuntimeUnavailable):
		h.logger.Error("Execution runtime unavailable", "error", err)
		http.Error(w, "Execution runtime unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error(fallback, "error", err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
