package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeExecutionService struct {
	result *domain.ExecutionResult
	err    error
}

func (f *fakeExecutionService) Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	return f.result, f.err
}

func newRouter(svc *fakeExecutionService) *mux.Router {
	router := mux.NewRouter()
	NewExecutionHandler(svc, semaphore.NewWeighted(2), nopLogger{}).RegisterRoutes(router)
	return router
}

func postExecute(t *testing.T, router *mux.Router, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExecuteEndpointSuccess(t *testing.T) {
	svc := &fakeExecutionService{result: &domain.ExecutionResult{
		ExecutionID: "e-1",
		Success:     true,
		Output:      "Hello, World!\n",
		ExitCode:    0,
		WallClockMs: 12,
	}}

	rec := postExecute(t, newRouter(svc), ExecuteRequest{Code: `print("Hello, World!")`})

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.ExecutionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "Hello, World!\n", result.Output)
}

func TestExecuteEndpointMissingCode(t *testing.T) {
	rec := postExecute(t, newRouter(&fakeExecutionService{}), ExecuteRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteEndpointInvalidBody(t *testing.T) {
	router := newRouter(&fakeExecutionService{})

	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteEndpointRuntimeUnavailable(t *testing.T) {
	svc := &fakeExecutionService{err: errs.RuntimeUnavailable}

	rec := postExecute(t, newRouter(svc), ExecuteRequest{Code: "print(1)"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
