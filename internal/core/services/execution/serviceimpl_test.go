package execution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codecamp-2025.net/internal/config"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeRunner struct {
	raw *domain.RawRunResult
	err error

	gotSource  string
	gotStdin   string
	gotTimeout time.Duration
}

func (f *fakeRunner) Run(ctx context.Context, source string, stdin string, timeout time.Duration) (*domain.RawRunResult, error) {
	f.gotSource = source
	f.gotStdin = stdin
	f.gotTimeout = timeout
	return f.raw, f.err
}

func testConfig() *config.SandboxConfig {
	return &config.SandboxConfig{
		DefaultTimeout:  30 * time.Second,
		MaxTimeout:      60 * time.Second,
		TestCaseTimeout: 10 * time.Second,
	}
}

func TestExecuteSuccess(t *testing.T) {
	runner := &fakeRunner{raw: &domain.RawRunResult{ExitCode: 0, Output: "Hello, World!\n"}}
	svc := NewExecutionService(runner, testConfig(), nopLogger{})

	result, err := svc.Execute(context.Background(), &domain.ExecutionRequest{
		Source: `print("Hello, World!")`,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Hello, World!\n", result.Output)
	assert.Empty(t, result.Error)
	assert.Equal(t, 0, result.ExitCode)
	assert.NotEmpty(t, result.ExecutionID)
	assert.Equal(t, 30*time.Second, runner.gotTimeout)
}

func TestExecuteNonZeroExit(t *testing.T) {
	traceback := "Traceback (most recent call last):\nNameError: name 'x' is not defined\n"
	runner := &fakeRunner{raw: &domain.RawRunResult{ExitCode: 1, Output: traceback}}
	svc := NewExecutionService(runner, testConfig(), nopLogger{})

	result, err := svc.Execute(context.Background(), &domain.ExecutionRequest{Source: "print(x)"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, traceback, result.Output)
	assert.Equal(t, traceback, result.Error)
}

func TestExecuteTimeout(t *testing.T) {
	runner := &fakeRunner{raw: &domain.RawRunResult{ExitCode: domain.SentinelExitCode, TimedOut: true}}
	svc := NewExecutionService(runner, testConfig(), nopLogger{})

	result, err := svc.Execute(context.Background(), &domain.ExecutionRequest{
		Source:  "while True: pass",
		Timeout: 2 * time.Second,
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Empty(t, result.Output)
	assert.Equal(t, "Code execution timed out after 2 seconds", result.Error)
	assert.Equal(t, int64(2000), result.WallClockMs)
	assert.Equal(t, domain.SentinelExitCode, result.ExitCode)
}

func TestExecuteRuntimeUnavailable(t *testing.T) {
	runner := &fakeRunner{err: errs.RuntimeUnavailable}
	svc := NewExecutionService(runner, testConfig(), nopLogger{})

	result, err := svc.Execute(context.Background(), &domain.ExecutionRequest{Source: "print(1)"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.RuntimeUnavailable))
	assert.Nil(t, result)
}

func TestExecuteRunFailureFoldedIntoResult(t *testing.T) {
	runner := &fakeRunner{err: errors.New("container start failed: boom")}
	svc := NewExecutionService(runner, testConfig(), nopLogger{})

	result, err := svc.Execute(context.Background(), &domain.ExecutionRequest{Source: "print(1)"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Execution failed: container start failed: boom", result.Error)
	assert.Equal(t, domain.SentinelExitCode, result.ExitCode)
}

func TestClampTimeout(t *testing.T) {
	svc := NewExecutionService(&fakeRunner{}, testConfig(), nopLogger{})

	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"zero falls back to default", 0, 30 * time.Second},
		{"negative falls back to default", -time.Second, 30 * time.Second},
		{"sub-second raised to one second", 500 * time.Millisecond, time.Second},
		{"above max capped", 2 * time.Minute, 60 * time.Second},
		{"in range kept", 5 * time.Second, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.clampTimeout(tt.in))
		})
	}
}
