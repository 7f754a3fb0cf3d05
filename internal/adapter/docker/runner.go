// package docker wraps the Docker engine as the sandbox runtime: one fresh,
// resource-bounded container per run, torn down afterwards.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-units"

	"gitlab.com/codecamp-2025.net/internal/config"
	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

const (
	sandboxWorkDir = "/sandbox"
	sandboxUser    = "nobody"
	pidsLimit      = int64(64)
)

var _ secondary.CodeRunner = (*SandboxRunner)(nil)

// SandboxRunner implements the CodeRunner port with the Docker SDK. The
// client and base image are initialized lazily on first use; the sync.Once
// keeps concurrent first requests from racing the image pull.
type SandboxRunner struct {
	cfg    *config.SandboxConfig
	logger primary.Logger

	initOnce sync.Once
	initDone atomic.Bool
	initErr  error
	cli      *client.Client

	memoryBytes int64
}

// NewSandboxRunner creates a new Docker-backed sandbox runner
func NewSandboxRunner(cfg *config.SandboxConfig, logger primary.Logger) *SandboxRunner {
	return &SandboxRunner{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes source inside one fresh container and reports the raw
// outcome. A returned error is always a runtime-level failure; program
// failures and timeouts come back inside the RawRunResult.
func (r *SandboxRunner) Run(ctx context.Context, source string, stdin string, timeout time.Duration) (*domain.RawRunResult, error) {
	if err := r.ensureInit(ctx); err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "codecamp-run-")
	if err != nil {
		return nil, fmt.Errorf("create run workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	cmd, mounts, err := stageInputs(workDir, source, stdin)
	if err != nil {
		return nil, err
	}

	containerID, err := r.createContainer(ctx, cmd, mounts)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Removal runs on a background context so a fired deadline cannot
		// leave the container behind.
		if err := r.cli.ContainerRemove(context.Background(), containerID, container.RemoveOptions{Force: true}); err != nil {
			r.logger.Warn("Failed to remove sandbox container", "containerId", containerID, "error", err)
		}
	}()

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := r.cli.ContainerStart(execCtx, containerID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("container start failed: %w", err)
	}

	waitCh, errCh := r.cli.ContainerWait(execCtx, containerID, container.WaitConditionNotRunning)

	select {
	case <-execCtx.Done():
		// Untrusted code gets no polite signal: hard kill either way.
		if killErr := r.cli.ContainerKill(context.Background(), containerID, "SIGKILL"); killErr != nil {
			r.logger.Warn("Failed to kill interrupted container", "containerId", containerID, "error", killErr)
		}
		if !deadlineExceeded(execCtx) {
			// The parent context ended (client gone, shutdown); that is a
			// cancelled run, not a timed out one.
			return nil, fmt.Errorf("execution cancelled: %w", execCtx.Err())
		}
		return &domain.RawRunResult{
			ExitCode: domain.SentinelExitCode,
			TimedOut: true,
		}, nil

	case err := <-errCh:
		return nil, fmt.Errorf("container wait failed: %w", err)

	case resp := <-waitCh:
		output := r.collectOutput(containerID)
		return &domain.RawRunResult{
			ExitCode: int(resp.StatusCode),
			Output:   output,
		}, nil
	}
}

// deadlineExceeded reports whether ctx ended because its own deadline
// fired, as opposed to cancellation inherited from the parent.
func deadlineExceeded(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// ensureInit builds the Docker client and makes sure the base image is
// present, exactly once per process.
func (r *SandboxRunner) ensureInit(ctx context.Context) error {
	r.initOnce.Do(func() {
		memBytes, err := units.RAMInBytes(r.cfg.MemoryLimit)
		if err != nil {
			r.initErr = fmt.Errorf("%w: bad memory limit %q: %v", errs.RuntimeUnavailable, r.cfg.MemoryLimit, err)
			return
		}
		r.memoryBytes = memBytes

		cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			r.initErr = fmt.Errorf("%w: docker client init failed: %v", errs.RuntimeUnavailable, err)
			return
		}

		if _, err := cli.Ping(ctx); err != nil {
			r.initErr = fmt.Errorf("%w: docker daemon unreachable: %v", errs.RuntimeUnavailable, err)
			return
		}

		if _, _, err := cli.ImageInspectWithRaw(ctx, r.cfg.Image); err != nil {
			r.logger.Info("Pulling sandbox image", "image", r.cfg.Image)
			rc, pullErr := cli.ImagePull(ctx, r.cfg.Image, image.PullOptions{})
			if pullErr != nil {
				r.initErr = fmt.Errorf("%w: pull image %s: %v", errs.RuntimeUnavailable, r.cfg.Image, pullErr)
				return
			}
			defer rc.Close()
			_, _ = io.Copy(io.Discard, rc)
		}

		r.cli = cli
		r.initDone.Store(true)
		r.logger.Info("Sandbox runtime initialized", "image", r.cfg.Image)
	})

	return r.initErr
}

func (r *SandboxRunner) createContainer(ctx context.Context, cmd []string, mounts []mount.Mount) (string, error) {
	securityOpt := []string{}
	if r.cfg.NoNewPrivileges {
		securityOpt = append(securityOpt, "no-new-privileges:true")
	}

	networkMode := container.NetworkMode("bridge")
	if r.cfg.NetworkDisabled {
		networkMode = "none"
	}

	pids := pidsLimit
	hostCfg := &container.HostConfig{
		ReadonlyRootfs: r.cfg.ReadOnlyRootFS,
		SecurityOpt:    securityOpt,
		CapDrop:        []string{"ALL"},
		NetworkMode:    networkMode,
		Mounts:         mounts,
		Tmpfs:          map[string]string{"/tmp": "rw,noexec,nosuid,size=16m"},
		Resources: container.Resources{
			Memory:     r.memoryBytes,
			MemorySwap: r.memoryBytes,
			NanoCPUs:   int64(r.cfg.CPULimit * 1_000_000_000),
			PidsLimit:  &pids,
		},
	}

	created, err := r.cli.ContainerCreate(ctx, &container.Config{
		Image:           r.cfg.Image,
		Cmd:             cmd,
		WorkingDir:      sandboxWorkDir,
		User:            sandboxUser,
		NetworkDisabled: r.cfg.NetworkDisabled,
		Labels:          map[string]string{r.cfg.ContainerLabel: "1"},
	}, hostCfg, &network.NetworkingConfig{}, nil, "")
	if err != nil {
		return "", fmt.Errorf("container create failed: %w", err)
	}

	return created.ID, nil
}

// collectOutput reads the container's combined stdout+stderr stream, capped
// at the configured output ceiling. Read failures degrade to empty output.
func (r *SandboxRunner) collectOutput(containerID string) string {
	rc, err := r.cli.ContainerLogs(context.Background(), containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		r.logger.Warn("Failed to read container logs", "containerId", containerID, "error", err)
		return ""
	}
	defer rc.Close()

	var combined bytes.Buffer
	lw := &limitedWriter{w: &combined, limit: r.cfg.MaxOutputBytes}
	if _, err := stdcopy.StdCopy(lw, lw, rc); err != nil {
		r.logger.Warn("Failed to demux container logs", "containerId", containerID, "error", err)
	}
	return combined.String()
}

// stageInputs writes source (and stdin, when present) into the run workspace
// and returns the container command plus read-only bind mounts.
func stageInputs(workDir, source, stdin string) ([]string, []mount.Mount, error) {
	codePath := filepath.Join(workDir, "code.py")
	if err := os.WriteFile(codePath, []byte(source), 0o644); err != nil {
		return nil, nil, fmt.Errorf("write source file: %w", err)
	}

	mounts := []mount.Mount{
		{
			Type:     mount.TypeBind,
			Source:   codePath,
			Target:   sandboxWorkDir + "/code.py",
			ReadOnly: true,
		},
	}
	cmd := []string{"python", sandboxWorkDir + "/code.py"}

	if stdin != "" {
		inputPath := filepath.Join(workDir, "input.txt")
		if err := os.WriteFile(inputPath, []byte(stdin), 0o644); err != nil {
			return nil, nil, fmt.Errorf("write input file: %w", err)
		}
		mounts = append(mounts, mount.Mount{
			Type:     mount.TypeBind,
			Source:   inputPath,
			Target:   sandboxWorkDir + "/input.txt",
			ReadOnly: true,
		})
		cmd = []string{"sh", "-c", fmt.Sprintf("python %s/code.py < %s/input.txt", sandboxWorkDir, sandboxWorkDir)}
	}

	return cmd, mounts, nil
}

type limitedWriter struct {
	w     io.Writer
	limit int64
	n     int64
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	if lw.limit > 0 && lw.n >= lw.limit {
		// Swallow the rest; callers still see the full length so StdCopy
		// keeps draining the stream.
		return len(p), nil
	}
	remaining := p
	if lw.limit > 0 && lw.n+int64(len(p)) > lw.limit {
		remaining = p[:lw.limit-lw.n]
	}
	n, err := lw.w.Write(remaining)
	lw.n += int64(n)
	if err != nil {
		return n, err
	}
	return len(p), nil
}
