package docker

import (
	"context"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

// StartSweeper launches the background cleanup loop: a best-effort periodic
// removal of exited sandbox containers left behind by crashed runs. It is a
// maintenance task only and never touches live requests.
func (r *SandboxRunner) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep(ctx)
			}
		}
	}()
}

func (r *SandboxRunner) sweep(ctx context.Context) {
	if !r.initDone.Load() {
		// Nothing has executed yet, so nothing can have leaked.
		return
	}

	containers, err := r.cli.ContainerList(ctx, container.ListOptions{
		All: true,
		Filters: filters.NewArgs(
			filters.Arg("status", "exited"),
			filters.Arg("label", r.cfg.ContainerLabel),
		),
	})
	if err != nil {
		r.logger.Warn("Sandbox sweep failed to list containers", "error", err)
		return
	}

	for _, c := range containers {
		if err := r.cli.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true}); err != nil {
			r.logger.Warn("Sandbox sweep failed to remove container", "containerId", c.ID, "error", err)
			continue
		}
		r.logger.Debug("Swept leftover sandbox container", "containerId", c.ID)
	}
}
