// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package capture

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"
)

// DockerSource captures by exec-ing the diagnostic command inside a
// running container, the same way `docker exec` does.
type DockerSource struct {
	cli *client.Client
	cmd []string
}

// NewDockerSource connects to the Docker daemon using the standard
// environment (DOCKER_HOST etc.) and will run cmd inside the target.
func NewDockerSource(cmd []string) (*DockerSource, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("connect docker daemon: %w", err)
	}
	return &DockerSource{cli: cli, cmd: cmd}, nil
}

// Close releases the daemon connection.
func (d *DockerSource) Close() error {
	return d.cli.Close()
}

// Capture runs the diagnostic command in the target container and
// returns its combined stdout+stderr plus the command's exit code.
func (d *DockerSource) Capture(ctx context.Context, target string) (Result, error) {
	exec, err := d.cli.ContainerExecCreate(ctx, target, types.ExecConfig{
		AttachStdout: true,
		AttachStderr: true,
		Cmd:          d.cmd,
	})
	if err != nil {
		if errdefs.IsNotFound(err) {
			return Result{}, fmt.Errorf("container %q not found: %w", target, err)
		}
		return Result{}, fmt.Errorf("exec create in %q: %w", target, err)
	}

	att, err := d.cli.ContainerExecAttach(ctx, exec.ID, types.ExecStartCheck{})
	if err != nil {
		return Result{}, fmt.Errorf("exec attach in %q: %w", target, err)
	}
	defer att.Close()

	// stdout and stderr arrive multiplexed on one stream; demux them
	// into a single combined buffer, matching the command-line view.
	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, att.Reader); err != nil {
		return Result{}, fmt.Errorf("read exec output from %q: %w", target, err)
	}

	insp, err := d.cli.ContainerExecInspect(ctx, exec.ID)
	if err != nil {
		return Result{}, fmt.Errorf("exec inspect in %q: %w", target, err)
	}
	if insp.Running {
		log.Printf("[CAPTURE] exec still running after output EOF in %q, exit code may be stale", target)
	}

	return Result{Output: buf.String(), ExitCode: insp.ExitCode}, nil
}
