package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	"projgen/config"
	"projgen/model"
)

// waitDelay bounds how long Run waits for output pipes after the shell is killed,
// since a forked child may still hold them open.
const waitDelay = time.Second

// maxCommandTimeout caps the timeout a caller may ask for.
const maxCommandTimeout = time.Hour

func (t *Toolbox) runCommand(ctx context.Context, args Arguments) (model.ToolResult, error) {
	command := args.String("command")
	if strings.TrimSpace(command) == "" {
		return model.Failure("command must not be empty"), nil
	}

	timeout := requestedTimeout(args.Float("timeout", 0), t.commandTimeout)
	return t.execute(ctx, command, args.String("cwd"), timeout), nil
}

// requestedTimeout converts a timeout in seconds, falling back to def when secs
// is not positive and capping it at maxCommandTimeout.
func requestedTimeout(secs float64, def time.Duration) time.Duration {
	if !(secs > 0) {
		return def
	}
	if secs >= maxCommandTimeout.Seconds() {
		return maxCommandTimeout
	}
	return time.Duration(secs * float64(time.Second))
}

func (t *Toolbox) isNpmPackageInstalled(ctx context.Context, args Arguments) (model.ToolResult, error) {
	pkg := strings.TrimSpace(args.String("package_name"))
	if pkg == "" || strings.ContainsAny(pkg, " \t\n;&|$`<>\"'()\\") {
		return model.Failuref("Invalid package name: %q", pkg), nil
	}
	return t.execute(ctx, "npm list -g --depth=0 "+pkg, "", t.commandTimeout), nil
}

// execute runs command through the platform shell. Combined stdout and stderr is
// echoed to t.out as it arrives and returned trimmed as the result message.
func (t *Toolbox) execute(ctx context.Context, command, dir string, timeout time.Duration) model.ToolResult {
	fmt.Fprintf(t.out, "Running command: %s\n", command)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := shellCommand(ctx, command)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	var (
		buf bytes.Buffer
		wg  conc.WaitGroup
	)
	wg.Go(func() {
		_, _ = io.Copy(io.MultiWriter(&buf, t.out), pr)
	})

	start := time.Now()
	err := cmd.Run()
	_ = pw.Close()
	wg.Wait()

	output := strings.TrimSpace(buf.String())
	if config.Debug {
		config.DebugLog.Debug().
			Str("command", command).
			Str("cwd", dir).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("run_command")
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return model.Failure("Command timed out")
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if output == "" {
				return model.Failuref("Command exited with status %d", exitErr.ExitCode())
			}
			return model.Failure(output)
		}
		return model.Failure(err.Error())
	}
	return model.Success(output)
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
