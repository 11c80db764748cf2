package transcoder

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// TranscodeError carries the external tool's diagnostic output alongside
// the exec error.
type TranscodeError struct {
	Output string
	Err    error
}

func (e *TranscodeError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("ffmpeg failed: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg failed: %v: %s", e.Err, out)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// CommandRunner defines the interface for running external commands.
// This allows mocking exec.Command in tests.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec.
type ExecCommandRunner struct{}

// CombinedOutput executes a command and returns its combined stdout/stderr.
func (ExecCommandRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// TrimSpec describes one trim-and-fade pass over a local input file.
type TrimSpec struct {
	InputPath  string
	OutputPath string
	Start      float64 // seek offset, seconds
	End        float64 // end of the kept range, seconds
	Fade       float64 // fade-out duration, seconds
}

// FFmpeg invokes the ffmpeg binary for trim-and-fade transcodes.
type FFmpeg struct {
	path    string
	timeout time.Duration
	runner  CommandRunner
}

// Option is a functional option for configuring FFmpeg.
type Option func(*FFmpeg)

// WithPath sets a custom ffmpeg executable path.
func WithPath(path string) Option {
	return func(f *FFmpeg) {
		if path != "" {
			f.path = path
		}
	}
}

// WithTimeout bounds each invocation.
func WithTimeout(d time.Duration) Option {
	return func(f *FFmpeg) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithRunner sets a custom command runner (for testing).
func WithRunner(r CommandRunner) Option {
	return func(f *FFmpeg) {
		f.runner = r
	}
}

// New creates an FFmpeg invoker with a 120s default timeout.
func New(opts ...Option) *FFmpeg {
	f := &FFmpeg{
		path:    "ffmpeg",
		timeout: 120 * time.Second,
		runner:  ExecCommandRunner{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Trim runs one transcode pass: seek to Start, keep End-Start seconds,
// fade video and audio out over the last Fade seconds, encode h264/aac at
// the fastest preset. The fade starts at (End-Start)-Fade relative to the
// trimmed output; callers must have validated the range so that value is
// non-negative.
func (f *FFmpeg) Trim(ctx context.Context, spec TrimSpec) error {
	duration := spec.End - spec.Start
	fadeStart := duration - spec.Fade

	args := []string{
		"-i", spec.InputPath,
		"-ss", seconds(spec.Start),
		"-t", seconds(duration),
		"-vf", fmt.Sprintf("fade=t=out:st=%s:d=%s", seconds(fadeStart), seconds(spec.Fade)),
		"-af", fmt.Sprintf("afade=t=out:st=%s:d=%s", seconds(fadeStart), seconds(spec.Fade)),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-preset", "ultrafast",
		"-y",
		spec.OutputPath,
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	out, err := f.runner.CombinedOutput(ctx, f.path, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &TranscodeError{Output: string(out), Err: fmt.Errorf("timed out after %s: %w", f.timeout, err)}
		}
		return &TranscodeError{Output: string(out), Err: err}
	}
	return nil
}

// VerifyInstalled checks that ffmpeg is available.
func (f *FFmpeg) VerifyInstalled(ctx context.Context) error {
	if _, err := f.runner.CombinedOutput(ctx, f.path, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
