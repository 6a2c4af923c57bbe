package paste

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one external command
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// execRunner runs commands directly (no shell) and folds stderr into the error
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}

// TmuxSink types each line into a tmux pane followed by Enter
type TmuxSink struct {
	Binary string
	Runner Runner
}

// NewTmuxSink creates a sink that runs the given tmux binary
func NewTmuxSink(binary string) *TmuxSink {
	if binary == "" {
		binary = "tmux"
	}
	return &TmuxSink{Binary: binary, Runner: execRunner{}}
}

// Send issues one literal send-keys and one Enter per non-empty line.
// It stops at the first failure. "--" ends tmux's flag parsing so lines
// starting with "-" are typed rather than read as options.
func (s *TmuxSink) Send(ctx context.Context, text, target string) error {
	if strings.TrimSpace(target) == "" {
		return errors.New("no tmux target pane given")
	}

	for _, line := range Lines(text) {
		if err := s.Runner.Run(ctx, s.Binary, "send-keys", "-t", target, "-l", "--", EscapeTmuxArg(line)); err != nil {
			return fmt.Errorf("failed to send to tmux pane %s: %w", target, err)
		}
		if err := s.Runner.Run(ctx, s.Binary, "send-keys", "-t", target, "Enter"); err != nil {
			return fmt.Errorf("failed to send Enter to tmux pane %s: %w", target, err)
		}
	}
	return nil
}

// EscapeTmuxArg protects an argument from tmux's own command parsing.
// Arguments go straight to exec, so the shell never sees them, but tmux
// treats a trailing ";" as a command separator unless it is written "\;".
func EscapeTmuxArg(arg string) string {
	if strings.HasSuffix(arg, ";") {
		return arg[:len(arg)-1] + `\;`
	}
	return arg
}
