package editor

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// execTimeout bounds a single injection call so a hung tool can never stall
// the monitor loop for more than one poll cycle or two.
const execTimeout = 3 * time.Second

// runWithInput executes argv with input piped to stdin and waits for exit.
func runWithInput(ctx context.Context, argv []string, input string) error {
	ctx, cancel := context.WithTimeout(ctx, execTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open stdin for %s: %w", argv[0], err)
	}

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("start %s: %w", argv[0], err)
	}

	if input != "" {
		if _, err := stdin.Write([]byte(input)); err != nil {
			_ = stdin.Close()
			_ = cmd.Wait()
			return fmt.Errorf("write stdin for %s: %w", argv[0], err)
		}
	}
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait for %s: %w", argv[0], err)
	}
	return nil
}

// run executes argv with no stdin.
func run(ctx context.Context, argv []string) error {
	ctx, cancel := context.WithTimeout(ctx, execTimeout)
	defer cancel()

	if out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", argv[0], err, firstLine(out))
	}
	return nil
}

func firstLine(b []byte) string {
	for i, c := range b {
		if c == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
