// Package system integrates with the host desktop environment.
package system

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// OpenFile asks the host environment to open path with its default
// application, delegating platform differences to the standard openers
// instead of reimplementing them per OS. The viewer is started detached;
// OpenFile does not wait for it to exit.
func OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}
