// Package open launches files with the system's default handler or a chosen program.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Run opens input with the default handler and waits for it to exit.
func Run(input string) error {
	return RunWith(input, "")
}

// RunWith opens input with app, or with the default handler when app is empty, and waits for it to exit.
func RunWith(input, app string) error {
	cmd, ok := command(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

func command(goos, input, app string) (*exec.Cmd, bool) {
	if app != "" {
		switch goos {
		case "windows", "linux", "freebsd", "openbsd", "android":
			return exec.Command(app, input), true
		case "darwin":
			return exec.Command("open", "-a", app, input), true
		default:
			return nil, false
		}
	}

	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case "darwin":
		return exec.Command("open", input), true
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", input), true
	case "android":
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
