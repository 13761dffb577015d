package release

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/skratchdot/open-golang/open"
)

// MakeExecutable marks an AppImage as runnable.
func MakeExecutable(file string) error {
	if err := os.Chmod(file, 0o755); err != nil {
		return fmt.Errorf("make executable: %w", err)
	}
	return nil
}

// Launch starts the downloaded build. AppImages are executed directly and
// wait for the process; installers are handed to the platform opener.
func Launch(goos, file string) error {
	if goos == "linux" {
		cmd := exec.Command(file)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
	return open.Start(file)
}
