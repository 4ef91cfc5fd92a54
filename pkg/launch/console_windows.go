//go:build windows

package launch

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// configureConsole gives the child its own console window when requested,
// so interactive shells and long-running scripts keep their output visible.
func configureConsole(cmd *exec.Cmd, newConsole bool) {
	if !newConsole {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
}
