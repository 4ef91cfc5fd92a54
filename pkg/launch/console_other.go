//go:build !windows

package launch

import "os/exec"

// configureConsole is a no-op where there is no per-process console window.
func configureConsole(_ *exec.Cmd, _ bool) {}
