//go:build windows

package shortcut

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/windows"
)

// specialFolder resolves a placement to its known-folder path for the
// current user (or all users for the shared placements).
func specialFolder(place Placement) (string, error) {
	var id *windows.KNOWNFOLDERID
	switch place {
	case Desktop:
		id = windows.FOLDERID_Desktop
	case AllUsersDesktop:
		id = windows.FOLDERID_PublicDesktop
	case Programs:
		id = windows.FOLDERID_Programs
	case StartMenu:
		id = windows.FOLDERID_StartMenu
	case AllUsersPrograms:
		id = windows.FOLDERID_CommonPrograms
	default:
		return "", fmt.Errorf("unknown placement %q", place)
	}
	path, err := windows.KnownFolderPath(id, 0)
	if err != nil {
		return "", fmt.Errorf("known folder for %s: %w", place, err)
	}
	return path, nil
}

// writeLink creates the .lnk file through the WScript.Shell COM object.
func writeLink(path, target, argLine, workDir, iconPath string) error {
	script := fmt.Sprintf(`
$WshShell = New-Object -ComObject WScript.Shell
$Shortcut = $WshShell.CreateShortcut(%s)
$Shortcut.TargetPath = %s
$Shortcut.Arguments = %s
$Shortcut.WorkingDirectory = %s
$Shortcut.IconLocation = %s
$Shortcut.Save()`,
		psQuote(path), psQuote(target), psQuote(argLine), psQuote(workDir), psQuote(iconPath))

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell: %w, output: %s", err, out)
	}
	return nil
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
