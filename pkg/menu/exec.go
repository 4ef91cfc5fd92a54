package menu

import (
	"os"
	"os/exec"
	"strings"
)

// runMenu pipes options into the menu command and returns the selected line.
// Menu programs signal dismissal through their exit status (1 for the dmenu
// family, 130 for fzf); both map to ErrCancelled, as does an empty selection.
func runMenu(command string, args, options []string) (string, error) {
	cmd := exec.Command(command, args...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			switch exitErr.ExitCode() {
			case 1, 130:
				return "", ErrCancelled
			}
		}
		return "", err
	}

	choice := strings.TrimSpace(string(output))
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}
