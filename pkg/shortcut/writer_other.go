//go:build !windows

package shortcut

func specialFolder(Placement) (string, error) {
	return "", ErrUnsupported
}

func writeLink(path, target, argLine, workDir, iconPath string) error {
	return ErrUnsupported
}
