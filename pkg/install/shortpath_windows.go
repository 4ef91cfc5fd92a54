//go:build windows

package install

import (
	"golang.org/x/sys/windows"
)

// ShortPath converts p to its 8.3 short form so assembled command lines
// survive naive shell tokenization. Conversion is best-effort: bare command
// names resolved through the search path are not full paths and cannot be
// converted, so any failure returns p unchanged.
func ShortPath(p string) string {
	if p == "" {
		return p
	}
	long, err := windows.UTF16PtrFromString(p)
	if err != nil {
		return p
	}
	n, err := windows.GetShortPathName(long, nil, 0)
	if err != nil || n == 0 {
		return p
	}
	buf := make([]uint16, n)
	n, err = windows.GetShortPathName(long, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 {
		return p
	}
	return windows.UTF16ToString(buf[:n])
}
