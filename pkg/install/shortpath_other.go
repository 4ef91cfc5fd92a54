//go:build !windows

package install

// ShortPath is a no-op where the filesystem has no short-name form.
func ShortPath(p string) string {
	return p
}
