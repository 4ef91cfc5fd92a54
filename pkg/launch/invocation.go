// Package launch turns a program descriptor into a concrete invocation and
// starts it as a detached child process. The same invocation feeds both the
// live launch path and shortcut creation, so the two can never drift apart.
package launch

// Invocation is a synthesized launch vector. Element 0 is the working
// directory; the remaining elements are the process argument vector
// (executable followed by its arguments). The dual-purpose shape is
// deliberate: one artifact serves both "change directory, then spawn" and
// "shortcut target/arguments/working-directory" consumers.
type Invocation struct {
	vec []string
}

// WorkDir is the directory the program starts in.
func (i Invocation) WorkDir() string {
	if len(i.vec) == 0 {
		return ""
	}
	return i.vec[0]
}

// Argv is the process argument vector, executable first.
func (i Invocation) Argv() []string {
	if len(i.vec) < 2 {
		return nil
	}
	return append([]string(nil), i.vec[1:]...)
}

// Executable is the resolved executable token, if any.
func (i Invocation) Executable() string {
	if len(i.vec) < 2 {
		return ""
	}
	return i.vec[1]
}

// Vector is the full working-directory-plus-argv form.
func (i Invocation) Vector() []string {
	return append([]string(nil), i.vec...)
}
