// Package recent tracks the programs a user has launched so frontends can
// surface a "My Recent" group. History is most-recent-last and bounded.
package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

const maxEntries = 40

type state struct {
	Programs []string `toml:"programs"`
}

// Log is a bounded launch history backed by a TOML state file.
type Log struct {
	path  string
	names []string
}

// Open loads the history at path. A missing or unreadable state file yields
// an empty log; history is convenience data and never blocks a launch.
func Open(path string) *Log {
	l := &Log{path: path}
	var st state
	if _, err := toml.DecodeFile(path, &st); err != nil {
		return l
	}
	l.names = st.Programs
	if len(l.names) > maxEntries {
		l.names = l.names[len(l.names)-maxEntries:]
	}
	return l
}

// Append records a launch of name, evicting the oldest entry past the cap.
func (l *Log) Append(name string) {
	l.names = append(l.names, name)
	if len(l.names) > maxEntries {
		l.names = l.names[len(l.names)-maxEntries:]
	}
}

// Save writes the history back to its state file.
func (l *Log) Save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create state folder: %w", err)
	}
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("write run history: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(state{Programs: l.names}); err != nil {
		return fmt.Errorf("encode run history: %w", err)
	}
	return nil
}

// Names returns the raw history, oldest first.
func (l *Log) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of recorded launches.
func (l *Log) Len() int {
	return len(l.names)
}

// MostRun returns up to n program names ordered by launch count, ties broken
// by recency of last launch.
func (l *Log) MostRun(n int) []string {
	counts := make(map[string]int)
	lastSeen := make(map[string]int)
	for i, name := range l.names {
		counts[name]++
		lastSeen[name] = i
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return lastSeen[names[i]] > lastSeen[names[j]]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}
