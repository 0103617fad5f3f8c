// SPDX-License-Identifier: MPL-2.0

package identity

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ReservedPlaceholder is the account name excluded from discovery
// regardless of its UID.
const ReservedPlaceholder = "nobody"

// minRegularUID is the lowest UID treated as a regular human account.
const minRegularUID = 1000

// Entry is a single /etc/passwd record reduced to what discovery needs.
type Entry struct {
	// Name is the account name (first passwd field).
	Name string
	// UID is the numeric user id (third passwd field).
	UID int
}

// ParsePasswd reads passwd-format records, skipping blank lines,
// comments, and malformed entries. Order is preserved.
func ParsePasswd(r io.Reader) []Entry {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		uid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: fields[0], UID: uid})
	}
	return entries
}

// Filter returns the names of launchable accounts: UID 0 (privileged)
// or UID >= 1000 (regular human accounts), excluding the reserved
// placeholder name. Input order is preserved.
func Filter(entries []Entry) []string {
	var names []string
	for _, e := range entries {
		if !launchable(e) {
			continue
		}
		names = append(names, e.Name)
	}
	return names
}

func launchable(e Entry) bool {
	if e.Name == ReservedPlaceholder {
		return false
	}
	return e.UID == 0 || e.UID >= minRegularUID
}
