package dictionary

import (
	"bufio"
	"io"
	"strings"
)

// ShardSpec describes one loadable chunk of dictionary data.
type ShardSpec struct {
	// Name is the file or object name of the shard.
	Name string
	// Role receives single-word lines. Combined shards leave it RoleUnassigned.
	Role Role
}

// ParseStats holds parser statistics for logging.
type ParseStats struct {
	Lines   int
	Words   int
	Skipped int
}

// combinedColumns maps comma-separated columns to roles.
var combinedColumns = [...]Role{RoleSurname, RoleGiven, RolePatronymic}

// ParseShard reads a shard line by line and reports every word with its role.
//
// A line is either a single word, which goes to defaultRole, or up to three
// comma-separated columns "surname,given,patronymic". Blank lines and lines
// starting with '#' are ignored. Words are trimmed and lower-cased.
func ParseShard(r io.Reader, defaultRole Role, add func(role Role, word string)) (ParseStats, error) {
	var stats ParseStats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if stats.Lines == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if line == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}

		if !strings.Contains(line, ",") {
			if !defaultRole.IsNamed() {
				stats.Skipped++
				continue
			}
			add(defaultRole, normalizeWord(line))
			stats.Words++
			continue
		}

		cols := strings.Split(line, ",")
		for i, col := range cols {
			if i >= len(combinedColumns) {
				break
			}
			w := normalizeWord(col)
			if w == "" {
				continue
			}
			add(combinedColumns[i], w)
			stats.Words++
		}
	}

	return stats, scanner.Err()
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
