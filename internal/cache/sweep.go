package cache

import (
	"strconv"
	"strings"
)

// Sweep deletes entries whose embedded timestamp is older than the upstream
// last-modified table and returns how many were removed. The trailing key
// segment is the timestamp and the leading segment is the icon set prefix;
// keys whose trailing segment does not parse as an integer (legacy or
// foreign key shapes) are skipped, never deleted. The offline sentinel
// parses as zero, so entries written offline count as stale once the table
// knows their prefix. Hyphenated prefixes split across segments and never
// match the table, so their entries are left alone.
//
// The sweep is advisory housekeeping: it is safe to skip or rerun at any
// time, and an unswept stale entry only risks serving outdated content.
func Sweep(s Store, lastModified map[string]int64) int {
	removed := 0
	for _, key := range s.Keys() {
		segs := strings.Split(key, Delim)
		if len(segs) < 2 {
			continue
		}
		ts, err := strconv.ParseInt(segs[len(segs)-1], 10, 64)
		if err != nil {
			continue
		}
		if ts < lastModified[segs[0]] {
			_ = s.Delete(key)
			removed++
		}
	}
	return removed
}
