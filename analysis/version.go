package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// MinVersion is the oldest match version a schema may declare.
var MinVersion = Version{Major: 4}

// Version is a lenient analysis match version. The zero value means the
// schema declared none.
type Version struct {
	Major  int
	Minor  int
	Bugfix int
}

// ParseVersion accepts "7", "7.7", "7.7.3" and the legacy "LUCENE_7_7"
// spelling.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Version{}, fmt.Errorf("empty version")
	}
	normalized := raw
	if upper := strings.ToUpper(raw); strings.HasPrefix(upper, "LUCENE_") {
		normalized = strings.ReplaceAll(strings.TrimPrefix(upper, "LUCENE_"), "_", ".")
	}
	parts := strings.Split(normalized, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("version %q has too many segments", raw)
	}
	var segments [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version %q is not a dotted number", raw)
		}
		segments[i] = n
	}
	return Version{Major: segments[0], Minor: segments[1], Bugfix: segments[2]}, nil
}

// AtLeast reports whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor > o.Minor
	}
	return v.Bugfix >= o.Bugfix
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}
