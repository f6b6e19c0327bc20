package explorer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// unknownVersionMarker is the placeholder some documents carry instead of a
// real version; it is excluded from version enumeration.
const unknownVersionMarker = "Unknown"

// Versions enumerates the distinct x-since-version markers across all
// schemas, together with the document-level info.version when present,
// sorted with a version-aware comparator.
func (ex *Explorer) Versions() []string {
	seen := map[string]bool{}
	for _, def := range ex.store.Components() {
		v := def["x-since-version"]
		if v == nil {
			continue
		}
		s := fmt.Sprintf("%v", v)
		if s != "" && s != unknownVersionMarker {
			seen[s] = true
		}
	}
	if v := ex.store.InfoVersion(); v != "" {
		seen[v] = true
	}

	versions := make([]string, 0, len(seen))
	for v := range seen {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

// compareVersions orders dotted version strings: each segment compares
// numerically when both sides are integers ("1.10" sorts after "1.2"), and
// lexically otherwise. A version that is a strict segment prefix of another
// sorts first.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aErr := strconv.Atoi(as[i])
		bn, bErr := strconv.Atoi(bs[i])
		if aErr == nil && bErr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}
