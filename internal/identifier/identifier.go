// Package identifier derives FOA identifiers from the source URL or,
// failing that, from the record title.
package identifier

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"
)

const prefix = "FOA-"

// hashModulus bounds the title-derived suffix to five digits.
const hashModulus = 100000

// Generate returns the record identifier. A URL whose path contains an
// all-digit segment contributes that number directly; otherwise the
// suffix is a stable hash of the title reduced modulo 100000.
// Identifiers are advisory: deterministic but not collision-free, and
// never used as a storage key.
func Generate(title, sourceURL string) string {
	if seg := numericPathSegment(sourceURL); seg != "" {
		return prefix + seg
	}
	return fmt.Sprintf("%s%d", prefix, titleHash(title)%hashModulus)
}

// numericPathSegment returns the first all-digit segment of the URL path.
func numericPathSegment(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, seg := range strings.Split(parsed.Path, "/") {
		if seg != "" && isDigits(seg) {
			return seg
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// titleHash is FNV-1a over the title text, stable across runs and builds.
func titleHash(title string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return h.Sum32()
}
