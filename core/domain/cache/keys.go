package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	keyPrefix    = "classify"
	keySeparator = ":"
	hashLen      = 32
)

// Key builds a stable cache key from the three classifier inputs. Fields are
// normalized (trimmed, lower-cased, whitespace-collapsed) so cosmetic
// variations share an entry.
func Key(category, description, industry string) string {
	combined := strings.Join([]string{
		normalizeField(category),
		normalizeField(description),
		normalizeField(industry),
	}, keySeparator)

	h := sha256.Sum256([]byte(combined))
	return keyPrefix + keySeparator + hex.EncodeToString(h[:])[:hashLen]
}

func normalizeField(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}
