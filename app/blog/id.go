package blog

import (
	"strconv"
)

// EntryID derives the stable identifier for an article URL: a 32-bit
// shift-add hash rendered in base 36. Not collision resistant; a colliding
// URL is indistinguishable from an already-processed one and is skipped.
func EntryID(url string) string {
	var hash int32
	for _, b := range []byte(url) {
		hash = (hash << 5) - hash + int32(b)
	}

	value := int64(hash)
	if value < 0 {
		value = -value
	}
	return strconv.FormatInt(value, 36)
}
