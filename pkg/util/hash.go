package util

import (
	"github.com/twmb/murmur3"
	"strings"
)

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// HashFields hashes the fields joined by a separator that cannot appear in ids or urls
func HashFields(fields ...string) uint32 {
	return HashFunc(strings.Join(fields, "\x00"))
}
