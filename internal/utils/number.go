package utils

import (
	"fmt"
	"time"
)

// GenerateNumber builds a human-readable reference like ORD-1756600000000
// from a prefix and the current unix millisecond timestamp.
func GenerateNumber(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
