package queue

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueName returns prefix followed by a random suffix, so tests sharing a
// broker do not see each other's queues.
func UniqueName(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	if prefix == "" {
		return suffix
	}

	return prefix + "." + suffix
}
