// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"griddesk/internal/platform/store"
)

// KV is the minimal read and write surface for snapshot repos
type KV = store.KV
