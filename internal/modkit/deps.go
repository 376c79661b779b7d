package modkit

import (
	"griddesk/internal/platform/config"
	"griddesk/internal/platform/logger"
	"griddesk/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// KV is the local snapshot cache seam, nil when disabled
	KV store.KV
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check optional seams
func (d Deps) ZeroOK() bool { return true }
