package decay

import (
	_ "embed"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// defaultData is the compiled-in decay dataset (λ in 1/month).
//
//go:embed decay.dat
var defaultData string

// The process-wide network is published through an atomic pointer: loads
// and reloads swap the whole immutable value, so readers never observe a
// partially built network. loadMu only serializes writers.
var (
	global atomic.Pointer[Network]
	loadMu sync.Mutex
)

// Load parses the embedded dataset into the process-wide network.
// It is idempotent: once any load has succeeded, Load returns the current
// network without re-reading anything.
func Load() (*Network, error) {
	if n := global.Load(); n != nil {
		return n, nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()
	if n := global.Load(); n != nil {
		return n, nil
	}
	n, err := Parse(strings.NewReader(defaultData))
	if err != nil {
		return nil, err
	}
	global.Store(n)

	return n, nil
}

// LoadFrom parses a caller-supplied dataset into the process-wide network.
// Like Load it is idempotent: if a network is already loaded it is returned
// unchanged and r is not read. Use Reload to replace an existing network.
func LoadFrom(r io.Reader) (*Network, error) {
	if n := global.Load(); n != nil {
		return n, nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()
	if n := global.Load(); n != nil {
		return n, nil
	}
	n, err := Parse(r)
	if err != nil {
		return nil, err
	}
	global.Store(n)

	return n, nil
}

// Reload parses a dataset and atomically replaces the process-wide network.
// On parse failure the previous network stays in place. Compositions holding
// a reference to the old network keep using it; only lookups of the global
// observe the swap.
func Reload(r io.Reader) (*Network, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	n, err := Parse(r)
	if err != nil {
		return nil, err
	}
	global.Store(n)

	return n, nil
}

// Global returns the process-wide network, or ErrNotLoaded if no load has
// succeeded yet. Callers that must not silently skip decay rely on this
// error instead of a nil network.
func Global() (*Network, error) {
	n := global.Load()
	if n == nil {
		return nil, ErrNotLoaded
	}

	return n, nil
}
