// Package testutils provides deterministic generators and file helpers for
// sequencer tests. Production code uses the generators so test-mode runs
// produce repeatable output.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// GenerateRunID returns a random UUID, or a deterministic one in test mode.
// Deterministic ids keep the UUID v4 layout:
// 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, ...
func GenerateRunID(testMode bool) string {
	if testMode {
		return getDeterministicUUID()
	}
	return uuid.NewString()
}

func getDeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

// ResetTestCounters resets the deterministic counters.
// Only test code should call it.
func ResetTestCounters() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}
