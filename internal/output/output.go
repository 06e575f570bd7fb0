package output

import "sync"

var (
	globalPrinter = NewPrinter()
	globalMu      sync.RWMutex
)

// SetGlobalPrinter sets the printer used by components built without one.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}
