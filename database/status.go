package database

import (
	"go.uber.org/atomic"
)

// Status is the state of the connection to the document store
type Status int32

const (
	// Disconnected is the initial status, before the connection attempt resolves
	Disconnected Status = iota
	// Connected means the connection attempt succeeded
	Connected
	// Error means the connection attempt failed
	Error
)

func (s Status) String() string {
	switch s {
	case Connected:
		return "connected"
	case Error:
		return "error"
	default:
		return "disconnected"
	}
}

// ConnectionStatus is a thread-safe holder of the connection Status.
// It leaves Disconnected at most once.
type ConnectionStatus struct {
	value *atomic.Int32
}

// NewConnectionStatus creates a ConnectionStatus in the Disconnected state
func NewConnectionStatus() *ConnectionStatus {
	return &ConnectionStatus{
		value: atomic.NewInt32(int32(Disconnected)),
	}
}

// Get returns the current status
func (s *ConnectionStatus) Get() Status {
	return Status(s.value.Load())
}

// Resolve moves the status out of Disconnected and reports whether it did
func (s *ConnectionStatus) Resolve(status Status) bool {
	return s.value.CompareAndSwap(int32(Disconnected), int32(status))
}
