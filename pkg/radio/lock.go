package radio

import (
	"context"
	"sync"
)

// Owner identifies the subsystem holding the radio.
type Owner uint8

const (
	OwnerNone Owner = iota
	OwnerController
	OwnerScanner
)

// String returns the owner name.
func (o Owner) String() string {
	switch o {
	case OwnerNone:
		return "NONE"
	case OwnerController:
		return "CONTROLLER"
	case OwnerScanner:
		return "SCANNER"
	default:
		return "UNKNOWN"
	}
}

// Lock grants exclusive use of the radio to one owner at a time.
type Lock struct {
	sem chan struct{}

	mu     sync.Mutex
	holder Owner
}

// NewLock returns an unheld lock.
func NewLock() *Lock {
	return &Lock{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the radio is free or ctx is done.
func (l *Lock) Acquire(ctx context.Context, owner Owner) (*Lease, error) {
	select {
	case l.sem <- struct{}{}:
		return l.grant(owner), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// TryAcquire takes the radio if it is free.
func (l *Lock) TryAcquire(owner Owner) (*Lease, bool) {
	select {
	case l.sem <- struct{}{}:
		return l.grant(owner), true
	default:
		return nil, false
	}
}

// Holder returns the current owner, or OwnerNone.
func (l *Lock) Holder() Owner {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holder
}

func (l *Lock) grant(owner Owner) *Lease {
	l.mu.Lock()
	l.holder = owner
	l.mu.Unlock()
	return &Lease{lock: l, owner: owner}
}

func (l *Lock) release() {
	l.mu.Lock()
	l.holder = OwnerNone
	l.mu.Unlock()
	<-l.sem
}

// Lease is the capability to drive the radio. Release it when done.
type Lease struct {
	lock  *Lock
	owner Owner
	once  sync.Once
}

// Owner returns the subsystem the lease was granted to.
func (l *Lease) Owner() Owner {
	return l.owner
}

// Release returns the radio. Calling it more than once is a no-op.
func (l *Lease) Release() {
	l.once.Do(l.lock.release)
}
