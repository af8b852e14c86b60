package concurrency

import (
	"fmt"
	"sync"
)

// LockManager hands out named mutexes so callers can serialize work on a
// logical key, such as one user's membership in one challenge, without a
// global lock.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never evicted; the key space here is small.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// MembershipKey builds the lock key for one user's participation in one
// challenge
func MembershipKey(challengeID, userID int) string {
	return fmt.Sprintf("challenge:%d:user:%d", challengeID, userID)
}
