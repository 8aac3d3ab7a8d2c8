// Package service contains the business logic layer.
package service

import "sync"

// CommunityLocks serializes set-and-count mutations per community. Mutations
// for different communities proceed independently; two mutations of the same
// community never interleave. One instance is shared by every service that
// mutates community sets.
type CommunityLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewCommunityLocks returns an empty lock table.
func NewCommunityLocks() *CommunityLocks {
	return &CommunityLocks{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the mutex for communityID, creating it on first use, and
// returns the matching unlock func.
func (l *CommunityLocks) Lock(communityID uint) func() {
	l.mu.Lock()
	m, ok := l.locks[communityID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[communityID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
