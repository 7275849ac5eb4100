// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"reflect"
	"sync"
)

// Subscribe returns a stream of session snapshots, starting with the
// current one, and a function that ends the subscription and closes the
// channel.
//
// The channel holds at most one pending snapshot: a slow reader skips
// intermediate states and always receives the latest one.
func (a *Authority) Subscribe() (<-chan Session, func()) {
	ch := make(chan Session, 1)

	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = ch
	ch <- a.session.clone()
	a.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subscribers, id)
			close(ch)
			a.mu.Unlock()
		})
	}

	return ch, cancel
}

// publishLocked replaces the session and notifies subscribers. Publishing a
// session equal to the current one is a no-op. a.mu must be held.
func (a *Authority) publishLocked(next Session) {
	if reflect.DeepEqual(a.session, next) {
		return
	}
	a.session = next

	for _, ch := range a.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- next.clone()
	}
}
