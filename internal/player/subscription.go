package player

import "sync"

// subscriptions tracks registered rate-change callbacks.  Time-tick
// subscriptions are not tracked here: each one is served by its own goroutine
// that exits on Cancel or player shutdown.
type subscriptions struct {
	mu     sync.Mutex
	nextID int
	rate   map[int]func(playing bool)
}

func newSubscriptions() *subscriptions {
	return &subscriptions{
		rate: make(map[int]func(bool)),
	}
}

func (s *subscriptions) addRate(fn func(bool)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.rate[id] = fn

	return &rateSubscription{id: id, subs: s}
}

func (s *subscriptions) removeRate(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rate, id)
}

// dispatchRateChange invokes every registered rate-change callback.  The
// callback list is copied under the lock so a callback that cancels its own
// subscription cannot deadlock.
func (s *subscriptions) dispatchRateChange(playing bool) {
	s.mu.Lock()
	callbacks := make([]func(bool), 0, len(s.rate))
	for _, fn := range s.rate {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(playing)
	}
}

// rateSubscription is the handle returned for a rate-change callback
type rateSubscription struct {
	id   int
	subs *subscriptions
	once sync.Once
}

func (s *rateSubscription) Cancel() {
	s.once.Do(func() {
		s.subs.removeRate(s.id)
	})
}

// tickSubscription is the handle returned for a periodic time-tick callback.
// Closing stop ends the serving goroutine.
type tickSubscription struct {
	stop chan struct{}
	once sync.Once
}

func newTickSubscription() *tickSubscription {
	return &tickSubscription{stop: make(chan struct{})}
}

func (s *tickSubscription) Cancel() {
	s.once.Do(func() {
		close(s.stop)
	})
}
