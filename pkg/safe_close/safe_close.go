// Package safe_close coordinates graceful shutdown of service components.
package safe_close

import "sync"

// SafeClose fans a single close signal out to every attached component and
// waits until all of them report done.
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	closeErr    error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done when it has fully
// stopped and must return once closeSignal fires.
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := sync.OnceFunc(s.wg.Done)
	go f(done, s.closeSignal)
}

// SendCloseSignal asks every attached component to stop. The first non-nil
// error is kept and returned from WaitClosed. Safe to call multiple times.
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.closeErr = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached component has called done.
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeErr
}
