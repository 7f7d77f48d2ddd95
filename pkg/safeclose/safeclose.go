// Package safeclose coordinates graceful shutdown of attached goroutines
// Package safeclose 协调附加协程的优雅关闭
package safeclose

import "sync"

// SafeClose fans a close signal out to every attached goroutine and waits for
// all of them to report done. The first error sent wins.
// SafeClose 将关闭信号广播给所有附加协程并等待其全部完成，首个错误胜出。
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closed      bool
	err         error
}

// NewSafeClose creates a SafeClose
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done when it has finished
// and should begin shutting down once closeSignal is closed.
// Attach 在独立协程中启动 f，f 结束时必须调用 done，收到 closeSignal 后应开始关闭。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal asks every attached goroutine to shut down. Safe to call
// more than once; only the first error is retained.
// SendCloseSignal 通知所有附加协程关闭，可重复调用，仅保留首个错误。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// CloseSignal returns the channel closed when shutdown begins
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until every attached goroutine is done, returning the
// error passed to the first SendCloseSignal call, if any.
// WaitClosed 阻塞直到所有附加协程结束，返回首次 SendCloseSignal 携带的错误。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
