// Package outbuf captures the stdout/stderr of a control process into an
// append-only buffer that supports full replay plus live follow. The chunk
// list is lock-free for the single writer (the pipe copier started by
// os/exec); followers walk it with atomic loads and are woken on append.
package outbuf

import (
	"sync"
	"sync/atomic"
)

// chunk is one element of the singly linked chunk list. A sentinel head
// keeps the append logic simple.
type chunk struct {
	data []byte
	next atomic.Pointer[chunk]
}

// Buffer is an append-only sequence of byte chunks written by exactly one
// writer. Any number of concurrent followers may replay and tail it.
type Buffer struct {
	head *chunk // sentinel, immutable
	tail *chunk // single-writer only

	mu     sync.Mutex
	wakers map[chan struct{}]struct{}
	closed bool
}

// New creates an empty Buffer.
func New() *Buffer {
	sentinel := &chunk{}
	return &Buffer{
		head:   sentinel,
		tail:   sentinel,
		wakers: make(map[chan struct{}]struct{}),
	}
}

// Write implements io.Writer. The input is copied because os/exec reuses
// its pipe buffer after Write returns.
func (b *Buffer) Write(p []byte) (int, error) {
	if b == nil || len(p) == 0 {
		return len(p), nil
	}
	cp := append([]byte(nil), p...)

	next := &chunk{data: cp}
	b.tail.next.Store(next)
	b.tail = next

	b.wake()
	return len(p), nil
}

// Close marks the buffer complete. Followers drain the remaining chunks and
// then see their channel closed. Close is idempotent.
func (b *Buffer) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.wake()
}

func (b *Buffer) wake() {
	b.mu.Lock()
	for w := range b.wakers {
		select {
		case w <- struct{}{}:
		default:
		}
	}
	b.mu.Unlock()
}

// Follow returns a channel that replays every chunk written so far and then
// streams new chunks as they arrive. The channel is closed once the buffer
// is closed and fully drained, or once done is closed. Sends block when the
// receiver lags, so a caller that may stop draining must close done to
// detach the follower. A nil done never detaches.
func (b *Buffer) Follow(done <-chan struct{}, capacity int) <-chan []byte {
	ch := make(chan []byte, capacity)

	waker := make(chan struct{}, 1)
	b.mu.Lock()
	b.wakers[waker] = struct{}{}
	b.mu.Unlock()

	go b.follow(done, waker, ch)
	return ch
}

func (b *Buffer) follow(done <-chan struct{}, waker chan struct{}, ch chan<- []byte) {
	defer func() {
		b.mu.Lock()
		delete(b.wakers, waker)
		b.mu.Unlock()
		close(ch)
	}()

	prev := b.head
	for {
		cur := prev.next.Load()
		if cur == nil {
			b.mu.Lock()
			closed := b.closed
			b.mu.Unlock()
			// Re-check after reading closed: a final Write may have
			// landed in between.
			if closed && prev.next.Load() == nil {
				return
			}
			if !closed {
				select {
				case <-waker:
				case <-done:
					return
				}
			}
			continue
		}
		prev = cur
		select {
		case ch <- cur.data:
		case <-done:
			return
		}
	}
}

// ForEach iterates chunks in insertion order until iter returns false.
func (b *Buffer) ForEach(iter func([]byte) bool) {
	if b == nil || iter == nil {
		return
	}
	cur := b.head.next.Load()
	for cur != nil {
		if !iter(cur.data) {
			return
		}
		cur = cur.next.Load()
	}
}

// Bytes concatenates all chunks written so far.
func (b *Buffer) Bytes() []byte {
	total := 0
	chunks := make([][]byte, 0, 16)
	b.ForEach(func(p []byte) bool {
		chunks = append(chunks, p)
		total += len(p)
		return true
	})
	out := make([]byte, 0, total)
	for _, p := range chunks {
		out = append(out, p...)
	}
	return out
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}
