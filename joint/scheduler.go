package joint

import (
	"log"
	"time"

	"github.com/qjpcpu/container.v2/flist"
)

// scheduler owns the buffer, only the transport goroutine touches it
type scheduler[T any] struct {
	*Joint[T]
	term        time.Duration
	timer       *time.Timer
	readC       <-chan T // nil once input is closed
	buffer      *flist.ForwardList[T]
	tail        flist.Iterator[T]
	pending     T // next value to write, taken off the buffer
	hasPending  bool
	aborted     bool
	inputClosed bool
}

func newScheduler[T any](j *Joint[T]) *scheduler[T] {
	// add timer to prevent fatal error: all goroutines are asleep - deadlock!
	term := time.Hour * 1
	buffer := flist.New[T]()
	return &scheduler[T]{
		Joint:  j,
		term:   term,
		timer:  time.NewTimer(term),
		readC:  j.readC,
		buffer: buffer,
		tail:   buffer.BeforeBegin(),
	}
}

func (s *scheduler[T]) resetTimer() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
	s.timer.Reset(s.term)
}

func (s *scheduler[T]) stop() {
	s.timer.Stop()
}

func (s *scheduler[T]) isAborted() bool { return s.aborted }

func (s *scheduler[T]) runOnce() {
	s.resetTimer()
	if !s.hasPending {
		s.waitRead()
	} else {
		s.waitReadOrWrite()
	}
}

func (s *scheduler[T]) waitRead() {
	if s.inputClosed {
		s.aborted = true
		return
	}
	// buffer is empty
	select {
	case _, ok := <-s.reloadC:
		s.aborted = !ok
	case <-s.timer.C:
	case <-s.breakC:
		s.aborted = true
	case v, ok := <-s.readC:
		if !ok {
			s.aborted = true
			return
		}
		// drop data by filter
		if !s.accept(v) {
			return
		}
		s.queueSize.Add(1)
		s.pending, s.hasPending = v, true
		if Debug {
			log.Printf("[joint] Enqueue %v", v)
		}
	}
}

func (s *scheduler[T]) waitReadOrWrite() {
	readC := s.readC
	if s.queueSize.Load() >= s.maxIn.Load() {
		// block read channel
		readC = nil
	}
	select {
	case _, ok := <-s.reloadC:
		s.aborted = !ok
	case <-s.timer.C:
	case <-s.breakC:
		s.aborted = true
	case v, ok := <-readC:
		s.handleRecv(v, ok)
	case s.writeC <- s.pending:
		s.handleSend()
	}
}

func (s *scheduler[T]) handleRecv(v T, ok bool) {
	if !ok {
		if Debug {
			log.Println("[joint] Input channel closed.")
		}
		// do not read from input channel any more
		s.readC = nil
		s.inputClosed = true
		return
	}
	if !s.accept(v) {
		return
	}
	s.enqueue(v)
	if Debug {
		log.Printf("[joint] Enqueue %v", v)
	}
}

func (s *scheduler[T]) handleSend() {
	s.queueSize.Add(^uint64(0))
	if Debug {
		log.Printf("[joint] Dequeue %v", s.pending)
	}
	s.prepareNextWrite()
}

func (s *scheduler[T]) enqueue(v T) {
	if s.buffer.IsEmpty() {
		// old tail was popped with the last element
		s.tail = s.buffer.BeforeBegin()
	}
	s.tail = s.buffer.InsertAfter(s.tail, v)
	s.queueSize.Add(1)
}

func (s *scheduler[T]) prepareNextWrite() {
	var zero T
	s.pending, s.hasPending = zero, false
	for !s.buffer.IsEmpty() {
		v := s.buffer.Front()
		s.buffer.PopFront()
		// filter may have changed since enqueue
		if !s.accept(v) {
			s.queueSize.Add(^uint64(0))
			continue
		}
		s.pending, s.hasPending = v, true
		return
	}
}
