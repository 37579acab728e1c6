package joint

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync/atomic"
)

// Debug would print enquue/dequeue information
var Debug bool

// PipeFilter drop data when it returns false
type PipeFilter[T any] func(T) bool

// Joint connect two channel through an unbounded buffer
type Joint[T any] struct {
	readC           <-chan T
	writeC          chan<- T
	breakC, reloadC chan struct{}
	broken          atomic.Bool
	maxIn           atomic.Uint64
	queueSize       atomic.Uint64
	filter          atomic.Pointer[PipeFilter[T]]
}

// Pipe two channel, data read from readC is written to writeC in order
func Pipe[T any](readC <-chan T, writeC chan<- T) (*Joint[T], error) {
	if readC == nil || writeC == nil {
		return nil, errors.New("data channel should not be nil")
	}
	j := &Joint[T]{
		readC:   readC,
		writeC:  writeC,
		breakC:  make(chan struct{}, 1),
		reloadC: make(chan struct{}, 1),
	}
	j.maxIn.Store(math.MaxUint64 - 1)
	go j.transport()
	return j, nil
}

// SetFilter of pipe, nil removes the filter
func (j *Joint[T]) SetFilter(f PipeFilter[T]) {
	if f == nil {
		j.filter.Store(nil)
		return
	}
	j.filter.Store(&f)
}

// SetCap set max pipe buffer size, can be ajust in runtime
func (j *Joint[T]) SetCap(l uint64) error {
	chCap := uint64(cap(j.readC) + cap(j.writeC))
	min := chCap + 1
	if l < min {
		if Debug {
			log.Println("[joint] extend buffer size to", min)
		}
		l = min
	}
	max := uint64(math.MaxUint64 - 1)
	if l > max {
		return fmt.Errorf("[joint] length should not greater than %v", max)
	}
	maxIn := j.maxIn.Load()
	if maxIn != l-chCap && !j.broken.Load() && j.maxIn.CompareAndSwap(maxIn, l-chCap) {
		j.reloadC <- struct{}{}
	}
	return nil
}

// Len return buffer length. It is updated by the transport goroutine after each
// read or write completes, so it may briefly trail what a consumer has observed.
func (j *Joint[T]) Len() uint64 {
	return j.queueSize.Load()
}

// Cap return pipe cap
func (j *Joint[T]) Cap() uint64 {
	return j.maxIn.Load()
}

// Breakoff halt conjuction, drop remain data in pipe
func (j *Joint[T]) Breakoff() {
	if j.broken.CompareAndSwap(false, true) {
		close(j.breakC)
		close(j.reloadC)
	}
}

// DoneC return finished channel
func (j *Joint[T]) DoneC() <-chan struct{} {
	return j.breakC
}

func (j *Joint[T]) accept(v T) bool {
	f := j.filter.Load()
	return f == nil || (*f)(v)
}

/*
 * private methods
 */

func (j *Joint[T]) transport() {
	defer func() {
		j.Breakoff()
		if Debug {
			log.Println("[joint] Exited.")
		}
	}()
	sched := newScheduler(j)
	for !sched.isAborted() {
		sched.runOnce()
	}
	sched.stop()
}
