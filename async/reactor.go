package async

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// Events is a mask of I/O readiness conditions.
type Events uint32

const (
	// Readable reports that a read would not block.
	Readable = Events(unix.EPOLLIN)
	// Writable reports that a write would not block.
	Writable = Events(unix.EPOLLOUT)
)

// maxEvents bounds the readiness notifications taken per poll.
const maxEvents = 64

// A Reactor maps OS descriptors to the wakers of the futures awaiting
// their readiness. poll is its only blocking operation, and the executor
// is its only caller; futures use Register and Unregister from inside
// their progress steps.
type Reactor struct {
	epfd   int
	wakers map[int]Waker

	// Logger, when set, receives debug-level registration events.
	Logger *slog.Logger
}

func newReactor() (*Reactor, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, fmt.Errorf("could not create epoll instance: %v", err)
	}
	return &Reactor{epfd: epfd, wakers: make(map[int]Waker)}, nil
}

func (r *Reactor) close() error {
	if err := unix.Close(r.epfd); err != nil {
		return fmt.Errorf("could not close epoll instance: %v", err)
	}
	return nil
}

// Register associates fd with a waker to invoke when one of the events is
// ready. Registering an fd again replaces its previous association.
func (r *Reactor) Register(fd int, events Events, w Waker) error {
	if r.Logger != nil {
		r.Logger.Debug("registering fd", "fd", fd, "events", uint32(events))
	}
	ev := &unix.EpollEvent{Events: uint32(events), Fd: int32(fd)}
	op := unix.EPOLL_CTL_ADD
	if _, ok := r.wakers[fd]; ok {
		op = unix.EPOLL_CTL_MOD
	}
	if err := unix.EpollCtl(r.epfd, op, fd, ev); err != nil {
		return fmt.Errorf("could not register fd %d: %v", fd, err)
	}
	r.wakers[fd] = w
	return nil
}

// Unregister drops the association for fd. Unregistering an fd that is not
// registered returns an error but leaves the reactor's state intact.
func (r *Reactor) Unregister(fd int) error {
	if r.Logger != nil {
		r.Logger.Debug("unregistering fd", "fd", fd)
	}
	if _, ok := r.wakers[fd]; !ok {
		return fmt.Errorf("fd %d is not registered", fd)
	}
	delete(r.wakers, fd)
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("could not unregister fd %d: %v", fd, err)
	}
	return nil
}

// poll blocks until at least one registered descriptor is ready and wakes
// the future of each ready one.
func (r *Reactor) poll() error {
	var events [maxEvents]unix.EpollEvent
	var n int
	for {
		var err error
		n, err = unix.EpollWait(r.epfd, events[:], -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not poll: %v", err)
		}
		break
	}
	for i := 0; i < n; i++ {
		if w, ok := r.wakers[int(events[i].Fd)]; ok {
			w.Wake()
		}
	}
	return nil
}
