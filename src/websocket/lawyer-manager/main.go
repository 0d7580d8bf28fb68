package websocket_lawyer_manager

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

const (
	Ping = "ping"
	Pong = "pong"
)

// DefaultWriteTimeout bounds a single write to a subscriber.
const DefaultWriteTimeout = 5 * time.Second

var ErrWriteTimeout = errors.New("websocket write timed out")

// Connection is the part of a websocket connection the manager writes to.
// Connections that also implement SetWriteDeadline get a deadline on every
// write, and connections implementing io.Closer are closed when evicted.
type Connection interface {
	WriteJSON(v any) error
}

type deadlineSetter interface {
	SetWriteDeadline(t time.Time) error
}

type client struct {
	conn Connection
	mu   sync.Mutex
}

func (c *client) write(data any, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if d, ok := c.conn.(deadlineSetter); ok {
			if err := d.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
				done <- err
				return
			}
		}
		done <- c.conn.WriteJSON(data)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return ErrWriteTimeout
	}
}

// LawyerChannelManager keeps the websocket clients of each lawyer so
// events can be broadcast to one lawyer only.
type LawyerChannelManager[T any] struct {
	channels     map[string]map[string]*client
	mu           sync.RWMutex
	writeTimeout time.Duration
}

func CreateLawyerChannelManager[T any]() *LawyerChannelManager[T] {
	return &LawyerChannelManager[T]{
		channels:     make(map[string]map[string]*client),
		writeTimeout: DefaultWriteTimeout,
	}
}

// SetWriteTimeout changes how long Broadcast waits on one subscriber.
func (m *LawyerChannelManager[T]) SetWriteTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeTimeout = timeout
}

// AppendClient registers conn under key in the lawyer's channel. A second
// call with the same key replaces the connection.
func (m *LawyerChannelManager[T]) AppendClient(lawyerID, key string, conn Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()

	channel, exists := m.channels[lawyerID]
	if !exists {
		channel = make(map[string]*client)
		m.channels[lawyerID] = channel
	}
	channel[key] = &client{conn: conn}
}

// RemoveClient drops the client and the channel once it is empty.
func (m *LawyerChannelManager[T]) RemoveClient(lawyerID, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(lawyerID, key, nil)
}

// remove deletes key from the channel. When only is set the entry is kept
// if it was replaced in the meantime.
func (m *LawyerChannelManager[T]) remove(lawyerID, key string, only *client) bool {
	channel, exists := m.channels[lawyerID]
	if !exists {
		return false
	}
	current, exists := channel[key]
	if !exists || (only != nil && current != only) {
		return false
	}
	delete(channel, key)
	if len(channel) == 0 {
		delete(m.channels, lawyerID)
	}
	return true
}

func (m *LawyerChannelManager[T]) evict(lawyerID, key string, c *client) {
	m.mu.Lock()
	removed := m.remove(lawyerID, key, c)
	m.mu.Unlock()

	if !removed {
		return
	}
	if closer, ok := c.conn.(io.Closer); ok {
		go closer.Close()
	}
}

func (m *LawyerChannelManager[T]) ClientCount(lawyerID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.channels[lawyerID])
}

// Broadcast writes data to every client of the lawyer concurrently and
// returns how many writes succeeded. A client whose write fails or does not
// finish within the write timeout is evicted and closed.
func (m *LawyerChannelManager[T]) Broadcast(lawyerID string, data T) int {
	m.mu.RLock()
	timeout := m.writeTimeout
	clients := make(map[string]*client, len(m.channels[lawyerID]))
	for key, c := range m.channels[lawyerID] {
		clients[key] = c
	}
	m.mu.RUnlock()

	var eg errgroup.Group
	var delivered int
	var deliveredMu sync.Mutex
	for key, c := range clients {
		eg.Go(func() error {
			if err := c.write(data, timeout); err != nil {
				pterm.DefaultLogger.Warn(
					fmt.Sprintf("Dropping websocket client %s of lawyer %s: %s", key, lawyerID, err.Error()),
				)
				m.evict(lawyerID, key, c)
				return nil
			}
			deliveredMu.Lock()
			delivered++
			deliveredMu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return delivered
}
