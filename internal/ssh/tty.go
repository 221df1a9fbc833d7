// Package ssh adapts a gliderlabs SSH session into a terminal tcell can
// drive, so each remote dungeon master gets a full-screen console over their
// connection.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of one SSH session's channel.
type SessionTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
}

// NewSessionTty wraps an SSH session. pty carries the initial window size;
// winCh delivers resizes for the life of the connection.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read pulls keyboard input off the SSH channel.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered cells out to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close tears down the SSH channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the channel is already open when the handler runs.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the server handler goroutine owns the channel.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered on our side.
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the client terminal's current dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers tcell's resize callback and starts draining the
// window-change channel.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
