package watcher

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
)

const batchSize = 50

// Source is the part of the store the watcher polls.
type Source interface {
	StatusChangesSince(since time.Time, limit int) ([]store.StatusChange, error)
	UnreadCount() (int, error)
}

// Sender delivers messages to the UI loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Watcher polls the store for moderation changes made by other processes
// and hands them to the UI loop as messages.
type Watcher struct {
	src      Source
	interval time.Duration
	origin   string
	logger   *zap.Logger

	mu       sync.Mutex
	sender   Sender
	lastSeen time.Time
	unread   int
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a watcher. Changes recorded with origin are this process's
// own and are skipped.
func New(cfg config.Config, src Source, origin string, logger *zap.Logger) *Watcher {
	return &Watcher{
		src:      src,
		interval: cfg.WatchInterval,
		origin:   origin,
		logger:   logger,
		lastSeen: time.Now(),
		unread:   -1,
	}
}

// Start begins the polling loop. Starting a running watcher is a no-op.
func (w *Watcher) Start(sender Sender) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.sender = sender
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.loop(w.stopCh, w.doneCh)
}

// Stop halts polling and waits for the loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()
	<-done
}

func (w *Watcher) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// Poll checks once for new changes and delivers them.
func (w *Watcher) Poll() {
	w.mu.Lock()
	sender := w.sender
	since := w.lastSeen
	w.mu.Unlock()
	if sender == nil {
		return
	}

	changes, err := w.src.StatusChangesSince(since, batchSize)
	if err != nil {
		w.logger.Warn("polling status changes", zap.Error(err))
		return
	}

	for _, sc := range changes {
		since = sc.ChangedAt
		if sc.Origin == w.origin {
			continue
		}
		w.logger.Debug("external status change",
			zap.Int64("note", sc.NoteID),
			zap.String("status", string(sc.Status)),
			zap.String("origin", sc.Origin))
		sender.Send(messages.StatusChangedMsg{NoteID: sc.NoteID, Status: sc.Status, Origin: sc.Origin})
	}

	unread, err := w.src.UnreadCount()
	if err != nil {
		w.logger.Warn("counting unread notes", zap.Error(err))
	}

	w.mu.Lock()
	w.lastSeen = since
	changed := err == nil && unread != w.unread
	if changed {
		w.unread = unread
	}
	w.mu.Unlock()

	if changed {
		sender.Send(messages.UnreadCountMsg{UnreadCount: unread})
	}
}
