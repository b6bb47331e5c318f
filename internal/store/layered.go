package store

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// LayeredStore keeps live sessions in memory and writes them through to a
// durable store in the background. Durable writes are fire-and-forget:
// handlers commit the local state optimistically and never wait on the
// transport; a failed write only gets a log line. On a memory miss (e.g.
// after a restart) the session is revived from the durable layer.
type LayeredStore struct {
	live    *MemoryStore
	durable SessionStore
	log     *logrus.Logger
}

// NewLayeredStore combines a live memory store with a durable backend
func NewLayeredStore(live *MemoryStore, durable SessionStore, log *logrus.Logger) *LayeredStore {
	return &LayeredStore{live: live, durable: durable, log: log}
}

// Get reads the live copy, falling back to the durable layer
func (l *LayeredStore) Get(ctx context.Context, code string) (*models.Session, error) {
	sess, err := l.live.Get(ctx, code)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	sess, err = l.durable.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := l.live.Save(ctx, sess); err != nil {
		return nil, err
	}
	l.log.WithField("room", code).Info("session revived from durable store")
	return sess, nil
}

// Save commits the live copy and pushes to the durable layer without waiting
func (l *LayeredStore) Save(ctx context.Context, sess *models.Session) error {
	if err := l.live.Save(ctx, sess); err != nil {
		return err
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sess.RLock()
		err := l.durable.Save(ctx, sess)
		sess.RUnlock()
		if err != nil {
			l.log.WithField("room", sess.RoomCode).WithError(err).Warn("durable session write failed")
		}
	}()
	return nil
}

// Delete removes the session from both layers
func (l *LayeredStore) Delete(ctx context.Context, code string) error {
	if err := l.live.Delete(ctx, code); err != nil {
		return err
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.durable.Delete(ctx, code); err != nil {
			l.log.WithField("room", code).WithError(err).Warn("durable session delete failed")
		}
	}()
	return nil
}

// Exists checks both layers for a room code
func (l *LayeredStore) Exists(ctx context.Context, code string) (bool, error) {
	taken, err := l.live.Exists(ctx, code)
	if err != nil || taken {
		return taken, err
	}
	return l.durable.Exists(ctx, code)
}
