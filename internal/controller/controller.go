// SPDX-License-Identifier: Apache-2.0

// Package controller holds the UI-facing application state: the shared note
// list subscription and the multi-select state machine. It sits between the
// terminal UI and the note service the same way a view-model sits between a
// screen and its repository.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/d-code000/YetAnotherNote/internal/config"
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/service"
	"github.com/d-code000/YetAnotherNote/models"
)

// Controller multiplexes the service's notes feed to any number of UI
// subscribers and runs mutations off the UI loop.
//
// The upstream feed subscription is reference-counted: it is opened when the
// first UI subscriber attaches and kept warm for the configured grace period
// after the last one detaches, so transient screen switches do not tear the
// feed down and reload it a moment later.
type Controller struct {
	service service.NoteService
	grace   time.Duration
	logger  *logger.Logger

	mu             sync.Mutex
	latest         []models.Note
	subscribers    map[chan []models.Note]struct{}
	upstreamCancel func()
	upstreamDone   chan struct{}
	teardown       *time.Timer

	multiSelect bool
	selected    map[int64]struct{}

	errCh chan error
}

// NewController constructs a controller over svc. cfg.FeedGrace bounds how
// long the upstream feed subscription survives without UI subscribers.
func NewController(svc service.NoteService, cfg config.ClientApp, log *logger.Logger) *Controller {
	grace := cfg.FeedGrace
	if grace < 0 {
		grace = 0
	}

	return &Controller{
		service:     svc,
		grace:       grace,
		logger:      log,
		subscribers: make(map[chan []models.Note]struct{}),
		selected:    make(map[int64]struct{}),
		errCh:       make(chan error, 1),
	}
}

// Subscribe attaches a UI consumer to the note list. The returned channel
// immediately carries the latest known snapshot and conflates further
// emissions. Cancel is idempotent.
func (c *Controller) Subscribe() (<-chan []models.Note, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.teardown != nil {
		c.teardown.Stop()
		c.teardown = nil
	}
	if c.upstreamCancel == nil {
		c.attachUpstreamLocked()
	}

	ch := make(chan []models.Note, 1)
	ch <- c.latest
	c.subscribers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subscribers, ch)
			close(ch)
			if len(c.subscribers) == 0 {
				c.armTeardownLocked()
			}
		})
	}

	return ch, cancel
}

// Errors exposes asynchronous mutation failures. The channel conflates: only
// the most recent unconsumed error is retained.
func (c *Controller) Errors() <-chan error {
	return c.errCh
}

// NoteByID loads a single note synchronously.
func (c *Controller) NoteByID(ctx context.Context, id int64) (models.Note, error) {
	return c.service.GetNote(ctx, id)
}

// CreateNote persists a new note off the caller's goroutine. Failures are
// reported through [Controller.Errors].
func (c *Controller) CreateNote(ctx context.Context, note models.Note) {
	go func() {
		if _, err := c.service.CreateNote(ctx, note); err != nil {
			c.reportError(err)
		}
	}()
}

// UpdateNote persists an edit off the caller's goroutine. Failures are
// reported through [Controller.Errors].
func (c *Controller) UpdateNote(ctx context.Context, note models.Note) {
	go func() {
		if _, err := c.service.UpdateNote(ctx, note); err != nil {
			c.reportError(err)
		}
	}()
}

// DeleteNote removes a note off the caller's goroutine. Failures are
// reported through [Controller.Errors].
func (c *Controller) DeleteNote(ctx context.Context, id int64) {
	go func() {
		if err := c.service.DeleteNote(ctx, id); err != nil {
			c.reportError(err)
		}
	}()
}

// Close releases the upstream feed subscription immediately, bypassing the
// grace period. Safe to call multiple times.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.teardown != nil {
		c.teardown.Stop()
		c.teardown = nil
	}
	c.detachUpstreamLocked()
}

// attachUpstreamLocked opens the feed subscription and starts the fan-out
// loop. Caller must hold c.mu.
func (c *Controller) attachUpstreamLocked() {
	upstream, cancel := c.service.Feed().Subscribe()
	done := make(chan struct{})
	c.upstreamCancel = cancel
	c.upstreamDone = done
	c.logger.Debug().Str("func", "attachUpstream").Msg("notes feed attached")

	// the upstream channel arrives primed with the current snapshot; seed
	// the cache now so the first UI subscriber never sees an empty list
	select {
	case notes := <-upstream:
		c.latest = notes
	default:
	}

	go func() {
		defer close(done)
		for notes := range upstream {
			c.mu.Lock()
			c.latest = notes
			for ch := range c.subscribers {
				select {
				case <-ch:
				default:
				}
				ch <- notes
			}
			c.mu.Unlock()
		}
	}()
}

// detachUpstreamLocked cancels the feed subscription and waits for the
// fan-out loop to drain. Caller must hold c.mu.
func (c *Controller) detachUpstreamLocked() {
	if c.upstreamCancel == nil {
		return
	}
	c.upstreamCancel()
	c.upstreamCancel = nil
	done := c.upstreamDone
	c.upstreamDone = nil
	c.logger.Debug().Str("func", "detachUpstream").Msg("notes feed detached")

	// the loop needs the mutex for its final fan-out, so wait unlocked
	c.mu.Unlock()
	<-done
	c.mu.Lock()
}

// armTeardownLocked schedules the upstream detach after the grace period.
// Caller must hold c.mu.
func (c *Controller) armTeardownLocked() {
	if c.upstreamCancel == nil {
		return
	}
	c.teardown = time.AfterFunc(c.grace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.teardown = nil
		if len(c.subscribers) == 0 {
			c.detachUpstreamLocked()
		}
	})
}

func (c *Controller) reportError(err error) {
	c.logger.Err(err).Str("func", "reportError").Msg("background mutation failed")
	select {
	case <-c.errCh:
	default:
	}
	c.errCh <- err
}
