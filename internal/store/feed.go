package store

import (
	"sync"

	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/models"
)

// NotesFeed is an in-process broadcast hub for the note list. The repository
// publishes a fresh snapshot after every successful mutation; subscribers
// receive snapshots over a conflating channel, so a slow consumer only ever
// lags by one emission and always catches up to the latest state.
type NotesFeed struct {
	mu          sync.Mutex
	refreshMu   sync.Mutex
	current     []models.Note
	subscribers map[chan []models.Note]struct{}
	logger      *logger.Logger
}

// NewNotesFeed constructs an empty feed. Callers should publish an initial
// snapshot before handing the feed to subscribers, otherwise the first
// emission is an empty list.
func NewNotesFeed(log *logger.Logger) *NotesFeed {
	return &NotesFeed{
		current:     make([]models.Note, 0),
		subscribers: make(map[chan []models.Note]struct{}),
		logger:      log,
	}
}

// Subscribe registers a new consumer and returns its channel together with a
// cancel function. The channel immediately carries the current snapshot.
// Cancel is idempotent and closes the channel.
func (f *NotesFeed) Subscribe() (<-chan []models.Note, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan []models.Note, 1)
	ch <- f.current
	f.subscribers[ch] = struct{}{}
	f.logger.Debug().Str("func", "Subscribe").Int("subscribers", len(f.subscribers)).Msg("feed subscriber added")

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subscribers, ch)
			close(ch)
			f.logger.Debug().Str("func", "Subscribe").Int("subscribers", len(f.subscribers)).Msg("feed subscriber removed")
		})
	}

	return ch, cancel
}

// Publish replaces the current snapshot and fans it out to all subscribers.
// Delivery conflates: if a subscriber has not consumed the previous snapshot
// yet, it is dropped in favour of the new one. Publish never blocks.
//
// Subscribers must treat received slices as read-only.
func (f *NotesFeed) Publish(notes []models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.current = notes
	for ch := range f.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- notes
	}
}

// Refresh loads a snapshot and publishes it as one serialized step.
// Concurrent mutations each reload after their own commit; without the
// serialization a mutation that read earlier could publish last, leaving the
// feed holding a snapshot that misses a completed mutation.
func (f *NotesFeed) Refresh(load func() ([]models.Note, error)) error {
	f.refreshMu.Lock()
	defer f.refreshMu.Unlock()

	notes, err := load()
	if err != nil {
		return err
	}
	f.Publish(notes)
	return nil
}

// Subscribers returns the number of active subscriptions.
func (f *NotesFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers)
}
