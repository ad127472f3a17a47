package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/d-code000/YetAnotherNote/internal/config"
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/mock"
	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/models"
)

func newTestController(t *testing.T, grace time.Duration) (*Controller, *mock.MockNoteService, *store.NotesFeed) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockNoteService(ctrl)
	feed := store.NewNotesFeed(logger.NewLogger("test"))
	svc.EXPECT().Feed().Return(feed).AnyTimes()

	c := NewController(svc, config.ClientApp{FeedGrace: grace}, logger.NewLogger("test"))
	t.Cleanup(c.Close)
	return c, svc, feed
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSubscribe_DeliversSnapshots(t *testing.T) {
	c, _, feed := newTestController(t, 0)

	ch, cancel := c.Subscribe()
	defer cancel()
	<-ch // initial snapshot

	feed.Publish([]models.Note{{ID: 1, Title: "первая"}})

	select {
	case notes := <-ch:
		if len(notes) != 1 || notes[0].ID != 1 {
			t.Fatalf("unexpected snapshot: %+v", notes)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot emission")
	}
}

func TestSubscribe_FirstEmissionReflectsFeedState(t *testing.T) {
	c, _, feed := newTestController(t, 0)

	feed.Publish([]models.Note{{ID: 4, Title: "четвёртая"}})

	ch, cancel := c.Subscribe()
	defer cancel()

	// the very first receive must already carry the feed's snapshot, not an
	// empty placeholder that a later emission corrects
	select {
	case notes := <-ch:
		if len(notes) != 1 || notes[0].ID != 4 {
			t.Fatalf("expected the current feed snapshot, got %+v", notes)
		}
	default:
		t.Fatal("expected the snapshot to be buffered on subscribe")
	}
}

func TestSelection_DeselectingLastExitsMultiSelect(t *testing.T) {
	c, _, _ := newTestController(t, 0)

	c.EnterMultiSelect()
	c.ToggleSelection(1)
	c.ToggleSelection(2)
	if got := c.SelectedIDs(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("expected selection [1 2], got %v", got)
	}

	c.ToggleSelection(1)
	if got := c.SelectedIDs(); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("expected selection [2], got %v", got)
	}
	if !c.InMultiSelect() {
		t.Fatal("expected multi-select to stay active with one note selected")
	}

	c.ToggleSelection(2)
	if c.SelectionCount() != 0 {
		t.Fatalf("expected empty selection, got %d", c.SelectionCount())
	}
	if c.InMultiSelect() {
		t.Fatal("expected deselecting the last note to exit multi-select")
	}
}

func TestToggleSelection_IgnoredOutsideMultiSelect(t *testing.T) {
	c, _, _ := newTestController(t, 0)

	c.ToggleSelection(5)
	if c.SelectionCount() != 0 {
		t.Fatal("expected toggle outside multi-select to be ignored")
	}
}

func TestDeleteSelected_DeletesBatchAndExitsMultiSelect(t *testing.T) {
	c, svc, _ := newTestController(t, 0)

	done := make(chan struct{})
	svc.EXPECT().
		DeleteNotes(gomock.Any(), []int64{1, 3}).
		DoAndReturn(func(context.Context, []int64) error {
			close(done)
			return nil
		})

	c.EnterMultiSelect()
	c.ToggleSelection(3)
	c.ToggleSelection(1)
	c.DeleteSelected(context.Background())

	<-done
	waitFor(t, "multi-select exit", func() bool { return !c.InMultiSelect() })
	if c.SelectionCount() != 0 {
		t.Fatal("expected selection cleared after batch delete")
	}
}

func TestDeleteSelected_EmptySelectionIsNoOp(t *testing.T) {
	c, _, _ := newTestController(t, 0)

	// no DeleteNotes expectation: any call would fail the test
	c.EnterMultiSelect()
	c.DeleteSelected(context.Background())
}

func TestDeleteSelected_FailureKeepsSelection(t *testing.T) {
	c, svc, _ := newTestController(t, 0)

	wantErr := errors.New("база данных недоступна")
	svc.EXPECT().DeleteNotes(gomock.Any(), []int64{7}).Return(wantErr)

	c.EnterMultiSelect()
	c.ToggleSelection(7)
	c.DeleteSelected(context.Background())

	select {
	case err := <-c.Errors():
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected delete error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an error emission")
	}

	if !c.InMultiSelect() || c.SelectionCount() != 1 {
		t.Fatal("expected selection kept after failed delete")
	}
}

func TestCreateNote_ReportsFailureThroughErrors(t *testing.T) {
	c, svc, _ := newTestController(t, 0)

	wantErr := errors.New("диск переполнен")
	svc.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, wantErr)

	c.CreateNote(context.Background(), models.NewNote("t", "c"))

	select {
	case err := <-c.Errors():
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected create error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an error emission")
	}
}

func TestFeedGrace_KeepsUpstreamWarmAcrossResubscribe(t *testing.T) {
	c, _, feed := newTestController(t, 250*time.Millisecond)

	_, cancel := c.Subscribe()
	waitFor(t, "upstream attach", func() bool { return feed.Subscribers() == 1 })

	// detach and re-attach within the grace period
	cancel()
	time.Sleep(20 * time.Millisecond)
	if feed.Subscribers() != 1 {
		t.Fatal("expected upstream kept warm during the grace period")
	}

	_, cancel2 := c.Subscribe()
	time.Sleep(300 * time.Millisecond)
	if feed.Subscribers() != 1 {
		t.Fatal("expected resubscribe to cancel the pending teardown")
	}

	cancel2()
	waitFor(t, "upstream teardown", func() bool { return feed.Subscribers() == 0 })
}
