package state

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/codemarket/internal/market"
)

type answerAll struct {
	answer bool
	notes  []string
}

func (a *answerAll) Confirm(string) bool { return a.answer }
func (a *answerAll) Notify(m string)     { a.notes = append(a.notes, m) }

// gatedDialogs blocks Confirm until release is closed.
type gatedDialogs struct {
	asked   chan string
	release chan bool
}

func (g *gatedDialogs) Confirm(m string) bool {
	g.asked <- m
	return <-g.release
}
func (g *gatedDialogs) Notify(string) {}

func seedStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(market.NewState([]market.Listing{
		{ID: 1, Title: "A", Price: 15000, Code: "a", Description: "d", Language: "JavaScript"},
	}), zerolog.Nop())
}

func TestStore_DispatchPublishesAndBumpsRevision(t *testing.T) {
	s := seedStore(t)
	require.Equal(t, uint64(0), s.Snapshot().Revision)

	before := time.Now()
	snap := s.Dispatch(market.Create{Draft: market.Draft{Title: "B", Price: 5000, Code: "x", Description: "y", Language: "JS"}}, nil)

	assert.Equal(t, uint64(1), snap.Revision)
	assert.Equal(t, "create", snap.LastAction)
	assert.False(t, snap.LastUpdated.Before(before))
	assert.True(t, snap.State.Selected.Is(2))
	assert.Equal(t, snap, s.Snapshot())
}

func TestStore_NoChangeKeepsRevision(t *testing.T) {
	s := seedStore(t)

	snap := s.Dispatch(market.Delete{}, &answerAll{answer: false})
	assert.Equal(t, uint64(0), snap.Revision)
	assert.Equal(t, "delete", snap.LastAction)
	assert.Equal(t, 1, snap.State.Count())
}

func TestStore_SnapshotIsIndependentCopy(t *testing.T) {
	s := seedStore(t)

	snap := s.Snapshot()
	snap.State.Listings[0].Title = "mutated"

	assert.Equal(t, "A", s.Snapshot().State.Listings[0].Title)
}

func TestStore_PurchaseThenRepeat(t *testing.T) {
	s := seedStore(t)
	d := &answerAll{answer: true}

	first := s.Dispatch(market.Purchase{}, d)
	second := s.Dispatch(market.Purchase{}, d)

	l, ok := second.State.Find(1)
	require.True(t, ok)
	assert.True(t, l.SoldOut)
	assert.Equal(t, first.Revision, second.Revision)
	assert.Equal(t, []string{market.Purchased("A"), market.AlreadyPurchased}, d.notes)
}

func TestStore_SnapshotDoesNotWaitForDialog(t *testing.T) {
	s := seedStore(t)
	g := &gatedDialogs{asked: make(chan string, 1), release: make(chan bool)}

	done := make(chan Snapshot, 1)
	go func() { done <- s.Dispatch(market.Purchase{}, g) }()

	select {
	case msg := <-g.asked:
		assert.Equal(t, market.ConfirmPurchase("A"), msg)
	case <-time.After(time.Second):
		t.Fatal("purchase never asked for confirmation")
	}

	// The confirmation is open; readers see the pre-purchase state.
	l, _ := s.Snapshot().State.Find(1)
	assert.False(t, l.SoldOut)

	close(g.release)
	select {
	case snap := <-done:
		// A closed channel reads as false: the purchase was declined.
		l, _ := snap.State.Find(1)
		assert.False(t, l.SoldOut)
	case <-time.After(time.Second):
		t.Fatal("dispatch did not finish after the dialog closed")
	}
}

func TestStore_DispatchesAreSerialised(t *testing.T) {
	s := seedStore(t)
	g := &gatedDialogs{asked: make(chan string, 1), release: make(chan bool, 1)}

	go s.Dispatch(market.Purchase{}, g)
	<-g.asked

	selected := make(chan Snapshot, 1)
	go func() { selected <- s.Dispatch(market.Deselect{}, nil) }()

	select {
	case <-selected:
		t.Fatal("second dispatch ran while the first was waiting on a dialog")
	case <-time.After(50 * time.Millisecond):
	}

	g.release <- true
	snap := <-selected
	assert.True(t, snap.State.Selected.IsNone())
	l, _ := snap.State.Find(1)
	assert.True(t, l.SoldOut, "purchase completed before deselect ran")
}

func TestStore_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	s := NewStore(market.NewState(nil), zerolog.New(&buf).Level(zerolog.InfoLevel))

	s.Dispatch(market.Create{Draft: market.Draft{Title: "B", Price: 1, Code: "x", Description: "y"}}, nil)
	s.Dispatch(market.Delete{}, &answerAll{answer: false})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "unchanged dispatches log at debug")
	assert.Contains(t, lines[0], `"action":"create"`)
	assert.Contains(t, lines[0], `"listing_id":1`)
	assert.Contains(t, lines[0], `"message":"listing created"`)
	assert.Contains(t, lines[0], `"component":"store"`)
}
