package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogBridgeRoundTrip(t *testing.T) {
	b := newDialogBridge(context.Background())
	defer b.close()

	answer := make(chan bool, 1)
	go func() { answer <- b.Confirm("Buy \"x\"?") }()

	msg := b.listen()()
	req, ok := msg.(dialogMsg)
	require.True(t, ok)
	assert.Equal(t, dialogConfirm, req.kind)
	assert.Equal(t, "Buy \"x\"?", req.text)

	dialogRequest(req).answer(true)
	select {
	case got := <-answer:
		assert.True(t, got)
	case <-time.After(time.Second):
		t.Fatal("Confirm did not return")
	}
}

func TestDialogBridgeCancelAnswersNo(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := newDialogBridge(ctx)

	answer := make(chan bool, 1)
	go func() { answer <- b.Confirm("Really delete \"x\"?") }()

	cancel()
	select {
	case got := <-answer:
		assert.False(t, got)
	case <-time.After(time.Second):
		t.Fatal("Confirm did not return after cancel")
	}
	assert.Nil(t, b.listen()(), "listen stops once closed")
}

func TestDialogBridgeNotifyAfterClose(t *testing.T) {
	b := newDialogBridge(context.Background())
	b.close()

	done := make(chan struct{})
	go func() {
		b.Notify("Purchase of \"x\" complete!")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a closed bridge")
	}
}

func TestDialogRequestAnswerWithoutReply(t *testing.T) {
	req := dialogRequest{kind: dialogAlert, text: "local"}
	assert.NotPanics(t, func() { req.answer(true) })
}
