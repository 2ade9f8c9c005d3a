package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/codemarket/internal/market"
	"github.com/five82/codemarket/internal/state"
)

type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogAlert
)

// dialogRequest is one modal the Update loop must show. reply is nil for
// dialogs raised by the UI itself.
type dialogRequest struct {
	kind  dialogKind
	text  string
	reply chan bool
}

// dialogBridge implements market.Dialogs for operations running in a command
// goroutine. Each call blocks until the Update loop answers or the bridge is
// closed, in which case the answer is no.
type dialogBridge struct {
	ctx      context.Context
	cancel   context.CancelFunc
	requests chan dialogRequest
}

var _ market.Dialogs = (*dialogBridge)(nil)

func newDialogBridge(parent context.Context) *dialogBridge {
	ctx, cancel := context.WithCancel(parent)
	return &dialogBridge{
		ctx:      ctx,
		cancel:   cancel,
		requests: make(chan dialogRequest),
	}
}

// Confirm implements market.Dialogs.
func (b *dialogBridge) Confirm(message string) bool {
	return b.ask(dialogConfirm, message)
}

// Notify implements market.Dialogs.
func (b *dialogBridge) Notify(message string) {
	b.ask(dialogAlert, message)
}

func (b *dialogBridge) ask(kind dialogKind, text string) bool {
	reply := make(chan bool, 1)
	select {
	case b.requests <- dialogRequest{kind: kind, text: text, reply: reply}:
	case <-b.ctx.Done():
		return false
	}
	select {
	case answer := <-reply:
		return answer
	case <-b.ctx.Done():
		return false
	}
}

func (b *dialogBridge) close() {
	b.cancel()
}

// dialogMsg carries a request from the bridge into Update.
type dialogMsg dialogRequest

// listen waits for the next dialog request. Update re-arms it after every
// request.
func (b *dialogBridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case req := <-b.requests:
			return dialogMsg(req)
		case <-b.ctx.Done():
			return nil
		}
	}
}

// answer sends the user's choice back to a waiting operation.
func (r dialogRequest) answer(ok bool) {
	if r.reply == nil {
		return
	}
	select {
	case r.reply <- ok:
	default:
	}
}

// dispatchedMsg reports a finished dispatch.
type dispatchedMsg struct {
	action   market.Action
	snapshot state.Snapshot
}

// dispatchCmd runs a prompting action off the Update loop so its dialogs can
// be answered.
func dispatchCmd(store *state.Store, a market.Action, d market.Dialogs) tea.Cmd {
	return func() tea.Msg {
		return dispatchedMsg{action: a, snapshot: store.Dispatch(a, d)}
	}
}
