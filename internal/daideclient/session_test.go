package daideclient

import (
	"sync"

	"github.com/freeeve/daide-client/pkg/daide/frame"
	"github.com/freeeve/daide-client/pkg/daide/token"
)

// fakeConn satisfies wireConn without a real socket: Sent records every
// frame pushed by the session, and Feed delivers incoming frames one at a
// time via the Incoming channel.
type fakeConn struct {
	mu   sync.Mutex
	sent []frame.Frame
	in   chan frame.Frame
	err  error
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan frame.Frame, 16)}
}

func (f *fakeConn) Incoming() <-chan frame.Frame { return f.in }

func (f *fakeConn) PushOutgoing(fr frame.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, fr)
	return nil
}

func (f *fakeConn) Err() error { return f.err }

func (f *fakeConn) Sent() []frame.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]frame.Frame, len(f.sent))
	copy(out, f.sent)
	return out
}

// feed pushes a diplomacy message onto the incoming channel as a DM frame.
func (f *fakeConn) feed(msg token.Message) {
	toks := msg.Tokens()
	body := make([]uint16, len(toks))
	for i, t := range toks {
		body[i] = uint16(t)
	}
	f.in <- frame.Frame{Type: frame.TypeDiplomacy, Body: frame.TokensToBody(body)}
}

func lastDiplomacyMessage(fr frame.Frame) (token.Message, error) {
	raw, err := frame.BodyToTokens(fr.Body)
	if err != nil {
		return token.Message{}, err
	}
	toks := make([]token.Token, len(raw))
	for i, u := range raw {
		toks[i] = token.Token(u)
	}
	return token.NewMessage(toks)
}
