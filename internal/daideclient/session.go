// Package daideclient implements the single-threaded, cooperative client
// protocol engine a bot runs on top of: it drives the initial handshake,
// dispatches incoming diplomacy messages to the handlers in dispatch.go, and
// submits whatever orders the bot produces back to the server.
package daideclient

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freeeve/daide-client/internal/daidebot"
	"github.com/freeeve/daide-client/pkg/daide/frame"
	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

const (
	initialMessageVersion = 1
	initialMessageMagic   = 0xDA10
)

// wireConn is the subset of *frame.Conn the session needs. Tests satisfy it
// with a fake so dispatch logic can run without a real socket.
type wireConn interface {
	Incoming() <-chan frame.Frame
	PushOutgoing(frame.Frame) error
	Err() error
}

// Session drives one DAIDE connection for one bot. It owns no goroutines of
// its own: Run blocks the caller's goroutine in the cooperative loop spec §5
// describes, relying on the wireConn's own reader/writer goroutines for I/O.
type Session struct {
	conn wireConn
	bot  daidebot.Bot
	log  zerolog.Logger

	power        diplomacy.Power
	passcode     int
	variant      string
	mapName      string
	mapRequested bool

	reconnectPower    string
	reconnectPasscode int

	gmap  *diplomacy.DiplomacyMap
	state *diplomacy.GameState

	press *pressBook

	stop bool
}

// NewSession wires a bot onto a connection.
func NewSession(conn wireConn, bot daidebot.Bot, log zerolog.Logger) *Session {
	return &Session{
		conn:  conn,
		bot:   bot,
		log:   log.With().Str("bot", bot.Name()).Logger(),
		press: newPressBook(),
	}
}

// SetReconnect makes the session send IAM(power, passcode) instead of
// NME/OBS on connect, for rejoining a game already in progress (spec §6's
// -r<POW>:<passcode> flag).
func (s *Session) SetReconnect(power string, passcode int) {
	s.reconnectPower, s.reconnectPasscode = power, passcode
}

// Run performs the initial handshake, then services incoming frames until
// ctx is cancelled, the connection ends, or the server sends a session-ending
// message (OFF/SMR/SLO/DRW/FM).
func (s *Session) Run(ctx context.Context) error {
	if err := s.sendInitial(); err != nil {
		return fmt.Errorf("daideclient: initial handshake: %w", err)
	}
	if err := s.sendNmeOrObs(); err != nil {
		return fmt.Errorf("daideclient: send NME/OBS: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-s.conn.Incoming():
			if !ok {
				return s.conn.Err()
			}
			if err := s.handleFrame(f); err != nil {
				s.log.Error().Err(err).Msg("handling frame")
			}
			if s.stop {
				return nil
			}
		}
	}
}

func (s *Session) sendInitial() error {
	body := make([]byte, 4)
	binary.BigEndian.PutUint16(body[0:2], initialMessageVersion)
	binary.BigEndian.PutUint16(body[2:4], initialMessageMagic)
	return s.conn.PushOutgoing(frame.Frame{Type: frame.TypeInitial, Body: body})
}

func (s *Session) sendNmeOrObs() error {
	if s.reconnectPower != "" {
		pt, ok := powerTokenFromCode(s.reconnectPower)
		if !ok {
			return fmt.Errorf("daideclient: unknown power code %q for reconnect", s.reconnectPower)
		}
		passcodeTok, err := token.NewNumber(s.reconnectPasscode)
		if err != nil {
			return err
		}
		return s.send(token.Single(token.CommandIAM).And(token.Single(pt)).And(token.Single(passcodeTok)))
	}
	if s.bot.ObserverOnly() {
		return s.send(token.Single(token.CommandOBS))
	}
	nameToks, err := token.ParseText("'" + s.bot.Name() + "'")
	if err != nil {
		return err
	}
	verToks, err := token.ParseText("'" + s.bot.Version() + "'")
	if err != nil {
		return err
	}
	nameMsg, _ := token.NewMessage(nameToks)
	verMsg, _ := token.NewMessage(verToks)
	msg := token.Single(token.CommandNME).And(nameMsg).And(verMsg)
	return s.send(msg)
}

func (s *Session) send(msg token.Message) error {
	s.log.Debug().Str("msg", msg.Text()).Msg("-> server")
	toks := msg.Tokens()
	body := make([]uint16, len(toks))
	for i, t := range toks {
		body[i] = uint16(t)
	}
	return s.conn.PushOutgoing(frame.Frame{Type: frame.TypeDiplomacy, Body: frame.TokensToBody(body)})
}

func (s *Session) handleFrame(f frame.Frame) error {
	switch f.Type {
	case frame.TypeInitial:
		return fmt.Errorf("unexpected IM frame from server")
	case frame.TypeRepresentation:
		s.log.Debug().Msg("representation message received")
		return nil
	case frame.TypeDiplomacy:
		return s.handleDiplomacyBody(f.Body)
	case frame.TypeFinal:
		s.log.Info().Msg("final message received, closing session")
		s.stop = true
		return nil
	case frame.TypeError:
		var code uint16
		if len(f.Body) >= 2 {
			code = binary.BigEndian.Uint16(f.Body)
		}
		s.stop = true
		return fmt.Errorf("error message from server, code %d", code)
	default:
		return fmt.Errorf("unexpected frame type %v", f.Type)
	}
}

func (s *Session) handleDiplomacyBody(body []byte) error {
	raw, err := frame.BodyToTokens(body)
	if err != nil {
		return err
	}
	toks := make([]token.Token, len(raw))
	for i, u := range raw {
		toks[i] = token.Token(u)
	}
	if len(toks) > 0 && toks[0] == token.CommandPRN {
		s.log.Warn().Msg("server reported bad parentheses in a message we sent (PRN)")
		return nil
	}
	msg, err := token.NewMessage(toks)
	if err != nil {
		return err
	}
	s.log.Debug().Str("msg", msg.Text()).Msg("<- server")
	if msg.Len() == 0 || !msg.SubmessageIsSingleToken(0) {
		return fmt.Errorf("illegal message: does not start with a single lead token: %q", msg.Text())
	}
	return s.dispatch(msg.First(), msg)
}
