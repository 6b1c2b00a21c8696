package daideclient

import (
	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

// dispatch routes one parsed diplomacy message, grounded on
// original_source/daide_client/base_bot.cpp's process_message/process_*
// family. Most handlers update the session's stored map/state and forward a
// notification to the bot; a handful submit a reply (YES/MDF/SUB) directly.
func (s *Session) dispatch(lead token.Token, msg token.Message) error {
	switch lead {
	case token.CommandHLO:
		return s.handleHLO(msg)
	case token.CommandMAP:
		return s.handleMAP(msg)
	case token.CommandMDF:
		return s.handleMDF(msg)
	case token.CommandSCO:
		return s.handleSCO(msg)
	case token.CommandNOW:
		return s.handleNOW(msg)
	case token.CommandORD:
		return s.handleORD(msg)
	case token.CommandTHX:
		return s.handleTHX(msg)
	case token.CommandCCD:
		return s.handleCCD(msg)
	case token.CommandNOT:
		return s.handleNOT(msg)
	case token.CommandREJ:
		return s.handleREJ(msg)
	case token.CommandYES:
		return s.handleYES(msg)
	case token.CommandFRM:
		return s.handleFRM(msg)
	case token.CommandOFF:
		s.log.Info().Msg("server ended session (OFF)")
		s.stop = true
		return nil
	case token.CommandSLO:
		return s.handleSLO(msg)
	case token.CommandDRW:
		s.bot.OnDRW()
		s.stop = true
		return nil
	case token.CommandSMR:
		return s.handleSMR(msg)
	case token.CommandOUT:
		s.log.Info().Str("power", msg.Submessage(1).Token(0).String()).Msg("power left the game")
		return nil
	case token.CommandHUH:
		s.log.Warn().Str("msg", msg.Text()).Msg("server rejected a message we sent (HUH)")
		return nil
	case token.CommandMIS, token.CommandADM, token.CommandTME, token.CommandSVE, token.CommandLOD:
		s.log.Debug().Str("msg", msg.Text()).Msg("notification, no action taken")
		return nil
	default:
		s.log.Warn().Str("msg", msg.Text()).Msg("unexpected lead token in message")
		return nil
	}
}

// handleHLO stores the power/passcode/variant assignment (process_hlo).
func (s *Session) handleHLO(msg token.Message) error {
	if msg.SubmessageCount() < 3 {
		return nil
	}
	s.power = diplomacy.PowerFromToken(msg.Submessage(1).Token(0))
	s.passcode = msg.Submessage(2).Token(0).Number()
	if msg.SubmessageCount() > 3 {
		s.variant = msg.Submessage(3).Text()
	}
	s.bot.OnHLO(s.power, s.passcode, s.variant)
	return nil
}

// handleMAP stores the map name and, following process_map, immediately asks
// the server for the map definition.
func (s *Session) handleMAP(msg token.Message) error {
	s.mapName = unquote(msg.Submessage(1).Text())
	s.mapRequested = true
	return s.send(token.Single(token.CommandMDF))
}

func unquote(s string) string {
	start, end := -1, -1
	for i, r := range s {
		if r == '\'' {
			if start < 0 {
				start = i
			}
			end = i
		}
	}
	if start >= 0 && end > start {
		return s[start+1 : end]
	}
	return s
}

// handleMDF builds the map, notifies the bot, and — per process_mdf — either
// acks with YES(MAP) or, if the map was requested mid-game, follows up with
// HLO/ORD/SCO/NOW requests.
func (s *Session) handleMDF(msg token.Message) error {
	gmap, err := diplomacy.BuildFromMDF(msg)
	if err != nil {
		return err
	}
	s.gmap = gmap
	s.bot.OnMDF(gmap)

	if !s.mapRequested {
		return s.send(token.Single(token.CommandYES).And(token.Single(token.CommandMAP)))
	}
	s.mapRequested = false
	for _, cmd := range []token.Token{token.CommandHLO, token.CommandORD, token.CommandSCO, token.CommandNOW} {
		if err := s.send(token.Single(cmd)); err != nil {
			return err
		}
	}
	return nil
}

// handleSCO updates supply centre ownership (process_sco/set_ownership).
func (s *Session) handleSCO(msg token.Message) error {
	ownership, err := parseSCO(msg)
	if err != nil {
		return err
	}
	if s.state == nil {
		s.state = &diplomacy.GameState{}
	}
	s.state.SupplyCenters = ownership
	if s.gmap != nil {
		s.bot.OnSCO(s.state, s.gmap)
	}
	return nil
}

// handleNOW stores the position (process_now/set_units), then — if this is a
// phase the bot must order — asks it for orders and submits them as SUB.
func (s *Session) handleNOW(msg token.Message) error {
	season, year, phase, units, dislodged, err := parseNow(msg)
	if err != nil {
		return err
	}
	if s.state == nil {
		s.state = &diplomacy.GameState{SupplyCenters: map[string]diplomacy.Power{}}
	}
	s.state.Season, s.state.Year, s.state.Phase = season, year, phase
	s.state.Units, s.state.Dislodged = units, dislodged

	if s.gmap == nil || s.bot.ObserverOnly() {
		return nil
	}

	switch phase {
	case diplomacy.PhaseMovement:
		return s.submitOrders(s.bot.OnMovementPhase(s.state, s.gmap))
	case diplomacy.PhaseRetreat:
		return s.submitRetreats(s.bot.OnRetreatPhase(s.state, s.gmap))
	case diplomacy.PhaseBuild:
		return s.submitBuilds(s.bot.OnBuildPhase(s.state, s.gmap))
	}
	return nil
}

func (s *Session) submitOrders(orders []diplomacy.Order) error {
	if len(orders) == 0 {
		return nil
	}
	sub := token.Single(token.CommandSUB)
	for _, o := range orders {
		if err := diplomacy.ValidateOrder(o, s.state, s.gmap); err != nil {
			s.log.Error().Err(err).Str("order", o.Describe()).Msg("bot returned an illegal order, skipping")
			continue
		}
		encoded, err := encodeOrder(o, s.state)
		if err != nil {
			s.log.Error().Err(err).Str("order", o.Describe()).Msg("failed to encode order, skipping")
			continue
		}
		sub = sub.And(encoded)
	}
	return s.send(sub)
}

func (s *Session) submitRetreats(orders []diplomacy.RetreatOrder) error {
	if len(orders) == 0 {
		return nil
	}
	sub := token.Single(token.CommandSUB)
	for _, o := range orders {
		encoded, err := encodeRetreat(o)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to encode retreat order, skipping")
			continue
		}
		sub = sub.And(encoded)
	}
	return s.send(sub)
}

func (s *Session) submitBuilds(orders []diplomacy.BuildOrder) error {
	if len(orders) == 0 {
		return nil
	}
	sub := token.Single(token.CommandSUB)
	for _, o := range orders {
		encoded, err := encodeBuild(o)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to encode build order, skipping")
			continue
		}
		sub = sub.And(encoded)
	}
	return s.send(sub)
}

// handleORD records a historical order result (process_ord/store_result) and
// forwards it to the bot. Winter build-phase confirmations (BLD/REM/WVE) are
// logged only: the Bot capability set models order results for the four
// movement-phase order types (hold, move, support, convoy) only, since build-phase results carry no
// adjudication detail worth surfacing beyond the ORD log line itself.
func (s *Session) handleORD(msg token.Message) error {
	if msg.SubmessageCount() < 4 {
		return nil
	}
	orderMsg := msg.Submessage(2)
	leadOrderTok := orderMsg.Submessage(1).Token(0)
	switch leadOrderTok {
	case token.OrderBLD, token.OrderREM, token.OrderWVE:
		s.log.Debug().Str("msg", msg.Text()).Msg("build-phase order result")
		return nil
	}

	order, err := parseOrderMessage(orderMsg)
	if err != nil {
		s.log.Debug().Err(err).Str("msg", msg.Text()).Msg("could not decode ORD order, dropping")
		return nil
	}
	result := resultFromToken(msg.Submessage(3).Token(0))
	s.bot.OnORD(order, result)
	return nil
}

// handleTHX replaces a rejected order with the repair THX names, grounded on
// process_thx_message's note->repair-order table.
func (s *Session) handleTHX(msg token.Message) error {
	if msg.SubmessageCount() < 3 {
		return nil
	}
	order := msg.Submessage(1)
	unit := order.Submessage(0).Enclose()
	note := msg.Submessage(2).Token(0)

	var repaired token.Message
	switch note {
	case token.NoteMBV, token.NoteNYU, token.NoteNRS, token.NoteNRN, token.NoteNMB, token.NoteNMR:
		return nil
	case token.NoteFAR, token.NoteNSP, token.NoteNSU, token.NoteNAS, token.NoteNSF, token.NoteNSA:
		repaired = unit.ConcatToken(token.OrderHLD)
	case token.NoteNVR:
		repaired = unit.ConcatToken(token.OrderDSB)
	case token.NoteYSC, token.NoteESC, token.NoteHSC, token.NoteNSC, token.NoteCST:
		repaired = order.Submessage(0).ConcatToken(token.OrderWVE)
	default:
		s.log.Warn().Str("msg", msg.Text()).Msg("THX returned an unrecognized note, no replacement order sent")
		return nil
	}
	s.log.Warn().Str("order", order.Text()).Str("replacement", repaired.Text()).Msg("THX rejected order, resubmitting repaired order")
	return s.send(repaired)
}

func (s *Session) handleCCD(msg token.Message) error {
	if msg.SubmessageCount() < 2 {
		return nil
	}
	power := diplomacy.PowerFromToken(msg.Submessage(1).Token(0))
	reduced := s.press.onCivilDisorder(power)
	for _, rec := range reduced {
		if len(rec.currentPowers) == 0 {
			s.press.remove(rec.id)
		}
	}
	s.bot.OnCCD(power, true)
	return nil
}

func (s *Session) handleNOT(msg token.Message) error {
	if msg.SubmessageCount() < 2 {
		return nil
	}
	inner := msg.Submessage(1)
	switch inner.Token(0) {
	case token.CommandCCD:
		s.log.Debug().Str("power", inner.Submessage(1).Token(0).String()).Msg("power reconnected")
	case token.CommandTME:
		s.log.Debug().Msg("scheduled time notification cancelled")
	}
	return nil
}

func (s *Session) handleREJ(msg token.Message) error {
	if msg.SubmessageCount() < 2 {
		return nil
	}
	inner := msg.Submessage(1)
	switch inner.Token(0) {
	case token.CommandSND:
		if inner.SubmessageCount() >= 3 {
			powers := powersFromMessage(inner.Submessage(1))
			s.press.removeMatching(powers, inner.Submessage(2))
		}
	case token.CommandNME:
		s.log.Error().Msg("server rejected our NME, stopping session")
		s.stop = true
	default:
		s.log.Warn().Str("msg", msg.Text()).Msg("server rejected a request")
	}
	return nil
}

func (s *Session) handleYES(msg token.Message) error {
	if msg.SubmessageCount() < 2 {
		return nil
	}
	inner := msg.Submessage(1)
	if inner.Token(0) == token.CommandSND && inner.SubmessageCount() >= 3 {
		powers := powersFromMessage(inner.Submessage(1))
		s.press.removeMatching(powers, inner.Submessage(2))
	}
	return nil
}

func powersFromMessage(m token.Message) []diplomacy.Power {
	out := make([]diplomacy.Power, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		out = append(out, diplomacy.PowerFromToken(m.Token(i)))
	}
	return out
}

// handleFRM replies HUH/TRY to a press message we can't interpret, the same
// default process_frm_message falls back to. Unlike the reference, the
// sender power is read from the real submessage(1) rather than a
// default-constructed placeholder token — the reference reads from_power
// before message_id is assigned, which is a bug this client does not
// reproduce.
func (s *Session) handleFRM(msg token.Message) error {
	if msg.SubmessageCount() < 4 {
		return nil
	}
	sender := msg.Submessage(1).Token(0)
	press := msg.Submessage(3)
	lead := press.Token(0)
	if lead == token.CommandHUH || lead == token.PressTRY {
		return nil
	}
	huh := token.Single(token.CommandSND).AndToken(sender).And(
		token.Single(token.CommandHUH).And(token.Single(token.ParamERR).Concat(press)))
	if err := s.send(huh); err != nil {
		return err
	}
	try := token.Single(token.CommandSND).AndToken(sender).And(token.Single(token.PressTRY))
	return s.send(try)
}

func (s *Session) handleSLO(msg token.Message) error {
	if msg.SubmessageCount() < 2 {
		s.stop = true
		return nil
	}
	winner := diplomacy.PowerFromToken(msg.Submessage(1).Token(0))
	s.bot.OnSLO(winner)
	s.stop = true
	return nil
}

func (s *Session) handleSMR(msg token.Message) error {
	if s.state != nil {
		s.bot.OnSMR(s.state)
	}
	s.stop = true
	return nil
}
