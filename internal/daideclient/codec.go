package daideclient

import (
	"fmt"

	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

// This file is the wire<->Order codec for the client, grounded on
// original_source/daide_client/map_and_units.cpp's describe_unit/
// describe_movement_order/describe_retreat_order/build_sub_command (encode
// direction) and decode_order/process_now_unit/process_sco_for_power
// (decode direction).

func msgOf(toks ...token.Token) token.Message {
	m, err := token.NewMessage(toks)
	if err != nil {
		panic(err)
	}
	return m
}

// powerTokenFromCode maps a 3-letter power code (as used by the -r reconnect
// flag) to its wire token.
func powerTokenFromCode(code string) (token.Token, bool) {
	switch code {
	case "AUS":
		return token.PowerAUS, true
	case "ENG":
		return token.PowerENG, true
	case "FRA":
		return token.PowerFRA, true
	case "GER":
		return token.PowerGER, true
	case "ITA":
		return token.PowerITA, true
	case "RUS":
		return token.PowerRUS, true
	case "TUR":
		return token.PowerTUR, true
	}
	return 0, false
}

func unitTypeToken(u diplomacy.UnitType) token.Token {
	if u == diplomacy.Fleet {
		return token.UnitFLT
	}
	return token.UnitAMY
}

func unitTypeFromToken(t token.Token) diplomacy.UnitType {
	if t == token.UnitFLT {
		return diplomacy.Fleet
	}
	return diplomacy.Army
}

// encodeLocation renders a province (+ optional coast) the way describe_coast
// does: a bare province token, or an enclosed (province coast) pair when a
// coast is present.
func encodeLocation(province string, coast diplomacy.Coast) (token.Message, error) {
	pt, ok := diplomacy.ProvinceToToken(province)
	if !ok {
		return token.Message{}, fmt.Errorf("daideclient: unknown province %q", province)
	}
	if coast == diplomacy.NoCoast {
		return token.Single(pt), nil
	}
	ct := diplomacy.CoastToToken(coast)
	return msgOf(pt, ct).Enclose(), nil
}

func parseLocation(loc token.Message) (string, diplomacy.Coast, error) {
	if loc.Len() == 0 {
		return "", diplomacy.NoCoast, fmt.Errorf("daideclient: empty location")
	}
	id, ok := diplomacy.ProvinceFromToken(loc.Token(0))
	if !ok {
		return "", diplomacy.NoCoast, fmt.Errorf("daideclient: unknown province token %s", loc.Token(0))
	}
	if loc.Len() == 1 {
		return id, diplomacy.NoCoast, nil
	}
	return id, diplomacy.CoastFromToken(loc.Token(1)), nil
}

// encodeUnit builds the bracketed (power unittype location) group
// describe_unit produces.
func encodeUnit(power diplomacy.Power, unitType diplomacy.UnitType, province string, coast diplomacy.Coast) (token.Message, error) {
	pw, ok := diplomacy.PowerToToken(power)
	if !ok {
		return token.Message{}, fmt.Errorf("daideclient: power %v has no wire token", power)
	}
	loc, err := encodeLocation(province, coast)
	if err != nil {
		return token.Message{}, err
	}
	return token.Single(pw).ConcatToken(unitTypeToken(unitType)).Concat(loc).Enclose(), nil
}

func parseUnitDescriptor(unit token.Message) (diplomacy.Power, diplomacy.UnitType, string, diplomacy.Coast, error) {
	if unit.SubmessageCount() < 3 {
		return diplomacy.Neutral, diplomacy.Army, "", diplomacy.NoCoast, fmt.Errorf("daideclient: malformed unit descriptor %q", unit.Text())
	}
	power := diplomacy.PowerFromToken(unit.Token(0))
	unitType := unitTypeFromToken(unit.Token(1))
	province, coast, err := parseLocation(unit.Submessage(2))
	if err != nil {
		return diplomacy.Neutral, diplomacy.Army, "", diplomacy.NoCoast, err
	}
	return power, unitType, province, coast, nil
}

// encodeOrder renders a movement-phase order the way describe_movement_order
// does. Support and convoy orders need gs to recover the aux unit's power,
// since Order only tracks the aux unit's type and location.
func encodeOrder(o diplomacy.Order, gs *diplomacy.GameState) (token.Message, error) {
	unit, err := encodeUnit(o.Power, o.UnitType, o.Location, o.Coast)
	if err != nil {
		return token.Message{}, err
	}

	switch o.Type {
	case diplomacy.OrderHold:
		return unit.ConcatToken(token.OrderHLD), nil

	case diplomacy.OrderMove:
		dest, err := encodeLocation(o.Target, o.TargetCoast)
		if err != nil {
			return token.Message{}, err
		}
		// Every move is encoded as MTO. Order carries no "via convoy" flag,
		// so a move to a non-adjacent province goes out as MTO too; CTO and
		// VIA are never produced here.
		orderTok := token.OrderMTO
		return unit.ConcatToken(orderTok).Concat(dest), nil

	case diplomacy.OrderSupport:
		auxUnit := gs.UnitAt(o.AuxLoc)
		if auxUnit == nil {
			return token.Message{}, fmt.Errorf("daideclient: no unit at %s to support", o.AuxLoc)
		}
		auxMsg, err := encodeUnit(auxUnit.Power, o.AuxUnitType, o.AuxLoc, auxUnit.Coast)
		if err != nil {
			return token.Message{}, err
		}
		base := unit.ConcatToken(token.OrderSUP).Concat(auxMsg)
		if o.AuxTarget == "" {
			return base, nil
		}
		destTok, ok := diplomacy.ProvinceToToken(o.AuxTarget)
		if !ok {
			return token.Message{}, fmt.Errorf("daideclient: unknown province %q", o.AuxTarget)
		}
		return base.ConcatToken(token.OrderMTO).ConcatToken(destTok), nil

	case diplomacy.OrderConvoy:
		auxUnit := gs.UnitAt(o.AuxLoc)
		if auxUnit == nil {
			return token.Message{}, fmt.Errorf("daideclient: no unit at %s to convoy", o.AuxLoc)
		}
		auxMsg, err := encodeUnit(auxUnit.Power, diplomacy.Army, o.AuxLoc, diplomacy.NoCoast)
		if err != nil {
			return token.Message{}, err
		}
		destTok, ok := diplomacy.ProvinceToToken(o.AuxTarget)
		if !ok {
			return token.Message{}, fmt.Errorf("daideclient: unknown province %q", o.AuxTarget)
		}
		return unit.ConcatToken(token.OrderCVY).Concat(auxMsg).ConcatToken(token.OrderCTO).ConcatToken(destTok), nil
	}
	return token.Message{}, fmt.Errorf("daideclient: unencodable order type %v", o.Type)
}

func encodeRetreat(o diplomacy.RetreatOrder) (token.Message, error) {
	unit, err := encodeUnit(o.Power, o.UnitType, o.Location, o.Coast)
	if err != nil {
		return token.Message{}, err
	}
	switch o.Type {
	case diplomacy.RetreatDisband:
		return unit.ConcatToken(token.OrderDSB), nil
	case diplomacy.RetreatMove:
		dest, err := encodeLocation(o.Target, o.TargetCoast)
		if err != nil {
			return token.Message{}, err
		}
		return unit.ConcatToken(token.OrderRTO).Concat(dest), nil
	}
	return token.Message{}, fmt.Errorf("daideclient: unencodable retreat order type %v", o.Type)
}

func encodeBuild(o diplomacy.BuildOrder) (token.Message, error) {
	pw, ok := diplomacy.PowerToToken(o.Power)
	if !ok {
		return token.Message{}, fmt.Errorf("daideclient: power %v has no wire token", o.Power)
	}
	switch o.Type {
	case diplomacy.WaiveBuild:
		return token.Single(pw).ConcatToken(token.OrderWVE), nil
	case diplomacy.BuildUnit:
		unit, err := encodeUnit(o.Power, o.UnitType, o.Location, o.Coast)
		if err != nil {
			return token.Message{}, err
		}
		return unit.ConcatToken(token.OrderBLD), nil
	case diplomacy.DisbandUnit:
		unit, err := encodeUnit(o.Power, o.UnitType, o.Location, diplomacy.NoCoast)
		if err != nil {
			return token.Message{}, err
		}
		return unit.ConcatToken(token.OrderREM), nil
	}
	return token.Message{}, fmt.Errorf("daideclient: unencodable build order type %v", o.Type)
}

// seasonPhaseFromToken maps a DAIDE season token onto the (Season, PhaseType)
// tuple pkg/diplomacy uses internally: SPR/FAL are the two movement seasons,
// SUM/AUT are their respective retreat phases, and WIN is the single build
// phase, folded onto Fall/Build the same way AdvanceState's afterMovement
// does after a Fall movement turn.
func seasonPhaseFromToken(t token.Token) (diplomacy.Season, diplomacy.PhaseType, bool) {
	switch t {
	case token.SeasonSPR:
		return diplomacy.Spring, diplomacy.PhaseMovement, true
	case token.SeasonSUM:
		return diplomacy.Spring, diplomacy.PhaseRetreat, true
	case token.SeasonFAL:
		return diplomacy.Fall, diplomacy.PhaseMovement, true
	case token.SeasonAUT:
		return diplomacy.Fall, diplomacy.PhaseRetreat, true
	case token.SeasonWIN:
		return diplomacy.Fall, diplomacy.PhaseBuild, true
	}
	return "", "", false
}

// parseNow decodes a NOW message per process_now_unit: submessage 1 is
// (season year), submessages 2.. are unit records, each either a live unit
// or — when it has 5 submessages — a dislodged one carrying an MRT retreat
// option list. The option list itself is not retained: our DislodgedUnit
// tracks the single excluded square (AttackerFrom) rather than a full legal
// set, so a wire-sourced dislodgement leaves AttackerFrom empty and relies on
// the occupied/adjacency checks ValidateRetreatOrder already applies (a
// simplification: the server's MRT list is dropped).
func parseNow(msg token.Message) (diplomacy.Season, int, diplomacy.PhaseType, []diplomacy.Unit, []diplomacy.DislodgedUnit, error) {
	if msg.SubmessageCount() < 2 {
		return "", 0, "", nil, nil, fmt.Errorf("daideclient: malformed NOW message")
	}
	turn := msg.Submessage(1)
	if turn.Len() < 2 {
		return "", 0, "", nil, nil, fmt.Errorf("daideclient: malformed NOW turn submessage")
	}
	season, phase, ok := seasonPhaseFromToken(turn.Token(0))
	if !ok {
		return "", 0, "", nil, nil, fmt.Errorf("daideclient: unknown season token %s", turn.Token(0))
	}
	year := turn.Token(1).Number()

	var units []diplomacy.Unit
	var dislodged []diplomacy.DislodgedUnit
	for i := 2; i < msg.SubmessageCount(); i++ {
		sub := msg.Submessage(i)
		if sub.SubmessageCount() < 3 {
			continue
		}
		power := diplomacy.PowerFromToken(sub.Token(0))
		unitType := unitTypeFromToken(sub.Token(1))
		province, coast, err := parseLocation(sub.Submessage(2))
		if err != nil {
			return "", 0, "", nil, nil, err
		}
		if sub.SubmessageCount() >= 5 {
			dislodged = append(dislodged, diplomacy.DislodgedUnit{
				Unit:          diplomacy.Unit{Power: power, Type: unitType, Province: province, Coast: coast},
				DislodgedFrom: province,
			})
			continue
		}
		units = append(units, diplomacy.Unit{Power: power, Type: unitType, Province: province, Coast: coast})
	}
	return season, year, phase, units, dislodged, nil
}

// parseSCO decodes an SCO message per process_sco_for_power: submessages 1..
// are each (power province province...). Tokens that aren't one of the seven
// great powers (the unowned-centres block uses PARAM_UNO) come back as
// Neutral from PowerFromToken, which is exactly the ownership an unowned
// centre should have.
func parseSCO(msg token.Message) (map[string]diplomacy.Power, error) {
	out := make(map[string]diplomacy.Power)
	for i := 1; i < msg.SubmessageCount(); i++ {
		sub := msg.Submessage(i)
		if sub.Len() == 0 {
			continue
		}
		owner := diplomacy.PowerFromToken(sub.Token(0))
		for j := 1; j < sub.Len(); j++ {
			id, ok := diplomacy.ProvinceFromToken(sub.Token(j))
			if !ok {
				continue
			}
			out[id] = owner
		}
	}
	return out, nil
}

// parseOrderMessage decodes an order submessage the way decode_order does,
// inverting encodeOrder. Winter (build-phase) order tokens are handled by the
// caller separately since they describe a BuildOrder, not an Order.
func parseOrderMessage(order token.Message) (diplomacy.Order, error) {
	if order.SubmessageCount() < 2 {
		return diplomacy.Order{}, fmt.Errorf("daideclient: malformed order message %q", order.Text())
	}
	power, unitType, province, coast, err := parseUnitDescriptor(order.Submessage(0))
	if err != nil {
		return diplomacy.Order{}, err
	}
	base := diplomacy.Order{Power: power, UnitType: unitType, Location: province, Coast: coast}

	orderTok := order.Submessage(1).Token(0)
	switch orderTok {
	case token.OrderHLD:
		base.Type = diplomacy.OrderHold
		return base, nil

	case token.OrderMTO, token.OrderCTO:
		if order.SubmessageCount() < 3 {
			return diplomacy.Order{}, fmt.Errorf("daideclient: move order missing destination")
		}
		dest, destCoast, err := parseLocation(order.Submessage(2))
		if err != nil {
			return diplomacy.Order{}, err
		}
		base.Type = diplomacy.OrderMove
		base.Target, base.TargetCoast = dest, destCoast
		return base, nil

	case token.OrderSUP:
		if order.SubmessageCount() < 3 {
			return diplomacy.Order{}, fmt.Errorf("daideclient: support order missing supported unit")
		}
		_, auxType, auxLoc, _, err := parseUnitDescriptor(order.Submessage(2))
		if err != nil {
			return diplomacy.Order{}, err
		}
		base.Type = diplomacy.OrderSupport
		base.AuxUnitType, base.AuxLoc = auxType, auxLoc
		if order.SubmessageCount() >= 5 && order.Submessage(3).Token(0) == token.OrderMTO {
			destID, ok := diplomacy.ProvinceFromToken(order.Submessage(4).Token(0))
			if ok {
				base.AuxTarget = destID
			}
		}
		return base, nil

	case token.OrderCVY:
		if order.SubmessageCount() < 5 {
			return diplomacy.Order{}, fmt.Errorf("daideclient: convoy order missing army or destination")
		}
		_, _, auxLoc, _, err := parseUnitDescriptor(order.Submessage(2))
		if err != nil {
			return diplomacy.Order{}, err
		}
		destID, ok := diplomacy.ProvinceFromToken(order.Submessage(4).Token(0))
		if !ok {
			return diplomacy.Order{}, fmt.Errorf("daideclient: unknown convoy destination")
		}
		base.Type = diplomacy.OrderConvoy
		base.AuxUnitType = diplomacy.Army
		base.AuxLoc, base.AuxTarget = auxLoc, destID
		return base, nil
	}
	return diplomacy.Order{}, fmt.Errorf("daideclient: unrecognized order token %s", orderTok)
}

// resultFromToken maps a wire result/note token onto OrderResult. Only the
// handful of tokens an ORD result submessage leads with are covered; the
// rest (dislodge retreat-option lists, for instance) are carried in
// subsequent tokens this client does not retain.
func resultFromToken(t token.Token) diplomacy.OrderResult {
	switch t {
	case token.ResultSUC:
		return diplomacy.ResultSucceeded
	case token.ResultBNC:
		return diplomacy.ResultBounced
	case token.ResultCUT:
		return diplomacy.ResultCut
	case token.ResultDSR:
		return diplomacy.ResultDislodged
	case token.ResultFLD, token.ResultNSO:
		return diplomacy.ResultFailed
	default:
		return diplomacy.ResultVoid
	}
}
