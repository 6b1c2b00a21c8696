package daideclient

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/freeeve/daide-client/internal/daidebot"
	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

func newTestSession(bot daidebot.Bot) (*Session, *fakeConn) {
	conn := newFakeConn()
	return NewSession(conn, bot, zerolog.Nop()), conn
}

func TestHandleHLOStoresPowerAndNotifiesBot(t *testing.T) {
	s, _ := newTestSession(daidebot.NewHoldBot())
	hlo := msgOf(token.CommandHLO).
		Concat(token.Single(token.PowerFRA).Enclose()).
		Concat(token.Single(mustNumber(t, 4321)).Enclose())

	if err := s.dispatch(hlo.First(), hlo); err != nil {
		t.Fatalf("dispatch HLO: %v", err)
	}
	if s.power != diplomacy.France || s.passcode != 4321 {
		t.Fatalf("unexpected session state: power=%v passcode=%d", s.power, s.passcode)
	}
}

func TestHandleMAPRequestsMDF(t *testing.T) {
	s, conn := newTestSession(daidebot.NewHoldBot())
	mapMsg, err := token.FromText("MAP 'standard'")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if err := s.dispatch(mapMsg.First(), mapMsg); err != nil {
		t.Fatalf("dispatch MAP: %v", err)
	}
	if s.mapName != "standard" {
		t.Fatalf("expected map name standard, got %q", s.mapName)
	}
	sent := conn.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 sent frame, got %d", len(sent))
	}
	got, err := lastDiplomacyMessage(sent[0])
	if err != nil {
		t.Fatalf("decode sent frame: %v", err)
	}
	if got.First() != token.CommandMDF {
		t.Fatalf("expected MDF request, got %q", got.Text())
	}
}

func TestHandleMDFBuildsMapAndAcksWhenUnrequested(t *testing.T) {
	s, conn := newTestSession(daidebot.NewHoldBot())
	mdf := diplomacy.StandardMapTokens()

	if err := s.dispatch(mdf.First(), mdf); err != nil {
		t.Fatalf("dispatch MDF: %v", err)
	}
	if s.gmap == nil {
		t.Fatal("expected map to be stored")
	}
	sent := conn.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected a single YES(MAP) ack, got %d frames", len(sent))
	}
	got, err := lastDiplomacyMessage(sent[0])
	if err != nil {
		t.Fatalf("decode sent frame: %v", err)
	}
	if got.First() != token.CommandYES {
		t.Fatalf("expected YES ack, got %q", got.Text())
	}
}

func TestHandleNOWMovementPhaseSubmitsHoldOrders(t *testing.T) {
	s, conn := newTestSession(daidebot.NewHoldBot())
	mdf := diplomacy.StandardMapTokens()
	if err := s.dispatch(mdf.First(), mdf); err != nil {
		t.Fatalf("dispatch MDF: %v", err)
	}
	s.power = diplomacy.France
	s.bot.OnHLO(diplomacy.France, 1, "standard")

	turn := msgOf(token.SeasonSPR, mustNumber(t, 1901)).Enclose()
	unit := msgOf(token.PowerFRA, token.UnitAMY).Concat(token.Single(token.ProvincePAR).Enclose()).Enclose()
	now := msgOf(token.CommandNOW).Concat(turn).Concat(unit)

	if err := s.dispatch(now.First(), now); err != nil {
		t.Fatalf("dispatch NOW: %v", err)
	}

	sent := conn.Sent()
	last := sent[len(sent)-1]
	got, err := lastDiplomacyMessage(last)
	if err != nil {
		t.Fatalf("decode sent frame: %v", err)
	}
	if got.First() != token.CommandSUB {
		t.Fatalf("expected SUB submission, got %q", got.Text())
	}
}

// illegalOrderBot always proposes holding a unit that doesn't exist, so
// submitOrders' ValidateOrder check must drop it rather than submit it.
type illegalOrderBot struct {
	*daidebot.HoldBot
}

func (b *illegalOrderBot) OnMovementPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.Order {
	o, _ := diplomacy.SetHold(diplomacy.France, diplomacy.Army, "mar", diplomacy.NoCoast)
	return []diplomacy.Order{o}
}

func TestHandleNOWSkipsOrdersThatFailValidation(t *testing.T) {
	s, conn := newTestSession(&illegalOrderBot{daidebot.NewHoldBot()})
	mdf := diplomacy.StandardMapTokens()
	if err := s.dispatch(mdf.First(), mdf); err != nil {
		t.Fatalf("dispatch MDF: %v", err)
	}
	s.power = diplomacy.France
	s.bot.OnHLO(diplomacy.France, 1, "standard")

	// Unlike the illegal order, the real unit is at par, not mar.
	turn := msgOf(token.SeasonSPR, mustNumber(t, 1901)).Enclose()
	unit := msgOf(token.PowerFRA, token.UnitAMY).Concat(token.Single(token.ProvincePAR).Enclose()).Enclose()
	now := msgOf(token.CommandNOW).Concat(turn).Concat(unit)

	if err := s.dispatch(now.First(), now); err != nil {
		t.Fatalf("dispatch NOW: %v", err)
	}

	sent := conn.Sent()
	last := sent[len(sent)-1]
	got, err := lastDiplomacyMessage(last)
	if err != nil {
		t.Fatalf("decode sent frame: %v", err)
	}
	if got.SubmessageCount() != 1 {
		t.Fatalf("expected the illegal order to be dropped (bare SUB), got %q", got.Text())
	}
}

func TestHandleFRMRepliesHUHAndTRY(t *testing.T) {
	s, conn := newTestSession(daidebot.NewHoldBot())
	press, err := token.FromText("PRP ( PCE ( ENG FRA ) )")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	frm := msgOf(token.CommandFRM).
		Concat(token.Single(token.PowerENG).Enclose()).
		Concat(token.Single(token.PowerFRA).Enclose()).
		Concat(press.Enclose())

	if err := s.dispatch(frm.First(), frm); err != nil {
		t.Fatalf("dispatch FRM: %v", err)
	}

	sent := conn.Sent()
	if len(sent) != 2 {
		t.Fatalf("expected HUH and TRY replies, got %d frames", len(sent))
	}
	huh, err := lastDiplomacyMessage(sent[0])
	if err != nil {
		t.Fatalf("decode HUH: %v", err)
	}
	if huh.First() != token.CommandSND {
		t.Fatalf("expected SND(HUH) reply, got %q", huh.Text())
	}
}

func TestHandleCCDReducesPendingPress(t *testing.T) {
	s, _ := newTestSession(daidebot.NewHoldBot())
	snd, _ := token.FromText("'hello'")
	id := s.press.add([]diplomacy.Power{diplomacy.England, diplomacy.France}, snd, false)

	ccd := msgOf(token.CommandCCD).Concat(token.Single(token.PowerENG).Enclose())
	if err := s.dispatch(ccd.First(), ccd); err != nil {
		t.Fatalf("dispatch CCD: %v", err)
	}
	rec, ok := s.press.records[id]
	if !ok {
		t.Fatal("expected press record to remain (still pending on France)")
	}
	if len(rec.currentPowers) != 1 || rec.currentPowers[0] != diplomacy.France {
		t.Fatalf("expected England removed from pending powers, got %+v", rec.currentPowers)
	}
	if !rec.resendPartial {
		t.Fatal("expected resendPartial to be set")
	}
}
