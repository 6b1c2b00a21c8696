package daideclient

import (
	"testing"

	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

func TestEncodeParseHoldOrderRoundTrip(t *testing.T) {
	o := diplomacy.Order{
		Power:    diplomacy.France,
		UnitType: diplomacy.Army,
		Location: "par",
		Type:     diplomacy.OrderHold,
	}
	msg, err := encodeOrder(o, &diplomacy.GameState{})
	if err != nil {
		t.Fatalf("encodeOrder: %v", err)
	}
	got, err := parseOrderMessage(msg)
	if err != nil {
		t.Fatalf("parseOrderMessage: %v", err)
	}
	if got.Power != o.Power || got.UnitType != o.UnitType || got.Location != o.Location || got.Type != o.Type {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, o)
	}
}

func TestEncodeParseMoveOrderRoundTrip(t *testing.T) {
	o := diplomacy.Order{
		Power:    diplomacy.England,
		UnitType: diplomacy.Fleet,
		Location: "lon",
		Type:     diplomacy.OrderMove,
		Target:   "nth",
	}
	msg, err := encodeOrder(o, &diplomacy.GameState{})
	if err != nil {
		t.Fatalf("encodeOrder: %v", err)
	}
	got, err := parseOrderMessage(msg)
	if err != nil {
		t.Fatalf("parseOrderMessage: %v", err)
	}
	if got.Type != diplomacy.OrderMove || got.Target != "nth" {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestEncodeSupportOrderUsesLiveUnitPower(t *testing.T) {
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.Germany, Type: diplomacy.Army, Province: "mun"},
		},
	}
	o := diplomacy.Order{
		Power:       diplomacy.Austria,
		UnitType:    diplomacy.Army,
		Location:    "boh",
		Type:        diplomacy.OrderSupport,
		AuxUnitType: diplomacy.Army,
		AuxLoc:      "mun",
		AuxTarget:   "sil",
	}
	msg, err := encodeOrder(o, gs)
	if err != nil {
		t.Fatalf("encodeOrder: %v", err)
	}
	got, err := parseOrderMessage(msg)
	if err != nil {
		t.Fatalf("parseOrderMessage: %v", err)
	}
	if got.Type != diplomacy.OrderSupport || got.AuxLoc != "mun" || got.AuxTarget != "sil" {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestEncodeSupportOrderMissingAuxUnit(t *testing.T) {
	o := diplomacy.Order{
		Power:       diplomacy.Austria,
		UnitType:    diplomacy.Army,
		Location:    "boh",
		Type:        diplomacy.OrderSupport,
		AuxUnitType: diplomacy.Army,
		AuxLoc:      "mun",
	}
	if _, err := encodeOrder(o, &diplomacy.GameState{}); err == nil {
		t.Fatal("expected error when no unit occupies the support target")
	}
}

func TestEncodeParseRetreatOrderRoundTrip(t *testing.T) {
	o := diplomacy.RetreatOrder{
		Power:    diplomacy.Russia,
		UnitType: diplomacy.Army,
		Location: "war",
		Type:     diplomacy.RetreatMove,
		Target:   "sil",
	}
	msg, err := encodeRetreat(o)
	if err != nil {
		t.Fatalf("encodeRetreat: %v", err)
	}
	if msg.SubmessageCount() != 2 {
		t.Fatalf("expected 2 submessages, got %d", msg.SubmessageCount())
	}
}

func TestEncodeBuildOrders(t *testing.T) {
	cases := []diplomacy.BuildOrder{
		{Power: diplomacy.Turkey, Type: diplomacy.WaiveBuild},
		{Power: diplomacy.Turkey, UnitType: diplomacy.Army, Location: "con", Type: diplomacy.BuildUnit},
		{Power: diplomacy.Turkey, UnitType: diplomacy.Fleet, Location: "smy", Type: diplomacy.DisbandUnit},
	}
	for _, o := range cases {
		if _, err := encodeBuild(o); err != nil {
			t.Fatalf("encodeBuild(%+v): %v", o, err)
		}
	}
}

func TestParseSCO(t *testing.T) {
	// SCO (AUS VIE BUD TRI) (UNO SPA)
	aus := msgOf(token.PowerAUS, token.ProvinceVIE, token.ProvinceBUD, token.ProvinceTRI).Enclose()
	unowned := msgOf(token.ParamUNO, token.ProvinceSPA).Enclose()
	msg := msgOf(token.CommandSCO).Concat(aus).Concat(unowned)

	owners, err := parseSCO(msg)
	if err != nil {
		t.Fatalf("parseSCO: %v", err)
	}
	if owners["vie"] != diplomacy.Austria || owners["tri"] != diplomacy.Austria {
		t.Fatalf("expected vie/tri owned by Austria, got %+v", owners)
	}
	if owners["spa"] != diplomacy.Neutral {
		t.Fatalf("expected spa unowned, got %v", owners["spa"])
	}
}

func TestSeasonPhaseFromToken(t *testing.T) {
	cases := []struct {
		in     token.Token
		season diplomacy.Season
		phase  diplomacy.PhaseType
	}{
		{token.SeasonSPR, diplomacy.Spring, diplomacy.PhaseMovement},
		{token.SeasonSUM, diplomacy.Spring, diplomacy.PhaseRetreat},
		{token.SeasonFAL, diplomacy.Fall, diplomacy.PhaseMovement},
		{token.SeasonAUT, diplomacy.Fall, diplomacy.PhaseRetreat},
		{token.SeasonWIN, diplomacy.Fall, diplomacy.PhaseBuild},
	}
	for _, c := range cases {
		season, phase, ok := seasonPhaseFromToken(c.in)
		if !ok || season != c.season || phase != c.phase {
			t.Fatalf("seasonPhaseFromToken(%v) = %v, %v, %v; want %v, %v, true", c.in, season, phase, ok, c.season, c.phase)
		}
	}
}

func TestParseNowUnitsAndDislodged(t *testing.T) {
	turn := msgOf(token.SeasonSPR, mustNumber(t, 1901)).Enclose()
	live := msgOf(token.PowerFRA, token.UnitAMY).Concat(token.Single(token.ProvincePAR).Enclose()).Enclose()
	options := msgOf(token.ProvinceBOH).Enclose()
	dislodged := msgOf(token.PowerGER, token.UnitAMY).
		Concat(token.Single(token.ProvinceMUN).Enclose()).
		ConcatToken(token.ParamMRT).
		Concat(options).
		Enclose()

	msg := msgOf(token.CommandNOW).Concat(turn).Concat(live).Concat(dislodged)

	season, year, phase, units, dis, err := parseNow(msg)
	if err != nil {
		t.Fatalf("parseNow: %v", err)
	}
	if season != diplomacy.Spring || year != 1901 || phase != diplomacy.PhaseMovement {
		t.Fatalf("unexpected turn: %v %d %v", season, year, phase)
	}
	if len(units) != 1 || units[0].Power != diplomacy.France || units[0].Province != "par" {
		t.Fatalf("unexpected units: %+v", units)
	}
	if len(dis) != 1 || dis[0].Unit.Power != diplomacy.Germany || dis[0].Unit.Province != "mun" {
		t.Fatalf("unexpected dislodged: %+v", dis)
	}
}

func mustNumber(t *testing.T, n int) token.Token {
	t.Helper()
	tok, err := token.NewNumber(n)
	if err != nil {
		t.Fatalf("NewNumber(%d): %v", n, err)
	}
	return tok
}
