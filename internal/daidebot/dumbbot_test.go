package daidebot

import (
	"testing"

	"github.com/freeeve/daide-client/pkg/diplomacy"
)

func TestDumbBotMovementPhaseTakesUnownedSupplyCentre(t *testing.T) {
	b := NewDumbBot()
	b.OnHLO(diplomacy.France, 1, "standard")
	m := standardMap(t)
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.France, Type: diplomacy.Army, Province: "bur"},
		},
		SupplyCenters: map[string]diplomacy.Power{
			"bur": diplomacy.France,
			"mun": diplomacy.France,
			"par": diplomacy.France,
			"mar": diplomacy.France,
		},
	}

	orders := b.OnMovementPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Type != diplomacy.OrderMove || orders[0].Target != "bel" {
		t.Fatalf("expected a move to bel, the only neighbouring centre France does not own, got %+v", orders[0])
	}
}

func TestDumbBotMovementPhaseHoldsWhenNoGoodMove(t *testing.T) {
	b := NewDumbBot()
	b.OnHLO(diplomacy.France, 1, "standard")
	m := standardMap(t)
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.France, Type: diplomacy.Army, Province: "par"},
		},
		SupplyCenters: map[string]diplomacy.Power{
			"par": diplomacy.France,
			"bre": diplomacy.France,
		},
	}

	orders := b.OnMovementPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].Type != diplomacy.OrderHold {
		t.Fatalf("Paris's neighbours are bre (already French) and the non-centres bur/gas/pic, expected a hold, got %+v", orders[0])
	}
}

func TestDumbBotRetreatPhaseAvoidsAttackerOrigin(t *testing.T) {
	b := NewDumbBot()
	b.OnHLO(diplomacy.England, 1, "standard")
	m := standardMap(t)
	gs := &diplomacy.GameState{
		Dislodged: []diplomacy.DislodgedUnit{
			{
				Unit:          diplomacy.Unit{Power: diplomacy.England, Type: diplomacy.Army, Province: "yor"},
				DislodgedFrom: "yor",
				AttackerFrom:  "lon",
			},
		},
	}

	orders := b.OnRetreatPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected 1 retreat order, got %d", len(orders))
	}
	if orders[0].Type == diplomacy.RetreatMove && orders[0].Target == "lon" {
		t.Fatalf("must not retreat back into the attacker's origin, got %+v", orders[0])
	}
}

func TestDumbBotBuildPhaseBuildsAtHomeCentres(t *testing.T) {
	b := NewDumbBot()
	b.OnHLO(diplomacy.Turkey, 1, "standard")
	m := standardMap(t)
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.Turkey, Type: diplomacy.Army, Province: "con"},
		},
		SupplyCenters: map[string]diplomacy.Power{
			"con": diplomacy.Turkey,
			"smy": diplomacy.Turkey,
		},
	}

	orders := b.OnBuildPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected 1 build order (1 unit, 2 centres), got %d", len(orders))
	}
	if orders[0].Type != diplomacy.BuildUnit || orders[0].Location != "smy" {
		t.Fatalf("expected a build at the vacant home centre smy, got %+v", orders[0])
	}
}
