package daidebot

import (
	"testing"

	"github.com/freeeve/daide-client/pkg/diplomacy"
)

func standardMap(t *testing.T) *diplomacy.DiplomacyMap {
	t.Helper()
	m, err := diplomacy.BuildFromMDF(diplomacy.StandardMapTokens())
	if err != nil {
		t.Fatalf("BuildFromMDF: %v", err)
	}
	return m
}

func TestHoldBotMovementPhaseHoldsEveryUnit(t *testing.T) {
	b := NewHoldBot()
	b.OnHLO(diplomacy.France, 1, "standard")
	gs := diplomacy.NewInitialState()
	m := standardMap(t)

	orders := b.OnMovementPhase(gs, m)
	want := len(gs.UnitsOf(diplomacy.France))
	if len(orders) != want {
		t.Fatalf("expected %d hold orders, got %d", want, len(orders))
	}
	for _, o := range orders {
		if o.Type != diplomacy.OrderHold {
			t.Fatalf("expected every order to hold, got %v", o.Type)
		}
	}
}

func TestHoldBotRetreatPhaseDisbandsOwnDislodgedUnits(t *testing.T) {
	b := NewHoldBot()
	b.OnHLO(diplomacy.England, 1, "standard")
	gs := &diplomacy.GameState{
		Dislodged: []diplomacy.DislodgedUnit{
			{Unit: diplomacy.Unit{Power: diplomacy.England, Type: diplomacy.Fleet, Province: "nth"}, DislodgedFrom: "nth"},
			{Unit: diplomacy.Unit{Power: diplomacy.Germany, Type: diplomacy.Army, Province: "ruh"}, DislodgedFrom: "ruh"},
		},
	}
	m := standardMap(t)

	orders := b.OnRetreatPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected 1 retreat order (England's only), got %d", len(orders))
	}
	if orders[0].Type != diplomacy.RetreatDisband || orders[0].Location != "nth" {
		t.Fatalf("unexpected retreat order: %+v", orders[0])
	}
}

func TestHoldBotBuildPhaseRemovesExcessUnits(t *testing.T) {
	b := NewHoldBot()
	b.OnHLO(diplomacy.Turkey, 1, "standard")
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.Turkey, Type: diplomacy.Army, Province: "con"},
			{Power: diplomacy.Turkey, Type: diplomacy.Army, Province: "smy"},
			{Power: diplomacy.Turkey, Type: diplomacy.Fleet, Province: "ank"},
		},
		SupplyCenters: map[string]diplomacy.Power{
			"con": diplomacy.Turkey,
			"smy": diplomacy.Turkey,
		},
	}
	m := standardMap(t)

	orders := b.OnBuildPhase(gs, m)
	if len(orders) != 1 {
		t.Fatalf("expected 1 remove order (3 units, 2 centres), got %d", len(orders))
	}
	if orders[0].Type != diplomacy.DisbandUnit {
		t.Fatalf("expected a disband order, got %v", orders[0].Type)
	}
}

func TestHoldBotBuildPhaseWaivesWhenShortOfUnits(t *testing.T) {
	b := NewHoldBot()
	b.OnHLO(diplomacy.Turkey, 1, "standard")
	gs := &diplomacy.GameState{
		Units: []diplomacy.Unit{
			{Power: diplomacy.Turkey, Type: diplomacy.Army, Province: "con"},
		},
		SupplyCenters: map[string]diplomacy.Power{
			"con": diplomacy.Turkey,
			"smy": diplomacy.Turkey,
			"ank": diplomacy.Turkey,
		},
	}
	m := standardMap(t)

	orders := b.OnBuildPhase(gs, m)
	if len(orders) != 2 {
		t.Fatalf("expected 2 waive orders (1 unit, 3 centres), got %d", len(orders))
	}
	for _, o := range orders {
		if o.Type != diplomacy.WaiveBuild {
			t.Fatalf("expected waive orders, got %v", o.Type)
		}
	}
}
