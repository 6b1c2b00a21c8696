// Package daidebot defines the capability interface a DAIDE client bot
// implements, plus two sample bots (HoldBot, DumbBot) built only from that
// interface — mirroring the donor's BaseBot/HoldBot/DumbBot split
// (original_source/daide_client/base_bot.h, bots/holdbot, bots/dumbbot) but
// expressed as a Go interface rather than a virtual-method base class, per
// the capability-record convention used elsewhere in this module.
package daidebot

import "github.com/freeeve/daide-client/pkg/diplomacy"

// Bot is the capability set a DAIDE client session drives. Every hook
// receives whatever state the session has already updated from the
// triggering message; a bot reads what it needs and returns orders where
// asked. Hooks with no return value are notifications only.
type Bot interface {
	// Name and Version identify the bot in the NME message sent on connect.
	Name() string
	Version() string

	// ObserverOnly reports whether the bot should send OBS instead of NME
	// (default_send_nme_or_obs sends OBS; a playing bot overrides this).
	ObserverOnly() bool

	// OnHLO fires once the session has joined a game as a power.
	OnHLO(power diplomacy.Power, passcode int, variant string)

	// OnMDF fires once the map definition has been parsed and stored.
	OnMDF(m *diplomacy.DiplomacyMap)

	// OnSCO fires on every supply-centre ownership update.
	OnSCO(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap)

	// OnMovementPhase fires when a NOW arrives for a Spring/Fall movement
	// turn. The returned orders are submitted as a SUB message.
	OnMovementPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.Order

	// OnRetreatPhase fires for a Summer/Autumn retreat turn.
	OnRetreatPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.RetreatOrder

	// OnBuildPhase fires for a Winter adjustment turn.
	OnBuildPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.BuildOrder

	// OnORD reports a historical order result (already applied to state).
	OnORD(order diplomacy.Order, result diplomacy.OrderResult)

	// OnCCD reports a power entering civil disorder.
	OnCCD(power diplomacy.Power, isNewDisconnection bool)

	// OnSLO reports a solo win.
	OnSLO(winner diplomacy.Power)

	// OnDRW reports a draw.
	OnDRW()

	// OnSMR reports the end-of-game summary.
	OnSMR(gs *diplomacy.GameState)
}

// HoldBot is the simplest legal bot: it holds every unit in movement
// phases, disbands every dislodged unit in retreat phases, and
// removes/waives to bring unit count in line with centre count in build
// phases. Grounded directly on bots/holdbot/holdbot.cpp's process_now_message.
type HoldBot struct {
	power diplomacy.Power
}

// NewHoldBot returns a HoldBot. The power is filled in by OnHLO.
func NewHoldBot() *HoldBot { return &HoldBot{} }

func (b *HoldBot) Name() string         { return "HoldBot" }
func (b *HoldBot) Version() string      { return "1.0" }
func (b *HoldBot) ObserverOnly() bool   { return false }
func (b *HoldBot) OnHLO(power diplomacy.Power, passcode int, variant string) { b.power = power }
func (b *HoldBot) OnMDF(m *diplomacy.DiplomacyMap)                           {}
func (b *HoldBot) OnSCO(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap)  {}
func (b *HoldBot) OnORD(order diplomacy.Order, result diplomacy.OrderResult) {}
func (b *HoldBot) OnCCD(power diplomacy.Power, isNewDisconnection bool)      {}
func (b *HoldBot) OnSLO(winner diplomacy.Power)                              {}
func (b *HoldBot) OnDRW()                                                    {}
func (b *HoldBot) OnSMR(gs *diplomacy.GameState)                             {}

func (b *HoldBot) OnMovementPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.Order {
	var orders []diplomacy.Order
	for _, u := range gs.UnitsOf(b.power) {
		o, _ := diplomacy.SetHold(b.power, u.Type, u.Province, u.Coast)
		orders = append(orders, o)
	}
	return orders
}

func (b *HoldBot) OnRetreatPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.RetreatOrder {
	var orders []diplomacy.RetreatOrder
	for _, d := range gs.Dislodged {
		if d.Unit.Power != b.power {
			continue
		}
		o, _ := diplomacy.SetRetreatDisband(b.power, d.Unit.Type, d.DislodgedFrom, d.Unit.Coast)
		orders = append(orders, o)
	}
	return orders
}

func (b *HoldBot) OnBuildPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.BuildOrder {
	units := gs.UnitsOf(b.power)
	centres := gs.SupplyCenterCount(b.power)
	var orders []diplomacy.BuildOrder
	switch {
	case len(units) > centres:
		for i := 0; i < len(units)-centres; i++ {
			o, _ := diplomacy.SetRemove(b.power, units[i].Type, units[i].Province)
			orders = append(orders, o)
		}
	case len(units) < centres:
		for i := 0; i < centres-len(units); i++ {
			o, _ := diplomacy.SetWaive(b.power)
			orders = append(orders, o)
		}
	}
	return orders
}
