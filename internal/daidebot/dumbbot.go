package daidebot

import "github.com/freeeve/daide-client/pkg/diplomacy"

// DumbBot is a simplified heuristic bot, grounded on bots/dumbbot/dumbbot.h's
// proximity/strength/competition weighting idea without its full numeric
// weighting engine: rather than a multi-pass proximity-map calculation over
// every depth up to PROXIMITY_DEPTH, this version scores each reachable move
// by one cheap, locally-computed signal — does it take a supply centre we do
// not own (destinationScore) — and greedily gives each unit its
// highest-scoring move. Whether the destination is defended, and whether a
// second unit could support the move, do not enter the score; a unit left
// without a move supports a neighbour's planned move when it can reach that
// destination, and holds otherwise. This keeps DumbBot's behaviour (prefer
// expansion into centres, support when free, hold otherwise) without
// porting the original's per-province proximity tables.
type DumbBot struct {
	power diplomacy.Power
}

// NewDumbBot returns a DumbBot. The power is filled in by OnHLO.
func NewDumbBot() *DumbBot { return &DumbBot{} }

func (b *DumbBot) Name() string       { return "DumbBot" }
func (b *DumbBot) Version() string    { return "1.0" }
func (b *DumbBot) ObserverOnly() bool { return false }

func (b *DumbBot) OnHLO(power diplomacy.Power, passcode int, variant string) { b.power = power }
func (b *DumbBot) OnMDF(m *diplomacy.DiplomacyMap)                           {}
func (b *DumbBot) OnSCO(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap)  {}
func (b *DumbBot) OnORD(order diplomacy.Order, result diplomacy.OrderResult) {}
func (b *DumbBot) OnCCD(power diplomacy.Power, isNewDisconnection bool)      {}
func (b *DumbBot) OnSLO(winner diplomacy.Power)                              {}
func (b *DumbBot) OnDRW()                                                    {}
func (b *DumbBot) OnSMR(gs *diplomacy.GameState)                             {}

// destinationScore rates how attractive it would be for one of our units to
// occupy dest: 10 for a province listed in gs.SupplyCenters with an owner
// other than power (a Neutral entry included), 8 for a map supply centre
// missing from gs.SupplyCenters, 1 for anything else (our own centres and
// every non-centre, empty or enemy-held alike), and -1 for a province held
// by a unit of ours or unknown to the map (never worth moving to).
func destinationScore(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap, power diplomacy.Power, dest string) int {
	if occ := gs.UnitAt(dest); occ != nil {
		if occ.Power == power {
			return -1
		}
	}
	prov := m.Provinces[dest]
	if prov == nil {
		return -1
	}
	owner, isSC := gs.SupplyCenters[dest]
	switch {
	case isSC && owner != power:
		return 10
	case prov.IsSupplyCenter && !isSC:
		return 8
	default:
		return 1
	}
}

func (b *DumbBot) OnMovementPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.Order {
	units := gs.UnitsOf(b.power)
	var orders []diplomacy.Order
	usedAsSupporter := make(map[string]bool)

	type move struct {
		unit  diplomacy.Unit
		dest  string
		coast diplomacy.Coast
		score int
	}
	var candidates []move
	for _, u := range units {
		isFleet := u.Type == diplomacy.Fleet
		for _, adj := range m.Adjacencies[u.Province] {
			if isFleet && !adj.FleetOK {
				continue
			}
			if !isFleet && !adj.ArmyOK {
				continue
			}
			if u.Coast != diplomacy.NoCoast && adj.FromCoast != diplomacy.NoCoast && adj.FromCoast != u.Coast {
				continue
			}
			score := destinationScore(gs, m, b.power, adj.To)
			if score < 0 {
				continue
			}
			candidates = append(candidates, move{u, adj.To, adj.ToCoast, score})
		}
	}

	bestFor := make(map[string]move)
	for _, c := range candidates {
		if cur, ok := bestFor[c.unit.Province]; !ok || c.score > cur.score {
			bestFor[c.unit.Province] = c
		}
	}

	ordered := make(map[string]bool)
	for _, u := range units {
		best, ok := bestFor[u.Province]
		if !ok || best.score <= 1 {
			continue
		}
		o, _ := diplomacy.SetMove(b.power, u.Type, u.Province, u.Coast, best.dest, best.coast)
		orders = append(orders, o)
		ordered[u.Province] = true
	}

	// For every remaining unit, try to support a neighbour's planned move;
	// otherwise hold.
	for _, u := range units {
		if ordered[u.Province] {
			continue
		}
		supported := false
		for prov, best := range bestFor {
			if usedAsSupporter[prov] || !ordered[prov] {
				continue
			}
			if !m.Adjacent(u.Province, u.Coast, best.dest, diplomacy.NoCoast, u.Type == diplomacy.Fleet) {
				continue
			}
			mover := gs.UnitAt(prov)
			if mover == nil {
				continue
			}
			o, _ := diplomacy.SetSupportToMove(b.power, u.Type, u.Province, u.Coast, mover.Type, prov, best.dest)
			orders = append(orders, o)
			usedAsSupporter[prov] = true
			supported = true
			break
		}
		if !supported {
			o, _ := diplomacy.SetHold(b.power, u.Type, u.Province, u.Coast)
			orders = append(orders, o)
		}
	}

	return orders
}

func (b *DumbBot) OnRetreatPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.RetreatOrder {
	var orders []diplomacy.RetreatOrder
	for _, d := range gs.Dislodged {
		if d.Unit.Power != b.power {
			continue
		}
		best := ""
		bestCoast := diplomacy.NoCoast
		bestScore := -1
		isFleet := d.Unit.Type == diplomacy.Fleet
		for _, adj := range m.Adjacencies[d.DislodgedFrom] {
			if isFleet && !adj.FleetOK || !isFleet && !adj.ArmyOK {
				continue
			}
			if adj.To == d.AttackerFrom {
				continue
			}
			if gs.UnitAt(adj.To) != nil {
				continue
			}
			if score := destinationScore(gs, m, b.power, adj.To); score > bestScore {
				bestScore = score
				best = adj.To
				bestCoast = adj.ToCoast
			}
		}
		if best == "" {
			o, _ := diplomacy.SetRetreatDisband(b.power, d.Unit.Type, d.DislodgedFrom, d.Unit.Coast)
			orders = append(orders, o)
			continue
		}
		o, _ := diplomacy.SetRetreat(b.power, d.Unit.Type, d.DislodgedFrom, d.Unit.Coast, best, bestCoast)
		orders = append(orders, o)
	}
	return orders
}

func (b *DumbBot) OnBuildPhase(gs *diplomacy.GameState, m *diplomacy.DiplomacyMap) []diplomacy.BuildOrder {
	units := gs.UnitsOf(b.power)
	centres := gs.SupplyCenterCount(b.power)
	var orders []diplomacy.BuildOrder

	if len(units) > centres {
		// Remove the surplus units, starting from the one whose province
		// destinationScore rates lowest and wrapping round in gs order.
		// Each of these provinces holds one of our units, so every score is
		// -1 and the removals start with our first unit.
		worstIdx, worstScore := 0, 1<<30
		for i, u := range units {
			if s := destinationScore(gs, m, b.power, u.Province); s < worstScore {
				worstScore, worstIdx = s, i
			}
		}
		for i := 0; i < len(units)-centres; i++ {
			idx := (worstIdx + i) % len(units)
			o, _ := diplomacy.SetRemove(b.power, units[idx].Type, units[idx].Province)
			orders = append(orders, o)
		}
		return orders
	}

	need := centres - len(units)
	built := 0
	for _, home := range diplomacy.HomeCenters(b.power) {
		if built >= need {
			break
		}
		if gs.SupplyCenters[home] != b.power || gs.UnitAt(home) != nil {
			continue
		}
		prov := m.Provinces[home]
		unitType := diplomacy.Army
		coast := diplomacy.NoCoast
		if prov != nil && prov.Type == diplomacy.Coastal && len(prov.Coasts) > 0 {
			unitType = diplomacy.Fleet
			coast = prov.Coasts[0]
		}
		o, _ := diplomacy.SetBuild(b.power, unitType, home, coast)
		orders = append(orders, o)
		built++
	}
	for ; built < need; built++ {
		o, _ := diplomacy.SetWaive(b.power)
		orders = append(orders, o)
	}
	return orders
}
