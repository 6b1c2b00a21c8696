package diplomacy

// ResolveOrders adjudicates a set of validated orders against the game state
// using the DPTG adjudicator (adjudicate.go). Returns the list of resolved
// orders with outcomes, and a list of dislodged units.
func ResolveOrders(orders []Order, gs *GameState, m *DiplomacyMap) ([]ResolvedOrder, []DislodgedUnit) {
	return NewAdjudicator(orders, gs, m).Adjudicate()
}

// applyUnitKey identifies a unit by power and province for resolution application.
type applyUnitKey struct {
	power    Power
	province string
}

// applyMoveEntry stores the result of a successful move for batch application.
type applyMoveEntry struct {
	target      string
	targetCoast Coast
	clearCoast  bool
}

// ApplyResolution updates the game state based on resolved orders.
// Moves successful units, removes dislodged units from the board.
func ApplyResolution(gs *GameState, m *DiplomacyMap, results []ResolvedOrder, dislodged []DislodgedUnit) {
	dislodgedSet := make(map[applyUnitKey]bool)
	for _, d := range dislodged {
		dislodgedSet[applyUnitKey{d.Unit.Power, d.DislodgedFrom}] = true
	}

	moves := make(map[applyUnitKey]applyMoveEntry)
	for _, ro := range results {
		if ro.Order.Type == OrderMove && ro.Result == ResultSucceeded {
			clearCoast := ro.Order.TargetCoast == NoCoast && !m.HasCoasts(ro.Order.Target)
			moves[applyUnitKey{ro.Order.Power, ro.Order.Location}] = applyMoveEntry{
				target:      ro.Order.Target,
				targetCoast: ro.Order.TargetCoast,
				clearCoast:  clearCoast,
			}
		}
	}
	applyMoves(gs, moves, dislodgedSet, dislodged)
}

// applyMoves applies move updates and removes dislodged units from the game state.
func applyMoves(gs *GameState, moves map[applyUnitKey]applyMoveEntry, dislodgedSet map[applyUnitKey]bool, dislodged []DislodgedUnit) {
	for i := range gs.Units {
		key := applyUnitKey{gs.Units[i].Power, gs.Units[i].Province}
		if mu, ok := moves[key]; ok {
			gs.Units[i].Province = mu.target
			if mu.targetCoast != NoCoast {
				gs.Units[i].Coast = mu.targetCoast
			} else if mu.clearCoast {
				gs.Units[i].Coast = NoCoast
			}
		}
	}

	remaining := gs.Units[:0]
	for _, u := range gs.Units {
		if !dislodgedSet[applyUnitKey{u.Power, u.Province}] {
			remaining = append(remaining, u)
		}
	}
	gs.Units = remaining
	gs.Dislodged = dislodged
}

// Resolver is a reusable order adjudicator that minimizes allocations across
// repeated calls (e.g. a bot's search loop evaluating many candidate order
// sets per turn). Allocate once with NewResolver and call Resolve repeatedly;
// the returned slices are owned by the Resolver and overwritten on the next
// call. Backed by the DPTG Adjudicator; the reuse is in the Adjudicator's own
// scratch maps, not in a separately duplicated algorithm.
type Resolver struct {
	adj *Adjudicator

	resBuf []ResolvedOrder
	disBuf []DislodgedUnit

	dislodgedSet map[applyUnitKey]bool
	movesMap     map[applyUnitKey]applyMoveEntry
}

// NewResolver creates a reusable resolver. capacity should be the
// expected number of orders per resolution (e.g. 34 for a full board).
func NewResolver(capacity int) *Resolver {
	return &Resolver{
		resBuf:       make([]ResolvedOrder, 0, capacity),
		disBuf:       make([]DislodgedUnit, 0, 4),
		dislodgedSet: make(map[applyUnitKey]bool, 4),
		movesMap:     make(map[applyUnitKey]applyMoveEntry, capacity),
	}
}

// Resolve adjudicates orders and returns resolved results plus dislodged units.
// The returned slices are backed by internal buffers; they are valid until the
// next Resolve call.
func (rv *Resolver) Resolve(orders []Order, gs *GameState, m *DiplomacyMap) ([]ResolvedOrder, []DislodgedUnit) {
	if rv.adj == nil {
		rv.adj = NewAdjudicator(orders, gs, m)
	} else {
		rv.adj.reset(orders)
		rv.adj.gs = gs
		rv.adj.m = m
	}
	rv.resBuf, rv.disBuf = rv.adj.Adjudicate()
	return rv.resBuf, rv.disBuf
}

// Apply updates the game state using the results from the most recent Resolve call.
// Moves successful units and removes dislodged units.
func (rv *Resolver) Apply(gs *GameState, m *DiplomacyMap) {
	clear(rv.dislodgedSet)
	clear(rv.movesMap)

	for _, d := range rv.disBuf {
		rv.dislodgedSet[applyUnitKey{d.Unit.Power, d.DislodgedFrom}] = true
	}

	for _, ro := range rv.resBuf {
		if ro.Order.Type == OrderMove && ro.Result == ResultSucceeded {
			clearCoast := ro.Order.TargetCoast == NoCoast && !m.HasCoasts(ro.Order.Target)
			rv.movesMap[applyUnitKey{ro.Order.Power, ro.Order.Location}] = applyMoveEntry{
				target:      ro.Order.Target,
				targetCoast: ro.Order.TargetCoast,
				clearCoast:  clearCoast,
			}
		}
	}
	applyMoves(gs, rv.movesMap, rv.dislodgedSet, rv.disBuf)
}

// HasDislodged returns true if the last Resolve call produced any dislodged units.
func (rv *Resolver) HasDislodged() bool {
	return len(rv.disBuf) > 0
}
