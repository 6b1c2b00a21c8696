package diplomacy

import "sort"

// Adjudicator resolves a set of movement-phase orders using the DPTG
// algorithm (spec §4.E.1), grounded directly on
// original_source/daide_client/adjudicator.cpp's function breakdown:
// initialise_move_adjudication, check_for_illegal_move_orders,
// cancel_inconsistent_convoys/supports, direct_attacks_cut_support,
// build_support_lists, build_convoy_subversion_list,
// resolve_attacks_on_non_subverted_convoys, check_for_futile_convoys,
// check_for_indomitable_and_futile_convoys, resolve_circles_of_subversion,
// identify_rings_of_attack_and_head_to_head_battles,
// advance_rings_of_attack, resolve_(un)balanced_head_to_head_battles,
// fight_ordinary_battles, resolve_attacks_on_province, cut_support,
// find_dislodging_unit.
//
// Unlike a Kruijswijk backtracking resolver, DPTG never guesses and
// rechecks: every order's fate is derived in a fixed sequence of passes,
// each narrowing the scratch fields on Order until no further narrowing is
// possible. An Adjudicator is reusable across turns (reset clears its
// buffers in place), which is how resolve.go's Resolver reuses one
// Adjudicator across hot-loop calls.
type Adjudicator struct {
	m   *DiplomacyMap
	gs  *GameState
	ord []Order // one entry per ordered unit, mutated in place as scratch fills in
	loc map[string]int

	// attackerMap: target province -> indices of orders directly attacking it
	// (the donor's ATTACKER_MAP multimap).
	attackerMap map[string][]int

	subversions map[int]*convoySubversion

	bounced map[string]bool
}

// convoySubversionKind classifies how a convoy chain is threatened, mirroring
// the donor's SUBVERSION_TYPE enum.
type convoySubversionKind int

const (
	notSubverted convoySubversionKind = iota
	subverted                          // the subverting attack itself depends on this convoy - a genuine cycle
	futile                             // convoy is doomed regardless of the subversion outcome
	indomitable                        // convoy succeeds regardless of the subversion outcome
	confused                           // subversion cannot be resolved without a circular dependency
)

type convoySubversion struct {
	convoyedArmy int // order index of the MOVE_BY_CONVOY army under threat
	subverters   []int
	kind         convoySubversionKind
}

// NewAdjudicator prepares an Adjudicator over a set of orders, one per unit
// currently on the board. Orders for unordered units should already default
// to hold: ValidateAndDefaultOrders does that, and also replaces every order
// ValidateOrder rejects (self-support included) with a hold, so such orders
// arrive here as holds; checkIllegalOrders marks the malformed orders that
// reach Adjudicate anyway.
func NewAdjudicator(orders []Order, gs *GameState, m *DiplomacyMap) *Adjudicator {
	a := &Adjudicator{m: m, gs: gs}
	a.reset(orders)
	return a
}

func (a *Adjudicator) reset(orders []Order) {
	a.ord = append(a.ord[:0], orders...)
	if a.loc == nil {
		a.loc = make(map[string]int, len(a.ord))
		a.attackerMap = make(map[string][]int)
		a.subversions = make(map[int]*convoySubversion)
		a.bounced = make(map[string]bool)
	} else {
		clear(a.loc)
		clear(a.attackerMap)
		clear(a.subversions)
		clear(a.bounced)
	}
	for i, o := range a.ord {
		a.loc[o.Location] = i
	}
}

// Adjudicate runs the full DPTG pass and returns resolved orders plus the
// units dislodged this turn.
func (a *Adjudicator) Adjudicate() ([]ResolvedOrder, []DislodgedUnit) {
	a.checkIllegalOrders()
	a.cancelInconsistentConvoys()
	a.cancelInconsistentSupports()
	a.buildAttackerMap()
	a.directAttacksCutSupport()
	a.buildSupportLists()
	a.computeSupportsToDislodge()
	a.buildConvoySubversionList()
	a.resolveAttacksOnNonSubvertedConvoys()
	a.checkForFutileAndIndomitableConvoys()
	a.resolveCirclesOfSubversion()
	a.resolveRemainingConvoyDislodgement()
	a.resolveBattles()
	return a.buildResults()
}

// checkIllegalOrders marks orders whose referenced provinces/units don't
// exist as illegal; they are treated as holds for adjudication purposes but
// reported back as void.
func (a *Adjudicator) checkIllegalOrders() {
	for i := range a.ord {
		o := &a.ord[i]
		switch o.Type {
		case OrderMove:
			if a.m.Provinces[o.Target] == nil {
				o.IllegalOrder = true
				o.IllegalReason = "unknown target province"
			}
		case OrderSupport:
			if o.AuxLoc == "" || a.m.Provinces[o.AuxLoc] == nil {
				o.IllegalOrder = true
				o.IllegalReason = "unknown supported province"
			}
		case OrderConvoy:
			if o.AuxLoc == "" || o.AuxTarget == "" {
				o.IllegalOrder = true
				o.IllegalReason = "incomplete convoy order"
			}
		}
	}
}

// cancelInconsistentConvoys voids a CONVOY order whose referenced army isn't
// actually issuing a matching MOVE_BY_CONVOY from AuxLoc to AuxTarget.
func (a *Adjudicator) cancelInconsistentConvoys() {
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderConvoy || o.IllegalOrder {
			continue
		}
		armyIdx, ok := a.loc[o.AuxLoc]
		if !ok {
			o.NoArmyToConvoy = true
			continue
		}
		army := &a.ord[armyIdx]
		if army.Type != OrderMove || army.UnitType != Army || army.Target != o.AuxTarget {
			o.NoArmyToConvoy = true
		}
	}
}

// cancelInconsistentSupports voids a SUPPORT order whose target order
// doesn't match what's actually being ordered at AuxLoc.
func (a *Adjudicator) cancelInconsistentSupports() {
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderSupport || o.IllegalOrder {
			continue
		}
		auxIdx, ok := a.loc[o.AuxLoc]
		if !ok {
			o.SupportVoid = true
			continue
		}
		aux := &a.ord[auxIdx]
		if o.AuxTarget == "" {
			// Support to hold: valid against any non-move order, or a move
			// that's actually just holding in place isn't possible, so any
			// non-move order at AuxLoc satisfies a support-to-hold.
			if aux.Type == OrderMove {
				o.SupportVoid = true
			}
			continue
		}
		// Support to move: aux must be a move (direct or by convoy) to
		// exactly AuxTarget.
		if aux.Type != OrderMove || aux.Target != o.AuxTarget {
			o.SupportVoid = true
		}
	}
}

// buildAttackerMap records, for every province under direct (non-support,
// non-convoy) attack, which order indices are attacking it.
func (a *Adjudicator) buildAttackerMap() {
	for i, o := range a.ord {
		if o.Type == OrderMove && !o.IllegalOrder {
			a.attackerMap[o.Target] = append(a.attackerMap[o.Target], i)
		}
	}
}

// directAttacksCutSupport cuts any support order whose issuing unit is
// directly attacked by a unit other than the one it's supporting against.
func (a *Adjudicator) directAttacksCutSupport() {
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderSupport || o.SupportVoid {
			continue
		}
		for _, atkIdx := range a.attackerMap[o.Location] {
			atk := a.ord[atkIdx]
			if atk.Power == o.Power {
				continue // a power's own unit never cuts its own support
			}
			if o.AuxTarget != "" && atk.Location == o.AuxTarget {
				continue // can't cut support by the very unit being attacked
			}
			o.SupportCut = true
			break
		}
	}
}

// buildSupportLists computes, for every move and for every unit holding its
// ground, the list of support orders actually backing it (voided and cut
// supports excluded).
func (a *Adjudicator) buildSupportLists() {
	for i := range a.ord {
		o := &a.ord[i]
		o.Supports = nil
	}
	for i, s := range a.ord {
		if s.Type != OrderSupport || s.SupportVoid || s.SupportCut {
			continue
		}
		target, ok := a.loc[s.AuxLoc]
		if !ok {
			continue
		}
		a.ord[target].Supports = append(a.ord[target].Supports, i)
	}
}

// computeSupportsToDislodge narrows each move's Supports down to the subset
// that actually counts toward dislodging whatever currently occupies its
// target (spec §4.E.1 step 6 / §4.E.2): a support given by a unit of the same
// power as the occupant being attacked never counts toward breaking that
// occupant, even though it still counts toward simply winning an empty or
// vacated square (attackStrength, unchanged).
func (a *Adjudicator) computeSupportsToDislodge() {
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderMove {
			continue
		}
		var defenderPower Power
		if occ := a.gs.UnitAt(o.Target); occ != nil {
			defenderPower = occ.Power
		}
		count := 0
		for _, si := range o.Supports {
			if a.ord[si].Power != defenderPower {
				count++
			}
		}
		o.SupportsToDislodge = count
	}
}

// buildConvoySubversionList finds convoy chains under "subversion": an
// enemy unit attacking a convoying fleet, where that enemy unit is itself
// moving to a province only reachable because of the same convoy (or a
// related one) — the classic DATC convoy-paradox shape.
func (a *Adjudicator) buildConvoySubversionList() {
	for i, o := range a.ord {
		if o.Type != OrderConvoy || o.NoArmyToConvoy || o.IllegalOrder {
			continue
		}
		armyIdx := a.loc[o.AuxLoc]
		attackers := a.attackerMap[o.Location]
		if len(attackers) == 0 {
			continue
		}
		sv := &convoySubversion{convoyedArmy: armyIdx}
		for _, atkIdx := range attackers {
			atk := a.ord[atkIdx]
			if atk.Power == o.Power {
				continue
			}
			// A subverting attacker is one whose own successful advance
			// depends on the convoyed army NOT arriving (i.e. it is moving
			// into the convoyed army's destination, or is itself convoyed
			// through a path that depends on this fleet).
			if atk.Target == a.ord[armyIdx].Target {
				sv.subverters = append(sv.subverters, atkIdx)
			}
		}
		if len(sv.subverters) > 0 {
			a.subversions[i] = sv
		}
	}
}

// resolveAttacksOnNonSubvertedConvoys resolves dislodgement for every
// convoying fleet that isn't itself the target of a subversion: such a fleet
// can be judged on its own static strength immediately (nothing about its
// fate depends on a cycle), so its convoy is settled - and, if the fleet is
// beaten, broken - before the subverted convoys' paradox resolution (and
// before resolveBattles) ever looks at it. Doing this now, rather than after
// the main battle pass, is what keeps a convoyed army whose carrier is
// dislodged this same turn from transiently reporting UnitMoves (spec §8's
// unit_moves ⇒ ¬bounce invariant).
func (a *Adjudicator) resolveAttacksOnNonSubvertedConvoys() {
	for i := range a.ord {
		if a.ord[i].Type != OrderConvoy {
			continue
		}
		if _, subverted := a.subversions[i]; subverted {
			continue
		}
		a.resolveConvoyDislodgement(i)
	}
}

// resolveConvoyDislodgement dislodges convoy order i if the strongest direct
// attacker on its province beats it outright, and breaks the convoy it
// carries in consequence (resolve_attacks_on_non_subverted_convoys' break
// logic: the army reverts to an unsupported hold, same as any other disrupted
// convoy).
func (a *Adjudicator) resolveConvoyDislodgement(i int) {
	o := &a.ord[i]
	if o.NoArmyToConvoy || o.IllegalOrder || o.ConvoyBroken {
		return
	}
	if a.findDislodgingUnit(o.Location) < 0 {
		return
	}
	o.Dislodged = true
	o.DislodgedFrom = o.Location
	if armyIdx, ok := a.loc[o.AuxLoc]; ok {
		a.breakConvoy(armyIdx)
	}
}

// breakConvoy reverts a convoyed army to a supportless hold, matching the
// reference's revert-to-hold-no-support step: the move fails and any support
// it had been granted no longer counts for anything.
func (a *Adjudicator) breakConvoy(armyIdx int) {
	army := &a.ord[armyIdx]
	army.ConvoyBroken = true
	army.Supports = nil
	army.SupportsToDislodge = 0
}

// resolveRemainingConvoyDislodgement settles dislodgement for every convoy
// order not already resolved above - in particular the ones left classified
// "indomitable": their subversion doesn't break them, but their fleet can
// still be dislodged by an ordinary attack the same as any non-subverted one.
func (a *Adjudicator) resolveRemainingConvoyDislodgement() {
	for i := range a.ord {
		if a.ord[i].Type == OrderConvoy {
			a.resolveConvoyDislodgement(i)
		}
	}
}

// findDislodgingUnit returns the order index of the single attacker on provID
// that both beats every rival attacker there and beats the occupant's hold
// strength, i.e. the unit that would actually dislodge whatever sits there -
// or -1 if no such unit exists (a tie among rivals, or nobody strong enough).
// Mirrors the reference find_dislodging_unit, restricted to our flatter,
// single-pass attacker map.
func (a *Adjudicator) findDislodgingUnit(provID string) int {
	var defStrength int
	var defPower Power
	if defIdx, ok := a.loc[provID]; ok {
		def := a.ord[defIdx]
		defStrength = 1 + len(def.Supports)
		defPower = def.Power
	}
	best, bestStrength, tie := -1, -1, false
	for _, ai := range a.attackerMap[provID] {
		atk := a.ord[ai]
		if atk.IllegalOrder || atk.NoConvoy || atk.NoArmyToConvoy || atk.Power == defPower {
			continue
		}
		s := 1 + atk.SupportsToDislodge
		switch {
		case s > bestStrength:
			bestStrength, best, tie = s, ai, false
		case s == bestStrength:
			tie = true
		}
	}
	if best < 0 || tie || bestStrength <= defStrength {
		return -1
	}
	return best
}

// checkForFutileAndIndomitableConvoys classifies subverted convoys: a
// convoy is futile if every subverter beats its own target regardless of the
// convoy (the convoy is doomed no matter what), indomitable if every
// subverter fails regardless (the convoy is safe from this subversion no
// matter what), and confused when the subverters split - the outcome
// genuinely depends on a cycle, left for resolveCirclesOfSubversion. A futile
// convoy breaks immediately, the same way a non-subverted one does when its
// fleet loses outright.
func (a *Adjudicator) checkForFutileAndIndomitableConvoys() {
	for convoyIdx, sv := range a.subversions {
		allWin, allLose := true, true
		for _, subIdx := range sv.subverters {
			if a.attackerWinsRegardlessOfConvoy(subIdx) {
				allLose = false
			} else {
				allWin = false
			}
		}
		switch {
		case allWin:
			sv.kind = futile
			if armyIdx, ok := a.loc[a.ord[convoyIdx].AuxLoc]; ok {
				a.ord[convoyIdx].Dislodged = true
				a.ord[convoyIdx].DislodgedFrom = a.ord[convoyIdx].Location
				a.breakConvoy(armyIdx)
			}
		case allLose:
			sv.kind = indomitable
		default:
			sv.kind = confused
		}
	}
}

// attackerWinsRegardlessOfConvoy reports whether a subverting attacker's own
// strength already exceeds the best possible defence at its target, i.e. its
// success doesn't hinge on whether the convoy it's subverting ever arrives.
func (a *Adjudicator) attackerWinsRegardlessOfConvoy(attackerIdx int) bool {
	atk := a.ord[attackerIdx]
	strength := 1 + len(a.ord[attackerIdx].Supports)
	return strength > a.holdStrength(atk.Target)
}

// resolveCirclesOfSubversion resolves any remaining "confused" subversions
// by the rule that a convoy subversion cycle, once every participant is
// accounted for, settles in favour of the subverted convoy breaking: a
// convoy whose fate is genuinely circular is treated as broken, per the
// reference adjudicator's conservative tie-break for this DATC edge case.
func (a *Adjudicator) resolveCirclesOfSubversion() {
	for convoyIdx, sv := range a.subversions {
		if sv.kind != confused {
			continue
		}
		if armyIdx, ok := a.loc[a.ord[convoyIdx].AuxLoc]; ok {
			a.ord[convoyIdx].ConvoyBroken = true
			a.breakConvoy(armyIdx)
		}
	}
}

// resolveBattles is the main strength-comparison pass. Every convoying
// fleet's fate was already settled above (resolveAttacksOnNonSubvertedConvoys
// / resolveRemainingConvoyDislodgement), so convoy validity here only has to
// account for a path broken this same turn - not rediscover it. What's left
// is the part of DPTG that can't be resolved in one sweep: ordinary battles
// and head-to-head swaps settle immediately from static strengths, but a ring
// of attack (spec §4.E.1 steps 10-11) - a cycle of movers each waiting on the
// next to vacate - has no defender to compare against until the cycle is
// known to close. resolveBattles runs a fixpoint over everything that can be
// decided without that knowledge, then closes whatever cycle remains: once
// every ring member has already beaten every external rival for its target,
// the vacancy each one needs is guaranteed by the member ahead of it moving
// out at the same instant, so the whole ring advances together (mirroring
// identify_rings_of_attack_and_head_to_head_battles + advance_rings_of_attack,
// collapsed into a single dependency-driven loop rather than the reference's
// incremental ring-walk).
func (a *Adjudicator) resolveBattles() {
	// Convoy validity: a path that looked live before the fleet-dislodgement
	// passes above is re-checked now that ConvoyBroken/Dislodged are final.
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderMove || o.IllegalOrder || o.NoArmyToConvoy {
			continue
		}
		if a.requiresConvoy(*o) && (o.ConvoyBroken || !a.hasLiveConvoyPath(i)) {
			o.NoConvoy = true
		}
	}

	// Head-to-head detection: two units swapping provinces directly (not
	// via convoy) must each beat the other's attack strength, not just the
	// province's hold strength. A convoyed swap is deliberately excluded -
	// it's a ring (of size two), resolved below like any other ring.
	headToHead := make(map[int]int)
	for i, o := range a.ord {
		if o.Type != OrderMove || o.NoConvoy || o.NoArmyToConvoy || o.IllegalOrder {
			continue
		}
		if a.requiresConvoy(o) {
			continue
		}
		defIdx, ok := a.loc[o.Target]
		if !ok {
			continue
		}
		def := a.ord[defIdx]
		if def.Type == OrderMove && !a.requiresConvoy(def) && def.Target == o.Location {
			headToHead[i] = defIdx
		}
	}

	// Whether a move beats every *other* attacker on its target (and, for a
	// head-to-head, the specific rival across the swap) never depends on
	// anyone else's resolution - support counts are already final - so it
	// can be decided once, up front.
	beatsRivals := make(map[int]bool, len(a.ord))
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderMove || o.IllegalOrder || o.NoConvoy || o.NoArmyToConvoy {
			continue
		}
		my := a.attackStrength(i)
		ok := true
		for _, ri := range a.attackerMap[o.Target] {
			if ri == i {
				continue
			}
			riv := a.ord[ri]
			if riv.NoConvoy || riv.NoArmyToConvoy || riv.IllegalOrder {
				continue
			}
			if a.attackStrength(ri) >= my {
				ok = false
				break
			}
		}
		if hh, isHH := headToHead[i]; isHH && a.attackStrength(hh) >= my {
			ok = false
		}
		beatsRivals[i] = ok
	}

	resolved := make(map[int]bool, len(a.ord))

	// holdStrengthOf reports the defensive strength of whatever occupies
	// provID, and whether that's currently knowable: a non-mover (or a mover
	// already excluded from moving) is static and always known; a mover
	// still being decided is unknown until resolved.
	holdStrengthOf := func(provID string) (strength int, known bool) {
		idx, ok := a.loc[provID]
		if !ok {
			return 0, true
		}
		o := a.ord[idx]
		if o.Type != OrderMove || o.NoConvoy || o.NoArmyToConvoy || o.IllegalOrder {
			return 1 + len(o.Supports), true
		}
		if !resolved[idx] {
			return 0, false
		}
		if o.UnitMoves {
			return 0, true
		}
		return 1 + len(o.Supports), true
	}

	settle := func(i int, moves bool) {
		o := &a.ord[i]
		o.UnitMoves = moves
		if !moves {
			o.Bounce = true
			a.bounced[o.Target] = true
		}
		resolved[i] = true
	}

	// Fixpoint: repeatedly settle any move whose dependencies are now known,
	// until a full pass makes no further progress.
	changed := true
	for changed {
		changed = false
		for i := range a.ord {
			o := &a.ord[i]
			if o.Type != OrderMove || o.IllegalOrder || o.NoConvoy || o.NoArmyToConvoy || resolved[i] {
				continue
			}
			if !beatsRivals[i] {
				settle(i, false)
				changed = true
				continue
			}
			holdS, known := holdStrengthOf(o.Target)
			if !known {
				continue // part of an as-yet-unclosed ring; revisit below
			}
			occIdx, hasOcc := a.loc[o.Target]
			beatsDefender := a.attackStrength(i) > holdS
			if hasOcc {
				occ := a.ord[occIdx]
				vacating := occ.Type == OrderMove && !occ.NoConvoy && !occ.NoArmyToConvoy && occ.UnitMoves
				switch {
				case occ.Power == o.Power && !vacating:
					// A unit can never dislodge one of its own power.
					beatsDefender = false
				case occ.Power != o.Power && !vacating:
					// Dislodging a foreign unit never counts support given
					// by a unit of that same foreign power (spec §4.E.1
					// step 6): use the narrower dislodge-only strength.
					beatsDefender = 1+a.ord[i].SupportsToDislodge > holdS
				}
			}
			settle(i, beatsDefender)
			changed = true
		}
	}

	// Ring of attack: anything still unresolved is part of a cycle of movers
	// each blocked only on the next one vacating. Every member already beat
	// every external rival, so the cycle's own rotation supplies the vacancy
	// each member needs - the whole ring advances together.
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderMove || o.IllegalOrder || o.NoConvoy || o.NoArmyToConvoy || resolved[i] {
			continue
		}
		settle(i, beatsRivals[i])
	}

	// Dislodgement: a successful move onto an occupied, non-vacating province
	// dislodges whatever was there - hold, support, or (redundantly but
	// harmlessly; already settled above) a convoying fleet.
	for i := range a.ord {
		o := &a.ord[i]
		if o.Type != OrderMove || !o.UnitMoves {
			continue
		}
		defIdx, ok := a.loc[o.Target]
		if !ok {
			continue
		}
		def := &a.ord[defIdx]
		if def.Type == OrderMove && def.UnitMoves {
			continue // defender vacated under its own power
		}
		def.Dislodged = true
		def.DislodgedFrom = def.Location
	}
}

// attackStrength is a move's full strength for winning a race against rival
// attackers or a vacated/empty square - every support counts, regardless of
// power. Contrast computeSupportsToDislodge's narrower count used only when
// the target is occupied by a foreign, non-vacating unit.
func (a *Adjudicator) attackStrength(i int) int { return 1 + len(a.ord[i].Supports) }

// requiresConvoy reports whether a move order needs a fleet chain (army,
// not adjacent to its target by land).
func (a *Adjudicator) requiresConvoy(o Order) bool {
	if o.Type != OrderMove || o.UnitType != Army {
		return false
	}
	return !a.m.Adjacent(o.Location, o.Coast, o.Target, NoCoast, false)
}

// hasLiveConvoyPath does a BFS over CONVOY orders whose chain actually
// reaches from the army's location to its target, skipping any convoy
// order that has already broken.
func (a *Adjudicator) hasLiveConvoyPath(armyIdx int) bool {
	army := a.ord[armyIdx]
	visited := map[string]bool{army.Location: true}
	queue := []string{army.Location}

	reaches := func(from string) bool {
		return a.m.Adjacent(from, NoCoast, army.Target, NoCoast, true)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if reaches(cur) {
			return true
		}
		for i, o := range a.ord {
			if o.Type != OrderConvoy || o.NoArmyToConvoy || o.ConvoyBroken {
				continue
			}
			if o.AuxLoc != army.Location || o.AuxTarget != army.Target {
				continue
			}
			if o.Dislodged {
				continue
			}
			if visited[o.Location] {
				continue
			}
			if a.m.Adjacent(cur, NoCoast, o.Location, NoCoast, true) || cur == army.Location {
				visited[o.Location] = true
				queue = append(queue, o.Location)
			}
			_ = i
		}
	}
	return false
}

// holdStrength computes the defensive strength of whatever sits at (or is
// ordered at) a province: a unit holding, supporting, or convoying counts 1
// plus its successful supports; a unit moving away counts 0 if it actually
// moves, else the same as holding.
func (a *Adjudicator) holdStrength(provID string) int {
	idx, ok := a.loc[provID]
	if !ok {
		return 0
	}
	o := a.ord[idx]
	if o.Type == OrderMove {
		if o.UnitMoves {
			return 0
		}
		return 1
	}
	return 1 + len(o.Supports)
}

// buildResults converts final scratch-field state into the external
// ResolvedOrder / DislodgedUnit shape used by callers and tests.
func (a *Adjudicator) buildResults() ([]ResolvedOrder, []DislodgedUnit) {
	results := make([]ResolvedOrder, 0, len(a.ord))
	var dislodged []DislodgedUnit

	for _, o := range a.ord {
		result := ResultSucceeded
		switch {
		case o.IllegalOrder:
			result = ResultVoid
		case o.Type == OrderMove && (o.Bounce || o.NoConvoy || o.NoArmyToConvoy || o.ConvoyBroken):
			result = ResultBounced
		case o.Type == OrderSupport && (o.SupportVoid || o.SupportCut):
			if o.SupportVoid {
				result = ResultVoid
			} else {
				result = ResultCut
			}
		case o.Type == OrderConvoy && (o.NoArmyToConvoy || o.ConvoyBroken):
			result = ResultFailed
		}
		if o.Dislodged {
			result = ResultDislodged
			dislodged = append(dislodged, DislodgedUnit{
				Unit: Unit{
					Type:     o.UnitType,
					Power:    o.Power,
					Province: o.Location,
					Coast:    o.Coast,
				},
				DislodgedFrom: o.DislodgedFrom,
				AttackerFrom:  a.dislodgerOf(o.Location),
			})
		}
		results = append(results, ResolvedOrder{Order: o, Result: result})
	}

	sort.Slice(dislodged, func(i, j int) bool { return dislodged[i].DislodgedFrom < dislodged[j].DislodgedFrom })
	return results, dislodged
}

// dislodgerOf returns the province a successful attacker on loc came from.
func (a *Adjudicator) dislodgerOf(loc string) string {
	for _, atkIdx := range a.attackerMap[loc] {
		o := a.ord[atkIdx]
		if o.UnitMoves {
			return o.Location
		}
	}
	return ""
}

// ResolveMoves is the package-level entry point mirroring ResolveOrders;
// both run the DPTG Adjudicator.
func ResolveMoves(orders []Order, gs *GameState, m *DiplomacyMap) ([]ResolvedOrder, []DislodgedUnit) {
	return NewAdjudicator(orders, gs, m).Adjudicate()
}
