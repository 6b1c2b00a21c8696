package diplomacy

import "fmt"

// OrderType represents the type of order a unit can be given.
type OrderType int

const (
	OrderHold    OrderType = iota // Unit holds position
	OrderMove                     // Unit moves to adjacent province
	OrderSupport                  // Unit supports another unit's hold or move
	OrderConvoy                   // Fleet convoys army across sea
)

func (o OrderType) String() string {
	switch o {
	case OrderHold:
		return "hold"
	case OrderMove:
		return "move"
	case OrderSupport:
		return "support"
	case OrderConvoy:
		return "convoy"
	default:
		return "unknown"
	}
}

// Order represents a single order issued to a unit.
type Order struct {
	// Unit being ordered
	UnitType UnitType
	Power    Power
	Location string
	Coast    Coast // Coast of the unit being ordered (for fleets on split coasts)

	// Order details
	Type OrderType

	// Target province (for move, support, convoy)
	Target      string
	TargetCoast Coast // Coast of target (for fleet moves to split-coast provinces)

	// Aux fields for support and convoy:
	// For support: the province the supported unit is in
	// For convoy: the province the convoyed army is in
	AuxLoc string
	// For support: the destination the supported unit is moving to (empty if support-hold)
	// For convoy: the destination the convoyed army is moving to
	AuxTarget string
	// For support: the type of the supported unit
	AuxUnitType UnitType

	// Adjudication scratch fields (spec §3), populated and consumed by the
	// DPTG adjudicator (adjudicate.go) during a single resolution pass. They
	// live alongside the order rather than in a side table so every stage of
	// the algorithm can read and narrow them in place, matching the donor
	// C++ client's UNIT_AND_ORDER shape.
	Supports           []int // indices, into the adjudicator's order slice, of orders supporting this one
	SupportsToDislodge int   // count of supports counted toward dislodging the defender
	NoConvoy           bool  // a MOVE_BY_CONVOY with no valid convoy path at all
	NoArmyToConvoy     bool  // a CONVOY order with no matching army to carry
	ConvoyBroken       bool  // the convoy chain carrying this move was broken
	SupportVoid        bool // support was void from the start (bad order, not cut)
	SupportCut         bool  // support was cut by an attack
	Bounce             bool  // move failed to advance (stood off)
	Dislodged          bool  // the ordering unit was dislodged this turn
	UnitMoves          bool  // the ordering unit successfully advances this turn
	IllegalOrder       bool  // order was rejected before adjudication began
	IllegalReason      string
	DislodgedFrom      string // province the unit was dislodged from (its own Location), set with Dislodged
	MoveNumber         int    // DPTG move-sequence number; the adjudicator leaves it 0
	RingUnitStatus     int    // RingStatus value; the adjudicator leaves it 0 (RingNotInRing)
}

// RingStatus classifies a unit's fate while advancing a ring of attack or a
// head-to-head battle (spec §4.E.1), mirroring the donor C++ client's
// RING_UNIT_STATUS enum.
type RingStatus int

const (
	RingNotInRing         RingStatus = iota
	RingAdvancesRegardless           // every unit in a balanced ring advances
	RingAdvancesIfVacant              // advances only if its destination ends up vacant
	RingStandoffRegardless
	RingSideAdvancesIfVacant
	RingSideAdvancesRegardless
)

// OrderResult describes the outcome of adjudicating an order.
type OrderResult int

const (
	ResultSucceeded OrderResult = iota // Order carried out
	ResultFailed                       // Move bounced or support failed to enable
	ResultDislodged                    // Unit was dislodged
	ResultBounced                      // Move bounced
	ResultCut                          // Support was cut
	ResultVoid                         // Order was invalid, treated as hold
)

func (r OrderResult) String() string {
	switch r {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	case ResultDislodged:
		return "dislodged"
	case ResultBounced:
		return "bounced"
	case ResultCut:
		return "cut"
	case ResultVoid:
		return "void"
	default:
		return "unknown"
	}
}

// ResolvedOrder pairs an order with its adjudication result.
type ResolvedOrder struct {
	Order  Order
	Result OrderResult
}

// Describe returns a human-readable description of the order.
func (o *Order) Describe() string {
	unitStr := "A"
	if o.UnitType == Fleet {
		unitStr = "F"
	}
	loc := o.Location
	if o.Coast != NoCoast {
		loc += "/" + string(o.Coast)
	}

	switch o.Type {
	case OrderHold:
		return fmt.Sprintf("%s %s Hold", unitStr, loc)
	case OrderMove:
		target := o.Target
		if o.TargetCoast != NoCoast {
			target += "/" + string(o.TargetCoast)
		}
		return fmt.Sprintf("%s %s -> %s", unitStr, loc, target)
	case OrderSupport:
		auxUnit := "A"
		if o.AuxUnitType == Fleet {
			auxUnit = "F"
		}
		if o.AuxTarget == "" {
			return fmt.Sprintf("%s %s S %s %s Hold", unitStr, loc, auxUnit, o.AuxLoc)
		}
		return fmt.Sprintf("%s %s S %s %s -> %s", unitStr, loc, auxUnit, o.AuxLoc, o.AuxTarget)
	case OrderConvoy:
		return fmt.Sprintf("%s %s C A %s -> %s", unitStr, loc, o.AuxLoc, o.AuxTarget)
	default:
		return fmt.Sprintf("%s %s ???", unitStr, loc)
	}
}
