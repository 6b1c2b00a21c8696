package diplomacy

import "github.com/freeeve/daide-client/pkg/daide/token"

// Per-order constructors, grounded on the donor C++ client's
// MapAndUnits::set_*_order family (map_and_units.h): each builds an Order in
// its fully-specified form and returns it with the MBV order-note token.
// The setters do not look at the board: they do not check that a unit of
// the expected kind is at the province and never return a rejection note;
// ValidateOrder and ValidateRetreatOrder do the legality checks.

// SetHold builds a hold order.
func SetHold(power Power, unitType UnitType, loc string, coast Coast) (Order, token.Token) {
	return Order{Power: power, UnitType: unitType, Location: loc, Coast: coast, Type: OrderHold}, token.NoteMBV
}

// SetMove builds a move order, without convoy.
func SetMove(power Power, unitType UnitType, loc string, coast Coast, target string, targetCoast Coast) (Order, token.Token) {
	return Order{
		Power: power, UnitType: unitType, Location: loc, Coast: coast,
		Type: OrderMove, Target: target, TargetCoast: targetCoast,
	}, token.NoteMBV
}

// SetMoveByConvoy builds an army move order. Order has no via-convoy flag,
// so the result is the same as SetMove's for an army; the adjudicator treats
// a move to a non-adjacent province as a convoyed one.
func SetMoveByConvoy(power Power, loc string, target string) (Order, token.Token) {
	return Order{
		Power: power, UnitType: Army, Location: loc,
		Type: OrderMove, Target: target,
	}, token.NoteMBV
}

// SetSupportToHold builds a support-to-hold order.
func SetSupportToHold(power Power, unitType UnitType, loc string, coast Coast, auxUnit UnitType, auxLoc string) (Order, token.Token) {
	return Order{
		Power: power, UnitType: unitType, Location: loc, Coast: coast,
		Type: OrderSupport, AuxLoc: auxLoc, AuxUnitType: auxUnit,
	}, token.NoteMBV
}

// SetSupportToMove builds a support-to-move order.
func SetSupportToMove(power Power, unitType UnitType, loc string, coast Coast, auxUnit UnitType, auxLoc, auxTarget string) (Order, token.Token) {
	return Order{
		Power: power, UnitType: unitType, Location: loc, Coast: coast,
		Type: OrderSupport, AuxLoc: auxLoc, AuxTarget: auxTarget, AuxUnitType: auxUnit,
	}, token.NoteMBV
}

// SetConvoy builds a convoy order (a fleet carrying an army).
func SetConvoy(power Power, loc string, auxLoc, auxTarget string) (Order, token.Token) {
	return Order{
		Power: power, UnitType: Fleet, Location: loc,
		Type: OrderConvoy, AuxLoc: auxLoc, AuxTarget: auxTarget, AuxUnitType: Army,
	}, token.NoteMBV
}

// SetRetreat builds a retreat-phase move order.
func SetRetreat(power Power, unitType UnitType, loc string, coast Coast, target string, targetCoast Coast) (RetreatOrder, token.Token) {
	return RetreatOrder{
		Power: power, UnitType: unitType, Location: loc, Coast: coast,
		Type: RetreatMove, Target: target, TargetCoast: targetCoast,
	}, token.NoteMBV
}

// SetRetreatDisband builds a retreat-phase disband order.
func SetRetreatDisband(power Power, unitType UnitType, loc string, coast Coast) (RetreatOrder, token.Token) {
	return RetreatOrder{
		Power: power, UnitType: unitType, Location: loc, Coast: coast, Type: RetreatDisband,
	}, token.NoteMBV
}

// SetBuild builds a build order.
func SetBuild(power Power, unitType UnitType, loc string, coast Coast) (BuildOrder, token.Token) {
	return BuildOrder{Power: power, Type: BuildUnit, UnitType: unitType, Location: loc, Coast: coast}, token.NoteMBV
}

// SetRemove builds a disband order for the adjustment phase.
func SetRemove(power Power, unitType UnitType, loc string) (BuildOrder, token.Token) {
	return BuildOrder{Power: power, Type: DisbandUnit, UnitType: unitType, Location: loc}, token.NoteMBV
}

// SetWaive builds a waive-build order.
func SetWaive(power Power) (BuildOrder, token.Token) {
	return BuildOrder{Power: power, Type: WaiveBuild}, token.NoteMBV
}
