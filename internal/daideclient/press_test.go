package daideclient

import (
	"testing"

	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

func TestPressBookRemoveMatchingDropsOnExactMatch(t *testing.T) {
	b := newPressBook()
	msg, err := token.FromText("PRP ( PCE ( ENG FRA ) )")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	powers := []diplomacy.Power{diplomacy.England, diplomacy.France}
	id := b.add(powers, msg, false)

	b.removeMatching(powers, msg)
	if _, ok := b.records[id]; ok {
		t.Fatal("expected record to be removed on matching YES/REJ")
	}
}

func TestPressBookRemoveMatchingIgnoresDifferentMessage(t *testing.T) {
	b := newPressBook()
	msg, _ := token.FromText("PRP ( PCE ( ENG FRA ) )")
	other, _ := token.FromText("PRP ( PCE ( ENG GER ) )")
	powers := []diplomacy.Power{diplomacy.England, diplomacy.France}
	id := b.add(powers, msg, false)

	b.removeMatching(powers, other)
	if _, ok := b.records[id]; !ok {
		t.Fatal("expected record to survive a non-matching removeMatching call")
	}
}

func TestPressBookOnCivilDisorderReducesAffectedOnly(t *testing.T) {
	b := newPressBook()
	msg, _ := token.FromText("'hello'")
	affected := b.add([]diplomacy.Power{diplomacy.England, diplomacy.France}, msg, false)
	unaffected := b.add([]diplomacy.Power{diplomacy.Germany, diplomacy.Russia}, msg, false)

	reduced := b.onCivilDisorder(diplomacy.England)
	if len(reduced) != 1 || reduced[0].id != affected {
		t.Fatalf("expected exactly the England record to be reduced, got %+v", reduced)
	}
	if !b.records[affected].resendPartial {
		t.Fatal("expected resendPartial to be set on the reduced record")
	}
	if len(b.records[affected].currentPowers) != 1 || b.records[affected].currentPowers[0] != diplomacy.France {
		t.Fatalf("expected only France left pending, got %+v", b.records[affected].currentPowers)
	}
	if b.records[unaffected].resendPartial {
		t.Fatal("did not expect the unrelated record to be touched")
	}
}

func TestPressBookOnCivilDisorderCanEmptyAPendingRecord(t *testing.T) {
	b := newPressBook()
	msg, _ := token.FromText("'hello'")
	id := b.add([]diplomacy.Power{diplomacy.England}, msg, false)

	reduced := b.onCivilDisorder(diplomacy.England)
	if len(reduced) != 1 {
		t.Fatalf("expected 1 reduced record, got %d", len(reduced))
	}
	if len(b.records[id].currentPowers) != 0 {
		t.Fatalf("expected no powers left pending, got %+v", b.records[id].currentPowers)
	}
}
