package daideclient

import (
	"github.com/freeeve/daide-client/pkg/daide/token"
	"github.com/freeeve/daide-client/pkg/diplomacy"
)

// pressRecord tracks one outgoing SND, grounded on
// original_source/daide_client/base_bot.h's SentPressInfo: the power set a
// press message was originally sent to, the (possibly reduced) set it is
// still pending on, the message itself, and whether a CCD has already
// triggered a partial resend.
type pressRecord struct {
	id             int
	originalPowers []diplomacy.Power
	currentPowers  []diplomacy.Power
	msg            token.Message
	resendPartial  bool
	isBroadcast    bool
}

// pressBook is SentPressList: the set of outstanding press records a session
// is waiting on a YES/REJ for.
type pressBook struct {
	next    int
	records map[int]*pressRecord
}

func newPressBook() *pressBook {
	return &pressBook{records: make(map[int]*pressRecord)}
}

func (b *pressBook) add(powers []diplomacy.Power, msg token.Message, isBroadcast bool) int {
	b.next++
	id := b.next
	orig := append([]diplomacy.Power(nil), powers...)
	cur := append([]diplomacy.Power(nil), powers...)
	b.records[id] = &pressRecord{id: id, originalPowers: orig, currentPowers: cur, msg: msg, isBroadcast: isBroadcast}
	return id
}

func (b *pressBook) remove(id int) { delete(b.records, id) }

// onCivilDisorder removes power from every pending record's current power
// set, marking resendPartial. It returns the records now reduced, so the
// caller can decide whether to resend to the survivors or surface a failure
// (a record reduced to zero powers has nothing left to resend to).
func (b *pressBook) onCivilDisorder(power diplomacy.Power) []*pressRecord {
	var affected []*pressRecord
	for _, rec := range b.records {
		reduced := rec.currentPowers[:0]
		found := false
		for _, p := range rec.currentPowers {
			if p == power {
				found = true
				continue
			}
			reduced = append(reduced, p)
		}
		if !found {
			continue
		}
		rec.currentPowers = reduced
		rec.resendPartial = true
		affected = append(affected, rec)
	}
	return affected
}

// removeMatching drops one pending record whose message and original power
// set matches, as YES(SND ...)/REJ(SND ...) resolution does. Records are
// kept in a map, so when several match, which one is dropped is not defined.
func (b *pressBook) removeMatching(powers []diplomacy.Power, msg token.Message) {
	for id, rec := range b.records {
		if !rec.msg.Equal(msg) || !samePowerSet(rec.originalPowers, powers) {
			continue
		}
		delete(b.records, id)
		return
	}
}

func samePowerSet(a, b []diplomacy.Power) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[diplomacy.Power]bool, len(a))
	for _, p := range a {
		seen[p] = true
	}
	for _, p := range b {
		if !seen[p] {
			return false
		}
	}
	return true
}
