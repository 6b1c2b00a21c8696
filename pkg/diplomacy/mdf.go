package diplomacy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/freeeve/daide-client/pkg/daide/token"
)

var (
	provinceIDByToken map[token.Token]string
	provinceTokenByID map[string]token.Token
)

func init() {
	provinceIDByToken = make(map[token.Token]string, 75)
	provinceTokenByID = make(map[string]token.Token, 75)
	for _, t := range token.AllProvinces() {
		id := strings.ToLower(t.String())
		switch id {
		case "ech":
			id = "eng"
		case "gob":
			id = "bot"
		case "nwg":
			id = "nrg"
		}
		provinceIDByToken[t] = id
		provinceTokenByID[id] = t
	}
}

// PowerFromToken converts a DAIDE power token to a Power, returning Neutral
// for anything that isn't one of the seven great powers.
func PowerFromToken(t token.Token) Power { return powerFromToken(t) }

// PowerToToken converts a Power to its DAIDE wire token. ok is false for
// Neutral, which has no power token of its own.
func PowerToToken(p Power) (token.Token, bool) { return powerToToken(p) }

// ProvinceFromToken converts a DAIDE province token to its lowercase id (as
// used throughout pkg/diplomacy). ok is false for a token that isn't one of
// the standard map's 75 provinces.
func ProvinceFromToken(t token.Token) (id string, ok bool) {
	id, ok = provinceIDByToken[t]
	return id, ok
}

// ProvinceToToken converts a lowercase province id to its DAIDE wire token.
func ProvinceToToken(id string) (token.Token, bool) {
	t, ok := provinceTokenByID[strings.ToLower(id)]
	return t, ok
}

// CoastToToken converts a Coast to its DAIDE wire token (0 for NoCoast).
func CoastToToken(c Coast) token.Token { return coastToToken(c) }

// CoastFromToken converts a DAIDE coast token to a Coast.
func CoastFromToken(t token.Token) Coast { return coastFromToken(t) }

func powerFromToken(t token.Token) Power {
	switch t {
	case token.PowerAUS:
		return Austria
	case token.PowerENG:
		return England
	case token.PowerFRA:
		return France
	case token.PowerGER:
		return Germany
	case token.PowerITA:
		return Italy
	case token.PowerRUS:
		return Russia
	case token.PowerTUR:
		return Turkey
	default:
		return Neutral
	}
}

func powerToToken(p Power) (token.Token, bool) {
	switch p {
	case Austria:
		return token.PowerAUS, true
	case England:
		return token.PowerENG, true
	case France:
		return token.PowerFRA, true
	case Germany:
		return token.PowerGER, true
	case Italy:
		return token.PowerITA, true
	case Russia:
		return token.PowerRUS, true
	case Turkey:
		return token.PowerTUR, true
	default:
		return 0, false
	}
}

func provinceTypeFromToken(t token.Token) ProvinceType {
	switch {
	case t.IsCoastalProvince():
		return Coastal
	case t.IsSeaProvince():
		return Sea
	default:
		return Land
	}
}

func coastFromToken(t token.Token) Coast {
	switch t {
	case token.CoastNCS, token.CoastNEC, token.CoastNWC:
		return NorthCoast
	case token.CoastSCS, token.CoastSEC, token.CoastSWC:
		return SouthCoast
	case token.CoastECS:
		return EastCoast
	case token.CoastWCS:
		return WestCoast
	default:
		return NoCoast
	}
}

// BuildFromMDF constructs a DiplomacyMap from a server-supplied MDF message,
// in the three phases spec §4.C names: power list, supply-centre blocks
// (grouped by owner, plus a block of unowned centres), then per-province
// adjacency lists. The map is immutable once returned; there is no cached
// singleton (a fresh map is built for every MDF received, since a client may
// in principle play under more than one map in its lifetime).
func BuildFromMDF(msg token.Message) (*DiplomacyMap, error) {
	if msg.Len() == 0 || msg.Token(0) != token.CommandMDF {
		return nil, fmt.Errorf("diplomacy: BuildFromMDF: message does not start with MDF")
	}
	if msg.SubmessageCount() < 4 {
		return nil, fmt.Errorf("diplomacy: BuildFromMDF: expected 3 submessages after MDF, got %d", msg.SubmessageCount()-1)
	}

	m := &DiplomacyMap{
		Provinces:   make(map[string]*Province, 75),
		Adjacencies: make(map[string][]Adjacency, 150),
	}

	if err := parsePowerList(m, msg.Submessage(1)); err != nil {
		return nil, err
	}
	if err := parseCentreBlocks(m, msg.Submessage(2)); err != nil {
		return nil, err
	}
	if err := parseAdjacencies(m, msg.Submessage(3)); err != nil {
		return nil, err
	}
	return m, nil
}

func parsePowerList(m *DiplomacyMap, powers token.Message) error {
	for i := 0; i < powers.Len(); i++ {
		// Powers are recorded implicitly via their supply centres and units;
		// the list itself just establishes which power tokens are valid for
		// this variant. Nothing to store on the map yet beyond validation.
		if powers.Token(i).Category() != token.CategoryPower {
			return fmt.Errorf("diplomacy: BuildFromMDF: power list contains non-power token %s", powers.Token(i))
		}
	}
	return nil
}

func ensureProvince(m *DiplomacyMap, id string) *Province {
	p, ok := m.Provinces[id]
	if !ok {
		p = &Province{ID: id, HomePower: Neutral}
		m.Provinces[id] = p
	}
	return p
}

func parseCentreBlocks(m *DiplomacyMap, centres token.Message) error {
	for i := 0; i < centres.SubmessageCount(); i++ {
		block := centres.Submessage(i)
		if block.Len() == 0 {
			continue
		}
		owner := Neutral
		start := 0
		if first := block.Token(0); first.Category() == token.CategoryPower {
			owner = powerFromToken(first)
			start = 1
		}
		for j := start; j < block.Len(); j++ {
			id, ok := provinceIDByToken[block.Token(j)]
			if !ok {
				return fmt.Errorf("diplomacy: BuildFromMDF: unknown province token %s in SC block", block.Token(j))
			}
			p := ensureProvince(m, id)
			p.IsSupplyCenter = true
			if owner != Neutral {
				p.HomePower = owner
			}
		}
	}
	return nil
}

// parseAdjacencies walks each province's adjacency definition directly over
// its flat token stream rather than through the submessage index: the
// coast-indicator/entry grammar (spec §4.C) mixes bare tokens and bracketed
// pairs at the same nesting level in a way that doesn't align with
// Message's "one bracketed group = one submessage" rule, so this is a
// sequential scan, not a submessage walk.
func parseAdjacencies(m *DiplomacyMap, adjacencies token.Message) error {
	for i := 0; i < adjacencies.SubmessageCount(); i++ {
		def := adjacencies.Submessage(i)
		if err := parseProvinceAdjacency(m, def); err != nil {
			return err
		}
	}
	return nil
}

func parseProvinceAdjacency(m *DiplomacyMap, def token.Message) error {
	toks := def.Tokens()
	if len(toks) == 0 {
		return fmt.Errorf("diplomacy: BuildFromMDF: empty province adjacency definition")
	}
	provTok := toks[0]
	id, ok := provinceIDByToken[provTok]
	if !ok {
		return fmt.Errorf("diplomacy: BuildFromMDF: unknown province token %s in adjacency list", provTok)
	}
	p := ensureProvince(m, id)
	p.Type = provinceTypeFromToken(provTok)
	if provTok.IsSupplyCentre() {
		p.IsSupplyCenter = true
	}
	if provTok.HasSplitCoast() {
		// The province token only flags that a split exists; which named
		// coasts it has is resolved from the coast tokens actually used in
		// its own adjacency entries below.
		p.Coasts = nil
	}

	i := 1
	declaredFleet := false
	declaredCoast := NoCoast
	haveGroup := false
	for i < len(toks) {
		t := toks[i]
		switch t {
		case token.UnitAMY:
			declaredFleet, declaredCoast, haveGroup = false, NoCoast, true
			i++
			continue
		case token.UnitFLT:
			declaredFleet, declaredCoast, haveGroup = true, NoCoast, true
			i++
			continue
		case token.OpenBracket:
			// Either "(FLT coast)" - a new coast-specific group marker - or
			// "(province coast)" - a single adjacency entry. Distinguish by
			// whether the first inner token is a unit token.
			if i+3 >= len(toks) || toks[i+3] != token.CloseBracket {
				return fmt.Errorf("diplomacy: BuildFromMDF: malformed bracketed pair in %s's adjacency list", id)
			}
			inner0, inner1 := toks[i+1], toks[i+2]
			if inner0 == token.UnitFLT || inner0 == token.UnitAMY {
				declaredFleet = inner0 == token.UnitFLT
				declaredCoast = coastFromToken(inner1)
				if provTok.HasSplitCoast() && declaredCoast != NoCoast {
					known := false
					for _, c := range p.Coasts {
						known = known || c == declaredCoast
					}
					if !known {
						p.Coasts = append(p.Coasts, declaredCoast)
					}
				}
				haveGroup = true
				i += 4
				continue
			}
			destID, ok := provinceIDByToken[inner0]
			if !ok {
				return fmt.Errorf("diplomacy: BuildFromMDF: unknown province token %s in %s's adjacency entry", inner0, id)
			}
			if !haveGroup {
				return fmt.Errorf("diplomacy: BuildFromMDF: adjacency entry before coast declaration in %s", id)
			}
			addAdjacency(m, id, declaredCoast, destID, coastFromToken(inner1), !declaredFleet, declaredFleet)
			i += 4
			continue
		default:
			destID, ok := provinceIDByToken[t]
			if !ok {
				return fmt.Errorf("diplomacy: BuildFromMDF: unknown province token %s in %s's adjacency list", t, id)
			}
			if !haveGroup {
				return fmt.Errorf("diplomacy: BuildFromMDF: adjacency entry before coast declaration in %s", id)
			}
			// A bare entry gives no destination coast: only split-coast
			// destinations need one, and those are always written as an
			// explicit (province coast) pair instead.
			addAdjacency(m, id, declaredCoast, destID, NoCoast, !declaredFleet, declaredFleet)
			i++
		}
	}
	return nil
}

func addAdjacency(m *DiplomacyMap, from string, fromCoast Coast, to string, toCoast Coast, armyOK, fleetOK bool) {
	m.Adjacencies[from] = append(m.Adjacencies[from], Adjacency{
		From:      from,
		FromCoast: fromCoast,
		To:        to,
		ToCoast:   toCoast,
		ArmyOK:    armyOK,
		FleetOK:   fleetOK,
	})
}

func coastToToken(c Coast) token.Token {
	switch c {
	case NorthCoast:
		return token.CoastNCS
	case SouthCoast:
		return token.CoastSCS
	case EastCoast:
		return token.CoastECS
	case WestCoast:
		return token.CoastWCS
	default:
		return 0
	}
}

func msgOf(toks ...token.Token) token.Message {
	m, err := token.NewMessage(toks)
	if err != nil {
		// toks here never contain brackets, so this can't happen.
		panic(err)
	}
	return m
}

func bracketPair(a, b token.Token) token.Message {
	return msgOf(a, b).Enclose()
}

// StandardMapTokens synthesizes an MDF token message describing the
// standard map, built from the same province/adjacency data buildStandardMap
// uses. It lets the standard map reach the board through BuildFromMDF like
// any server-supplied map, rather than being special-cased (spec §9).
func StandardMapTokens() token.Message {
	m := buildStandardMap()

	msg := msgOf(token.CommandMDF)
	msg = msg.Concat(powerListTokens())
	msg = msg.Concat(centreBlockTokens(m))
	msg = msg.Concat(adjacencyListTokens(m))
	return msg
}

func powerListTokens() token.Message {
	toks := make([]token.Token, 0, 7)
	for _, p := range AllPowers() {
		t, _ := powerToToken(p)
		toks = append(toks, t)
	}
	return msgOf(toks...).Enclose()
}

func centreBlockTokens(m *DiplomacyMap) token.Message {
	byOwner := make(map[Power][]token.Token)
	var unowned []token.Token
	for _, id := range sortedProvinceIDs(m) {
		p := m.Provinces[id]
		if !p.IsSupplyCenter {
			continue
		}
		pt := provinceTokenByID[id]
		if p.HomePower == Neutral {
			unowned = append(unowned, pt)
		} else {
			byOwner[p.HomePower] = append(byOwner[p.HomePower], pt)
		}
	}

	blocks := msgOf()
	for _, pw := range AllPowers() {
		centres := byOwner[pw]
		if len(centres) == 0 {
			continue
		}
		ownerTok, _ := powerToToken(pw)
		blockToks := append([]token.Token{ownerTok}, centres...)
		blocks = blocks.Concat(msgOf(blockToks...).Enclose())
	}
	if len(unowned) > 0 {
		blocks = blocks.Concat(msgOf(unowned...).Enclose())
	}
	return blocks.Enclose()
}

func sortedProvinceIDs(m *DiplomacyMap) []string {
	ids := make([]string, 0, len(m.Provinces))
	for id := range m.Provinces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type adjGroupKey struct {
	coast Coast
	fleet bool
}

func adjacencyListTokens(m *DiplomacyMap) token.Message {
	defs := msgOf()
	for _, id := range sortedProvinceIDs(m) {
		defs = defs.Concat(provinceAdjacencyTokens(m, id))
	}
	return defs.Enclose()
}

func provinceAdjacencyTokens(m *DiplomacyMap, id string) token.Message {
	groups := make(map[adjGroupKey][]Adjacency)
	var order []adjGroupKey
	for _, adj := range m.Adjacencies[id] {
		if adj.ArmyOK {
			k := adjGroupKey{adj.FromCoast, false}
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], adj)
		}
		if adj.FleetOK {
			k := adjGroupKey{adj.FromCoast, true}
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], adj)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].fleet != order[j].fleet {
			return !order[i].fleet
		}
		return order[i].coast < order[j].coast
	})

	def := msgOf(provinceTokenByID[id])
	for _, k := range order {
		unitTok := token.UnitAMY
		if k.fleet {
			unitTok = token.UnitFLT
		}
		if k.coast == NoCoast {
			def = def.ConcatToken(unitTok)
		} else {
			def = def.Concat(bracketPair(unitTok, coastToToken(k.coast)))
		}

		entries := groups[k]
		sort.Slice(entries, func(i, j int) bool { return entries[i].To < entries[j].To })
		for _, adj := range entries {
			destTok := provinceTokenByID[adj.To]
			if adj.ToCoast == NoCoast {
				def = def.ConcatToken(destTok)
			} else {
				def = def.Concat(bracketPair(destTok, coastToToken(adj.ToCoast)))
			}
		}
	}
	return def.Enclose()
}
