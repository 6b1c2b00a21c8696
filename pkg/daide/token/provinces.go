package token

// AllProvinces returns every province token in the standard map's dictionary,
// in no particular order. Used by map construction (pkg/diplomacy/mdf.go) to
// build an id<->token lookup without duplicating the province table.
func AllProvinces() []Token {
	out := make([]Token, 0, 75)
	for t := range tokenNames {
		if t.IsProvince() {
			out = append(out, t)
		}
	}
	return out
}
