package token

// Category bytes. Grounded on original_source/daide_client/tokens.h's
// CATEGORY_* constants.
const (
	CategoryBracket   byte = 0x40
	CategoryPower     byte = 0x41
	CategoryUnit      byte = 0x42
	CategoryOrder     byte = 0x43
	CategoryOrderNote byte = 0x44
	CategoryResult    byte = 0x45
	CategoryCoast     byte = 0x46
	CategorySeason    byte = 0x47
	CategoryCommand   byte = 0x48
	CategoryParameter byte = 0x49
	CategoryPress     byte = 0x4A
	CategoryASCII     byte = 0x4B

	CategoryNumberMin byte = 0x00
	CategoryNumberMax byte = 0x3F

	CategoryProvinceMin byte = 0x50
	CategoryProvinceMax byte = 0x57
)

// Province attribute bits, packed into the low nibble of a province category
// byte (0x50-0x57): bit 0 is the supply-centre flag, bit 1 distinguishes
// sea from land (meaningful only among non-coastal provinces), bit 2 marks a
// coastal province, and among coastal provinces the same low bits additionally
// flag a split coast. See spec §6.
const (
	provinceAttrSC         byte = 0x01
	provinceAttrSea        byte = 0x02
	provinceAttrCoastal    byte = 0x04
	provinceAttrSplitCoast byte = 0x03 // combined with coastal: coastal + split
)

// IsSupplyCentre reports whether a province token's category marks it as a
// supply centre.
func (t Token) IsSupplyCentre() bool {
	return t.IsProvince() && t.Category()&provinceAttrSC != 0
}

// IsSeaProvince reports whether a province token's category marks it as sea
// (non-coastal, water-only).
func (t Token) IsSeaProvince() bool {
	return t.IsProvince() && t.Category()&provinceAttrCoastal == 0 && t.Category()&provinceAttrSea != 0
}

// IsLandProvince reports whether a province token's category marks it as
// inland (non-coastal, non-sea).
func (t Token) IsLandProvince() bool {
	return t.IsProvince() && t.Category()&provinceAttrCoastal == 0 && t.Category()&provinceAttrSea == 0
}

// IsCoastalProvince reports whether a province token's category marks it as
// coastal (reachable by both armies and fleets).
func (t Token) IsCoastalProvince() bool {
	return t.IsProvince() && t.Category()&provinceAttrCoastal != 0
}

// HasSplitCoast reports whether a coastal province token's category marks it
// as having more than one named coast (e.g. Spain, Bulgaria, St Petersburg).
func (t Token) HasSplitCoast() bool {
	return t.IsCoastalProvince() && t.Category()&provinceAttrSplitCoast == provinceAttrSplitCoast
}
