package token

// tokenNames is the token->text half of the dictionary used for textual
// round-tripping (spec §3/§4.A). Numbers and provinces with no fixed-token
// entry are rendered elsewhere (Token.String / message text rendering);
// this table covers the named, fixed-value tokens.
var tokenNames = map[Token]string{
	OpenBracket:  "(",
	CloseBracket: ")",

	PowerAUS: "AUS", PowerENG: "ENG", PowerFRA: "FRA", PowerGER: "GER",
	PowerITA: "ITA", PowerRUS: "RUS", PowerTUR: "TUR",

	UnitAMY: "AMY", UnitFLT: "FLT",

	OrderCTO: "CTO", OrderCVY: "CVY", OrderHLD: "HLD", OrderMTO: "MTO",
	OrderSUP: "SUP", OrderVIA: "VIA", OrderDSB: "DSB", OrderRTO: "RTO",
	OrderBLD: "BLD", OrderREM: "REM", OrderWVE: "WVE",

	NoteMBV: "MBV", NoteBPR: "BPR", NoteCST: "CST", NoteESC: "ESC",
	NoteFAR: "FAR", NoteHSC: "HSC", NoteNAS: "NAS", NoteNMB: "NMB",
	NoteNMR: "NMR", NoteNRN: "NRN", NoteNRS: "NRS", NoteNSA: "NSA",
	NoteNSC: "NSC", NoteNSF: "NSF", NoteNSP: "NSP", NoteNSU: "NSU",
	NoteNVR: "NVR", NoteNYU: "NYU", NoteYSC: "YSC",

	ResultSUC: "SUC", ResultBNC: "BNC", ResultCUT: "CUT", ResultDSR: "DSR",
	ResultFLD: "FLD", ResultNSO: "NSO", ResultRET: "RET",

	CoastNCS: "NCS", CoastNEC: "NEC", CoastECS: "ECS", CoastSEC: "SEC",
	CoastSCS: "SCS", CoastSWC: "SWC", CoastWCS: "WCS", CoastNWC: "NWC",

	SeasonSPR: "SPR", SeasonSUM: "SUM", SeasonFAL: "FAL", SeasonAUT: "AUT",
	SeasonWIN: "WIN",

	CommandCCD: "CCD", CommandDRW: "DRW", CommandFRM: "FRM", CommandGOF: "GOF",
	CommandHLO: "HLO", CommandHST: "HST", CommandHUH: "HUH", CommandIAM: "IAM",
	CommandLOD: "LOD", CommandMAP: "MAP", CommandMDF: "MDF", CommandMIS: "MIS",
	CommandNME: "NME", CommandNOT: "NOT", CommandNOW: "NOW", CommandOBS: "OBS",
	CommandOFF: "OFF", CommandORD: "ORD", CommandOUT: "OUT", CommandPRN: "PRN",
	CommandREJ: "REJ", CommandSCO: "SCO", CommandSLO: "SLO", CommandSND: "SND",
	CommandSUB: "SUB", CommandSVE: "SVE", CommandTHX: "THX", CommandTME: "TME",
	CommandYES: "YES", CommandADM: "ADM", CommandSMR: "SMR",

	ParamAOA: "AOA", ParamBTL: "BTL", ParamERR: "ERR", ParamLVL: "LVL",
	ParamMRT: "MRT", ParamMTL: "MTL", ParamNPB: "NPB", ParamNPR: "NPR",
	ParamPDA: "PDA", ParamPTL: "PTL", ParamRTL: "RTL", ParamUNO: "UNO",
	ParamDSD: "DSD",

	PressALY: "ALY", PressAND: "AND", PressBWX: "BWX", PressDMZ: "DMZ",
	PressELS: "ELS", PressEXP: "EXP", PressFCT: "FCT", PressFOR: "FOR",
	PressFWD: "FWD", PressHOW: "HOW", PressIDK: "IDK", PressIFF: "IFF",
	PressINS: "INS", PressOCC: "OCC", PressORR: "ORR", PressPCE: "PCE",
	PressPOB: "POB", PressPRP: "PRP", PressQRY: "QRY", PressSCD: "SCD",
	PressSRY: "SRY", PressSUG: "SUG", PressTHK: "THK", PressTHN: "THN",
	PressTRY: "TRY", PressVSS: "VSS", PressWHT: "WHT", PressWHY: "WHY",
	PressXDO: "XDO", PressXOY: "XOY", PressYDO: "YDO", PressCHO: "CHO",
	PressBCC: "BCC", PressUNT: "UNT",

	ProvinceBOH: "BOH", ProvinceBUR: "BUR", ProvinceGAL: "GAL", ProvinceRUH: "RUH",
	ProvinceSIL: "SIL", ProvinceTYR: "TYR", ProvinceUKR: "UKR", ProvinceBUD: "BUD",
	ProvinceMOS: "MOS", ProvinceMUN: "MUN", ProvincePAR: "PAR", ProvinceSER: "SER",
	ProvinceVIE: "VIE", ProvinceWAR: "WAR", ProvinceADR: "ADR", ProvinceAEG: "AEG",
	ProvinceBAL: "BAL", ProvinceBAR: "BAR", ProvinceBLA: "BLA", ProvinceEAS: "EAS",
	ProvinceECH: "ECH", ProvinceGOB: "GOB", ProvinceGOL: "GOL", ProvinceHEL: "HEL",
	ProvinceION: "ION", ProvinceIRI: "IRI", ProvinceMAO: "MAO", ProvinceNAO: "NAO",
	ProvinceNTH: "NTH", ProvinceNWG: "NWG", ProvinceSKA: "SKA", ProvinceTYS: "TYS",
	ProvinceWES: "WES", ProvinceALB: "ALB", ProvinceAPU: "APU", ProvinceARM: "ARM",
	ProvinceCLY: "CLY", ProvinceFIN: "FIN", ProvinceGAS: "GAS", ProvinceLVN: "LVN",
	ProvinceNAF: "NAF", ProvincePIC: "PIC", ProvincePIE: "PIE", ProvincePRU: "PRU",
	ProvinceSYR: "SYR", ProvinceTUS: "TUS", ProvinceWAL: "WAL", ProvinceYOR: "YOR",
	ProvinceANK: "ANK", ProvinceBEL: "BEL", ProvinceBER: "BER", ProvinceBRE: "BRE",
	ProvinceCON: "CON", ProvinceDEN: "DEN", ProvinceEDI: "EDI", ProvinceGRE: "GRE",
	ProvinceHOL: "HOL", ProvinceKIE: "KIE", ProvinceLON: "LON", ProvinceLVP: "LVP",
	ProvinceMAR: "MAR", ProvinceNAP: "NAP", ProvinceNWY: "NWY", ProvincePOR: "POR",
	ProvinceROM: "ROM", ProvinceRUM: "RUM", ProvinceSEV: "SEV", ProvinceSMY: "SMY",
	ProvinceSWE: "SWE", ProvinceTRI: "TRI", ProvinceTUN: "TUN", ProvinceVEN: "VEN",
	ProvinceBUL: "BUL", ProvinceSPA: "SPA", ProvinceSTP: "STP",
}

// namesToToken is the reverse index, built once at package init for text
// parsing.
var namesToToken = func() map[string]Token {
	m := make(map[string]Token, len(tokenNames))
	for tok, name := range tokenNames {
		m[name] = tok
	}
	return m
}()

// Lookup returns the token named by text, if any fixed-token entry in the
// dictionary matches it exactly.
func Lookup(text string) (Token, bool) {
	t, ok := namesToToken[text]
	return t, ok
}
