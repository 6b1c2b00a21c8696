package token

// Fixed token values, ported from original_source/daide_client/tokens.h.

// Brackets
const (
	OpenBracket  = Token(0x4000)
	CloseBracket = Token(0x4001)
)

// Powers
const (
	PowerAUS = Token(0x4100)
	PowerENG = Token(0x4101)
	PowerFRA = Token(0x4102)
	PowerGER = Token(0x4103)
	PowerITA = Token(0x4104)
	PowerRUS = Token(0x4105)
	PowerTUR = Token(0x4106)
)

// Units
const (
	UnitAMY = Token(0x4200)
	UnitFLT = Token(0x4201)
)

// Orders
const (
	OrderCTO = Token(0x4320)
	OrderCVY = Token(0x4321)
	OrderHLD = Token(0x4322)
	OrderMTO = Token(0x4323)
	OrderSUP = Token(0x4324)
	OrderVIA = Token(0x4325)
	OrderDSB = Token(0x4340)
	OrderRTO = Token(0x4341)
	OrderBLD = Token(0x4380)
	OrderREM = Token(0x4381)
	OrderWVE = Token(0x4382)
)

// Order notes
const (
	NoteMBV = Token(0x4400)
	NoteBPR = Token(0x4401)
	NoteCST = Token(0x4402)
	NoteESC = Token(0x4403)
	NoteFAR = Token(0x4404)
	NoteHSC = Token(0x4405)
	NoteNAS = Token(0x4406)
	NoteNMB = Token(0x4407)
	NoteNMR = Token(0x4408)
	NoteNRN = Token(0x4409)
	NoteNRS = Token(0x440A)
	NoteNSA = Token(0x440B)
	NoteNSC = Token(0x440C)
	NoteNSF = Token(0x440D)
	NoteNSP = Token(0x440E)
	NoteNSU = Token(0x4410)
	NoteNVR = Token(0x4411)
	NoteNYU = Token(0x4412)
	NoteYSC = Token(0x4413)
)

// Results
const (
	ResultSUC = Token(0x4500)
	ResultBNC = Token(0x4501)
	ResultCUT = Token(0x4502)
	ResultDSR = Token(0x4503)
	ResultFLD = Token(0x4504)
	ResultNSO = Token(0x4505)
	ResultRET = Token(0x4506)
)

// Coasts
const (
	CoastNCS = Token(0x4600)
	CoastNEC = Token(0x4602)
	CoastECS = Token(0x4604)
	CoastSEC = Token(0x4606)
	CoastSCS = Token(0x4608)
	CoastSWC = Token(0x460A)
	CoastWCS = Token(0x460C)
	CoastNWC = Token(0x460E)
)

// Seasons
const (
	SeasonSPR = Token(0x4700)
	SeasonSUM = Token(0x4701)
	SeasonFAL = Token(0x4702)
	SeasonAUT = Token(0x4703)
	SeasonWIN = Token(0x4704)
)

// Commands
const (
	CommandCCD = Token(0x4800)
	CommandDRW = Token(0x4801)
	CommandFRM = Token(0x4802)
	CommandGOF = Token(0x4803)
	CommandHLO = Token(0x4804)
	CommandHST = Token(0x4805)
	CommandHUH = Token(0x4806)
	CommandIAM = Token(0x4807)
	CommandLOD = Token(0x4808)
	CommandMAP = Token(0x4809)
	CommandMDF = Token(0x480A)
	CommandMIS = Token(0x480B)
	CommandNME = Token(0x480C)
	CommandNOT = Token(0x480D)
	CommandNOW = Token(0x480E)
	CommandOBS = Token(0x480F)
	CommandOFF = Token(0x4810)
	CommandORD = Token(0x4811)
	CommandOUT = Token(0x4812)
	CommandPRN = Token(0x4813)
	CommandREJ = Token(0x4814)
	CommandSCO = Token(0x4815)
	CommandSLO = Token(0x4816)
	CommandSND = Token(0x4817)
	CommandSUB = Token(0x4818)
	CommandSVE = Token(0x4819)
	CommandTHX = Token(0x481A)
	CommandTME = Token(0x481B)
	CommandYES = Token(0x481C)
	CommandADM = Token(0x481D)
	CommandSMR = Token(0x481E)
)

// Parameters
const (
	ParamAOA = Token(0x4900)
	ParamBTL = Token(0x4901)
	ParamERR = Token(0x4902)
	ParamLVL = Token(0x4903)
	ParamMRT = Token(0x4904)
	ParamMTL = Token(0x4905)
	ParamNPB = Token(0x4906)
	ParamNPR = Token(0x4907)
	ParamPDA = Token(0x4908)
	ParamPTL = Token(0x4909)
	ParamRTL = Token(0x490A)
	ParamUNO = Token(0x490B)
	ParamDSD = Token(0x490D)
)

// Press
const (
	PressALY = Token(0x4A00)
	PressAND = Token(0x4A01)
	PressBWX = Token(0x4A02)
	PressDMZ = Token(0x4A03)
	PressELS = Token(0x4A04)
	PressEXP = Token(0x4A05)
	PressFCT = Token(0x4A06)
	PressFOR = Token(0x4A07)
	PressFWD = Token(0x4A08)
	PressHOW = Token(0x4A09)
	PressIDK = Token(0x4A0A)
	PressIFF = Token(0x4A0B)
	PressINS = Token(0x4A0C)
	PressOCC = Token(0x4A0E)
	PressORR = Token(0x4A0F)
	PressPCE = Token(0x4A10)
	PressPOB = Token(0x4A11)
	PressPRP = Token(0x4A13)
	PressQRY = Token(0x4A14)
	PressSCD = Token(0x4A15)
	PressSRY = Token(0x4A16)
	PressSUG = Token(0x4A17)
	PressTHK = Token(0x4A18)
	PressTHN = Token(0x4A19)
	PressTRY = Token(0x4A1A)
	PressVSS = Token(0x4A1C)
	PressWHT = Token(0x4A1D)
	PressWHY = Token(0x4A1E)
	PressXDO = Token(0x4A1F)
	PressXOY = Token(0x4A20)
	PressYDO = Token(0x4A21)
	PressCHO = Token(0x4A22)
	PressBCC = Token(0x4A23)
	PressUNT = Token(0x4A24)
)

// EndOfMessage is the machine-local end marker (0x5800-0x5FFF block).
const EndOfMessage = Token(0x5FFF)

// Provinces, by full 3-letter DAIDE abbreviation. Grounded directly on
// tokens.h's TOKEN_PROVINCE_* table (the standard map's 75 provinces).
const (
	ProvinceBOH = Token(0x5000)
	ProvinceBUR = Token(0x5001)
	ProvinceGAL = Token(0x5002)
	ProvinceRUH = Token(0x5003)
	ProvinceSIL = Token(0x5004)
	ProvinceTYR = Token(0x5005)
	ProvinceUKR = Token(0x5006)
	ProvinceBUD = Token(0x5107)
	ProvinceMOS = Token(0x5108)
	ProvinceMUN = Token(0x5109)
	ProvincePAR = Token(0x510A)
	ProvinceSER = Token(0x510B)
	ProvinceVIE = Token(0x510C)
	ProvinceWAR = Token(0x510D)
	ProvinceADR = Token(0x520E)
	ProvinceAEG = Token(0x520F)
	ProvinceBAL = Token(0x5210)
	ProvinceBAR = Token(0x5211)
	ProvinceBLA = Token(0x5212)
	ProvinceEAS = Token(0x5213)
	ProvinceECH = Token(0x5214)
	ProvinceGOB = Token(0x5215)
	ProvinceGOL = Token(0x5216)
	ProvinceHEL = Token(0x5217)
	ProvinceION = Token(0x5218)
	ProvinceIRI = Token(0x5219)
	ProvinceMAO = Token(0x521A)
	ProvinceNAO = Token(0x521B)
	ProvinceNTH = Token(0x521C)
	ProvinceNWG = Token(0x521D)
	ProvinceSKA = Token(0x521E)
	ProvinceTYS = Token(0x521F)
	ProvinceWES = Token(0x5220)
	ProvinceALB = Token(0x5421)
	ProvinceAPU = Token(0x5422)
	ProvinceARM = Token(0x5423)
	ProvinceCLY = Token(0x5424)
	ProvinceFIN = Token(0x5425)
	ProvinceGAS = Token(0x5426)
	ProvinceLVN = Token(0x5427)
	ProvinceNAF = Token(0x5428)
	ProvincePIC = Token(0x5429)
	ProvincePIE = Token(0x542A)
	ProvincePRU = Token(0x542B)
	ProvinceSYR = Token(0x542C)
	ProvinceTUS = Token(0x542D)
	ProvinceWAL = Token(0x542E)
	ProvinceYOR = Token(0x542F)
	ProvinceANK = Token(0x5530)
	ProvinceBEL = Token(0x5531)
	ProvinceBER = Token(0x5532)
	ProvinceBRE = Token(0x5533)
	ProvinceCON = Token(0x5534)
	ProvinceDEN = Token(0x5535)
	ProvinceEDI = Token(0x5536)
	ProvinceGRE = Token(0x5537)
	ProvinceHOL = Token(0x5538)
	ProvinceKIE = Token(0x5539)
	ProvinceLON = Token(0x553A)
	ProvinceLVP = Token(0x553B)
	ProvinceMAR = Token(0x553C)
	ProvinceNAP = Token(0x553D)
	ProvinceNWY = Token(0x553E)
	ProvincePOR = Token(0x553F)
	ProvinceROM = Token(0x5540)
	ProvinceRUM = Token(0x5541)
	ProvinceSEV = Token(0x5542)
	ProvinceSMY = Token(0x5543)
	ProvinceSWE = Token(0x5544)
	ProvinceTRI = Token(0x5545)
	ProvinceTUN = Token(0x5546)
	ProvinceVEN = Token(0x5547)
	ProvinceBUL = Token(0x5748)
	ProvinceSPA = Token(0x5749)
	ProvinceSTP = Token(0x574A)
)
