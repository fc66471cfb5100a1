package importer

// Default codes used when no table entry or heuristic matches.
const (
	defaultSystem         = "SC"
	defaultCategory       = "SG"
	defaultRegion         = "GEN"
	defaultClassification = "ANAT"
)

// systemByPrefix maps a raw-identifier prefix to its neurological system.
var systemByPrefix = map[string]string{
	// Cortex and cortical structures
	"CTX":    "SC",
	"GYR":    "SC",
	"SUL":    "SC",
	"FIS":    "SC",
	"LOB":    "SC",
	"LOBPAR": "SC",

	// Cerebellum and related structures
	"CB":  "SC",
	"PED": "SC",
	"NUC": "SC",

	// Brainstem
	"PONS": "SC",
	"MES":  "SC",
	"MED":  "SC",

	// Other CNS structures
	"CORP": "SC",
	"HEM":  "SC",
	"INS":  "SC",
	"AMYG": "SC",
	"HIP":  "SC",

	// Vascular system
	"ART": "SV",
	"VEN": "SV", // venous, unless the VEN- ventricle heuristic fires first

	// Peripheral nerves
	"NERV": "SP",

	// Spaces
	"CIS": "SE",
}

// categoryByPrefix maps a raw-identifier prefix to its anatomical category.
var categoryByPrefix = map[string]string{
	// Gray matter
	"CTX":    "SG",
	"GYR":    "SG",
	"LOB":    "SG",
	"LOBPAR": "SG",
	"NUC":    "NUC",

	// White matter
	"CORP": "SB",
	"TRC":  "SB",
	"FIMB": "SB",
	"FORN": "SB",
	"CING": "SB",

	// Sulci and fissures
	"SUL": "SF",
	"FIS": "SF",

	// Ventricles
	"VEN": "VT",

	// Cerebellum
	"CB": "CRB",

	// Arteries
	"ART": "AR",

	// Spaces
	"CIS": "CIS",
}

// classificationByPrefix maps a raw-identifier prefix to the 4-letter
// classification tag.
var classificationByPrefix = map[string]string{
	"CTX":  "CORT",
	"GYR":  "CORT",
	"LOB":  "CORT",
	"SUL":  "SULC",
	"FIS":  "SULC",
	"NUC":  "NUCL",
	"CB":   "CRBM",
	"VEN":  "VENT",
	"CORP": "SBST",
	"TRC":  "SBST",
	"PONS": "BSTM",
	"MES":  "BSTM",
	"MED":  "BSTM",
	"INS":  "CORT",
	"PED":  "CONN",
	"HIP":  "LIMC",
	"AMYG": "LIMC",
}

// cerebellarMarkers are raw-identifier substrings that mark cerebellar
// structures regardless of prefix.
var cerebellarMarkers = []string{"VERM", "FLOC"}
