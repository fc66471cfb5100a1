package domain

import (
	"strconv"
	"strings"
)

// System identifies the top-level neurological classification a node belongs
// to. The raw values are the two-letter codes embedded in node codes and in
// the legacy snapshot format.
type System string

const (
	// SystemCentral is the central nervous system (SC).
	SystemCentral System = "SC"

	// SystemPeripheral is the peripheral nervous system (SP).
	SystemPeripheral System = "SP"

	// SystemVascular is the neurological vascular system (SV).
	SystemVascular System = "SV"

	// SystemSpaces covers subarachnoid spaces and cisterns (SE).
	SystemSpaces System = "SE"
)

// AllSystems lists every known system in declaration order.
var AllSystems = []System{SystemCentral, SystemPeripheral, SystemVascular, SystemSpaces}

// IsValid reports whether the system is one of the known classifications.
func (s System) IsValid() bool {
	switch s {
	case SystemCentral, SystemPeripheral, SystemVascular, SystemSpaces:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the system. Unknown values
// degrade to a generic label rather than erroring, matching the tolerance
// the catalog format requires.
func (s System) DisplayName() string {
	switch s {
	case SystemCentral:
		return "Sistema Nervioso Central"
	case SystemPeripheral:
		return "Sistema Nervioso Periférico"
	case SystemVascular:
		return "Sistema Vascular Neurológico"
	case SystemSpaces:
		return "Espacios y Cisternas"
	default:
		return "Sistema desconocido"
	}
}

// CategoryName returns the descriptive name for a category code, e.g.
// "SG" -> "Sustancia Gris". Unknown codes get a generic label.
func CategoryName(categoryID string) string {
	if name, ok := categoryNames[categoryID]; ok {
		return name
	}
	return "Categoría " + categoryID
}

var categoryNames = map[string]string{
	"SG":  "Sustancia Gris",
	"SB":  "Sustancia Blanca",
	"VT":  "Sistema Ventricular",
	"NUC": "Núcleos",
	"SF":  "Surcos y Fisuras",
	"CRB": "Cerebelo",
	"BST": "Tronco Encefálico",
	"AR":  "Arterias",
	"VN":  "Venas",
	"SIN": "Senos Venosos",
	"NC":  "Nervios Craneales",
	"NE":  "Nervios Espinales",
	"GNG": "Ganglios",
	"ESA": "Espacios Subaracnoideos",
	"CIS": "Cisternas",
}

// Node represents a single anatomical structure entry in the catalog.
//
// The Code field is the canonical hierarchical identifier and the primary
// key in the repository; the JSON tags follow the legacy snapshot field
// names so existing caches keep loading byte-for-byte.
type Node struct {
	Code           string   `json:"codigo"`
	RawID          string   `json:"idCode"`
	Classification string   `json:"clasificacion"`
	NameLocal      string   `json:"nombreEspanol"`
	NameLatin      string   `json:"nombreLatin"`
	Description    string   `json:"descripcion"`
	Functions      []string `json:"funciones"`
	Reference      string   `json:"referencia"`
	ImageReference string   `json:"imagenReferencia,omitempty"`
}

// Validate checks if the Node has the minimum data required to be stored.
// Returns an error if any field fails validation.
func (n Node) Validate() error {
	if n.Code == "" {
		return ErrEmptyNodeCode
	}
	if n.NameLocal == "" {
		return ErrEmptyName
	}
	return nil
}

// codeSegment returns the dash-separated segment of the code at the given
// position, or "" when the code is too short.
func (n Node) codeSegment(pos int) string {
	parts := strings.Split(n.Code, "-")
	if len(parts) > pos {
		return parts[pos]
	}
	return ""
}

// System is derived from the code, never stored. Unresolvable values are
// returned as-is; callers that need a known system check IsValid.
func (n Node) System() System {
	return System(n.codeSegment(1))
}

// Category returns the mid-level anatomical grouping encoded in the code.
func (n Node) Category() string {
	return n.codeSegment(2)
}

// Region returns the anatomical region encoded in the code.
func (n Node) Region() string {
	return n.codeSegment(3)
}

// Entity returns the specific entity name encoded in the code.
func (n Node) Entity() string {
	return n.codeSegment(4)
}

// SequenceNumber returns the per-key sequence number parsed from the code,
// or 0 when the segment is absent or non-numeric.
func (n Node) SequenceNumber() int {
	seg := n.codeSegment(5)
	num, err := strconv.Atoi(seg)
	if err != nil {
		return 0
	}
	return num
}
