package domain

// RelationType identifies the kind of directed edge between two anatomical
// nodes. The raw values are the legacy Spanish tokens used inside relation
// codes and in persisted snapshots.
type RelationType string

const (
	// RelationIrrigates marks an edge that supplies blood to the target.
	RelationIrrigates RelationType = "IRRIGA"

	// RelationDrains marks an edge that receives blood from the target.
	RelationDrains RelationType = "DRENA"

	// RelationConnects marks a structural connection between two nodes.
	RelationConnects RelationType = "CONECTA"

	// RelationInnervates marks an edge that provides innervation.
	RelationInnervates RelationType = "INERVA"

	// RelationBorders marks an edge that defines a boundary with the target.
	RelationBorders RelationType = "LIMITA"

	// RelationAssociates marks a generic functional association. It is the
	// fallback when no more specific relation can be determined.
	RelationAssociates RelationType = "ASOCIA"
)

// AllRelationTypes lists every relation type in declaration order.
var AllRelationTypes = []RelationType{
	RelationIrrigates,
	RelationDrains,
	RelationConnects,
	RelationInnervates,
	RelationBorders,
	RelationAssociates,
}

// IsValid reports whether the relation type is one of the known kinds.
func (t RelationType) IsValid() bool {
	switch t {
	case RelationIrrigates, RelationDrains, RelationConnects,
		RelationInnervates, RelationBorders, RelationAssociates:
		return true
	}
	return false
}

// DisplayName returns a human-readable phrasing of the relation, read as
// "origin <phrase> destination".
func (t RelationType) DisplayName() string {
	switch t {
	case RelationIrrigates:
		return "Suministra sangre a"
	case RelationDrains:
		return "Recibe sangre desde"
	case RelationConnects:
		return "Se conecta con"
	case RelationInnervates:
		return "Proporciona inervación a"
	case RelationBorders:
		return "Define el límite de"
	case RelationAssociates:
		return "Se asocia funcionalmente con"
	default:
		return string(t)
	}
}

// Relation represents a directed, typed edge between two anatomical nodes.
//
// OriginCode and DestCode reference Node.Code but referential integrity is
// not enforced at write time; dangling references are tolerated and resolved
// lazily at query time. JSON tags follow the legacy snapshot field names.
type Relation struct {
	Code        string       `json:"codigo"`
	Type        RelationType `json:"tipo"`
	OriginCode  string       `json:"idOrigen"`
	DestCode    string       `json:"idDestino"`
	Description string       `json:"descripcion,omitempty"`
}

// Validate checks if the Relation has valid data.
func (r Relation) Validate() error {
	if r.Code == "" {
		return ErrInvalidRelationCode
	}
	if !r.Type.IsValid() {
		return ErrInvalidRelationType
	}
	if r.OriginCode == "" || r.DestCode == "" {
		return ErrEmptyNodeCode
	}
	return nil
}
