package docgraph

// EntityRole marks a form block as the key or the value side of a field.
type EntityRole string

const (
	RoleKey   EntityRole = "KEY"
	RoleValue EntityRole = "VALUE"
)

// Block is one detected region of a document page. The analysis service
// returns a flat, id-linked collection; blocks reference each other by id,
// never by ownership.
type Block interface {
	blockID() string
}

type Line struct {
	ID   string
	Text string

	// Normalized page coordinates (0.0–1.0), used for reading order.
	Top  float64
	Left float64
}

type Word struct {
	ID   string
	Text string
}

type Table struct {
	ID string

	// Children holds the ids of the table's cells, in relationship order.
	Children []string
}

type Cell struct {
	ID   string
	Text string

	// 1-based grid coordinates.
	Row    int
	Column int

	Children []string
}

type KeyValueSet struct {
	ID   string
	Role EntityRole

	Children []string

	// Values holds the ids named by the block's VALUE relationships,
	// in relationship order. Only meaningful on RoleKey blocks.
	Values []string
}

func (b Line) blockID() string        { return b.ID }
func (b Word) blockID() string        { return b.ID }
func (b Table) blockID() string       { return b.ID }
func (b Cell) blockID() string        { return b.ID }
func (b KeyValueSet) blockID() string { return b.ID }
