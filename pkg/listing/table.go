package listing

// Table is the id-keyed lookup of feed records. Iteration order is the
// insertion order, so derived orders are deterministic run to run (Go map
// iteration is randomized and must not leak into the output).
type Table struct {
	records map[int]*FilterRecord
	ids     []int
}

func NewTable() *Table {
	return &Table{records: make(map[int]*FilterRecord)}
}

// Add inserts or replaces a record. A replaced record keeps its original
// position in the iteration order.
func (t *Table) Add(r FilterRecord) {
	if _, ok := t.records[r.ID]; !ok {
		t.ids = append(t.ids, r.ID)
	}
	cp := r
	t.records[r.ID] = &cp
}

func (t *Table) Get(id int) (*FilterRecord, bool) {
	r, ok := t.records[id]
	return r, ok
}

func (t *Table) Len() int {
	return len(t.ids)
}

// IDs returns the insertion-ordered ids as a fresh slice.
func (t *Table) IDs() []int {
	out := make([]int, len(t.ids))
	copy(out, t.ids)
	return out
}

// all returns the records in insertion order.
func (t *Table) all() []*FilterRecord {
	out := make([]*FilterRecord, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.records[id])
	}
	return out
}
