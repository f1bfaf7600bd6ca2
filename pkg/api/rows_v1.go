// pkg/api/rows_v1.go
package api

// RowV1 is the stable JSONL schema for filtered rows.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RowV1 struct {
	Dest     string     `json:"dest"` // "accepted" | "discarded"
	Group    string     `json:"read_group,omitempty"`
	Name     string     `json:"fragment"`
	ReadNo   int        `json:"read_no"`
	Sequence string     `json:"sequence"`
	Aligned  *AlignedV1 `json:"aligned,omitempty"`
}

// AlignedV1 is the placement block of an aligned row. Rows without an
// alignment omit the block entirely instead of carrying filler values.
type AlignedV1 struct {
	Reference string `json:"reference"`
	Strand    string `json:"strand"`
	Position  int    `json:"position"`
	Cigar     string `json:"cigar"`
}
