// internal/output/common.go
package output

// Destination labels for the DEST column and the JSONL "dest" field.
const (
	DestAccepted  = "accepted"
	DestDiscarded = "discarded"
)

// TSVHeader is the canonical header row for the single multiplexed stream.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "DEST\tREAD_GROUP\tFRAGMENT\tREADNO\tSEQUENCE\tREFERENCE\tSTRAND\tPOSITION\tCIGAR"

// TSVHeaderSplit is the header row used when accepted and discarded rows go
// to separate streams and the DEST column would be redundant.
const TSVHeaderSplit = "READ_GROUP\tFRAGMENT\tREADNO\tSEQUENCE\tREFERENCE\tSTRAND\tPOSITION\tCIGAR"

// Defaults supplies the placement columns of rows that have no alignment.
// TSV output cannot omit columns, so unaligned rows carry these values.
type Defaults struct {
	Reference string
	Strand    string
	Position  int
	Cigar     string
}
