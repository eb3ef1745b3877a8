package boruvka

import "github.com/parlab/parmst/csr"

// Test-only exports of internal passes and constants, so the white-box
// operator tests can drive individual stages of a round.

const Unclaimed = unclaimed

type MinWeightReduce = minWeightReduce

var (
	RenumberComponents = renumberComponents
	PackArcs           = packArcs
	MarkRowBounds      = markRowBounds
	MarkCanonicalArcs  = markCanonicalArcs
	MarkArcRows        = markArcRows
	ResetRowStarts     = resetRowStarts
	BackfillRowStarts  = backfillRowStarts
)

// SortArcs runs the deterministic arc sort with a throwaway scratch.
func SortArcs(st *csr.GraphState) {
	newRoundScratch(st.NumArcs).sortArcs(st)
}
