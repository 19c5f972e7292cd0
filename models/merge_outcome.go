package models

// MergeAction classifies what a merge did to a single record.
type MergeAction int

const (
	// MergeUnchanged means the incoming record was identical to the local
	// copy and nothing was written.
	MergeUnchanged MergeAction = iota
	// MergeUpdated means an existing local record was overwritten with
	// remote field values.
	MergeUpdated
	// MergeInserted means the incoming record was new to the local store.
	MergeInserted
	// MergeDeleted means a local record was removed because the incoming
	// set no longer contains it (favourite set reconciliation only).
	MergeDeleted
)

// MergeOutcome aggregates the per-record actions of one merge pass.
// Persistence decisions are made from the outcome instead of relying on
// mutation side effects, so merge idempotence is directly observable.
type MergeOutcome struct {
	Inserted  int
	Updated   int
	Deleted   int
	Unchanged int
}

// Add folds a single record action into the outcome.
func (o *MergeOutcome) Add(action MergeAction) {
	switch action {
	case MergeInserted:
		o.Inserted++
	case MergeUpdated:
		o.Updated++
	case MergeDeleted:
		o.Deleted++
	default:
		o.Unchanged++
	}
}

// Merge folds another outcome into the receiver.
func (o *MergeOutcome) Merge(other MergeOutcome) {
	o.Inserted += other.Inserted
	o.Updated += other.Updated
	o.Deleted += other.Deleted
	o.Unchanged += other.Unchanged
}

// Dirty reports whether the merge changed local state and therefore
// requires persistence.
func (o MergeOutcome) Dirty() bool {
	return o.Inserted > 0 || o.Updated > 0 || o.Deleted > 0
}
