package importer

// Snapshot is an opaque capture of the Importer's anonymous-counter state
// (spec_full §12): the per-(assembly,namespace) minified type-name
// counters, the per-type anonymous-field counters, and the global
// type-parameter counter. It lets a caller re-import a subset of a
// compilation — e.g. an incremental build watching a single changed
// assembly — without perturbing the indices already handed out to
// unrelated types, by restoring the counters to their pre-import values
// first.
type Snapshot struct {
	anonTypeCounters  map[string]int
	anonFieldCounters map[typeKey]int
	typeParamCounter  int
}

// Snapshot captures the Importer's current counter state.
func (imp *Importer) Snapshot() Snapshot {
	s := Snapshot{
		anonTypeCounters:  make(map[string]int, len(imp.anonTypeCounters)),
		anonFieldCounters: make(map[typeKey]int, len(imp.anonFieldCounters)),
		typeParamCounter:  imp.typeParamCounter,
	}
	for k, v := range imp.anonTypeCounters {
		s.anonTypeCounters[k] = v
	}
	for k, v := range imp.anonFieldCounters {
		s.anonFieldCounters[k] = v
	}
	return s
}

// Restore resets the Importer's counters to a previously captured
// Snapshot. It does not undo any semantic records already committed;
// callers that need full rollback must discard the Importer itself.
func (imp *Importer) Restore(s Snapshot) {
	imp.anonTypeCounters = make(map[string]int, len(s.anonTypeCounters))
	for k, v := range s.anonTypeCounters {
		imp.anonTypeCounters[k] = v
	}
	imp.anonFieldCounters = make(map[typeKey]int, len(s.anonFieldCounters))
	for k, v := range s.anonFieldCounters {
		imp.anonFieldCounters[k] = v
	}
	imp.typeParamCounter = s.typeParamCounter
}
