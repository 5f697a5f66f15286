// Package testparser parses cargo test output into structured per-test results.
package testparser

// TestRecord holds the outcome of a single test.
type TestRecord struct {
	Name   string
	Passed bool
	Failed bool
	Output string // captured diagnostic text, attached from output blocks
}

// TestCounts holds aggregate counts for a run.
type TestCounts struct {
	Passed  int
	Failed  int
	Skipped int
	Total   int
}

// RecordSet is an insertion-ordered collection of test records keyed by name.
// Re-adding an existing name overwrites the record but keeps its original
// position, so rendered output preserves first-insertion order.
type RecordSet struct {
	order []string
	index map[string]*TestRecord
}

// NewRecordSet creates an empty RecordSet.
func NewRecordSet() *RecordSet {
	return &RecordSet{
		index: make(map[string]*TestRecord),
	}
}

// Put inserts or overwrites the record for rec.Name.
func (rs *RecordSet) Put(rec TestRecord) {
	if existing, ok := rs.index[rec.Name]; ok {
		*existing = rec
		return
	}
	rs.order = append(rs.order, rec.Name)
	r := rec
	rs.index[rec.Name] = &r
}

// Get returns the record for name, or nil if none exists.
func (rs *RecordSet) Get(name string) *TestRecord {
	return rs.index[name]
}

// Len returns the number of distinct tests.
func (rs *RecordSet) Len() int {
	return len(rs.order)
}

// Records returns all records in first-insertion order.
func (rs *RecordSet) Records() []*TestRecord {
	records := make([]*TestRecord, 0, len(rs.order))
	for _, name := range rs.order {
		records = append(records, rs.index[name])
	}
	return records
}

// Counts aggregates the record flags into run totals.
// Skipped is always derived as Total - Passed - Failed.
func (rs *RecordSet) Counts() TestCounts {
	counts := TestCounts{Total: len(rs.order)}
	for _, name := range rs.order {
		rec := rs.index[name]
		if rec.Passed {
			counts.Passed++
		}
		if rec.Failed {
			counts.Failed++
		}
	}
	counts.Skipped = counts.Total - counts.Passed - counts.Failed
	return counts
}

// FailedRecords returns the failed records in first-insertion order.
func (rs *RecordSet) FailedRecords() []*TestRecord {
	var failed []*TestRecord
	for _, name := range rs.order {
		if rec := rs.index[name]; rec.Failed {
			failed = append(failed, rec)
		}
	}
	return failed
}
