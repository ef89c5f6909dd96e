package service

// reportPipeline is the shape shared by the row based reports: one row per subject built from the
// subject's folded tally, then an optional post-filter, an ordering and a limit.
type reportPipeline[S, R any] struct {
	subjects []S
	key      func(S) string
	tallies  map[string]tally
	row      func(S, tally) R
	keep     func(R) bool
	order    []orderKey[R]
	limit    int
}

// run returns every subject's row in input order and the filtered, ranked, limited rows.
func (p reportPipeline[S, R]) run() (all []R, ranked []R) {
	all = make([]R, 0, len(p.subjects))
	kept := make([]R, 0, len(p.subjects))
	for _, subject := range p.subjects {
		row := p.row(subject, p.tallies[p.key(subject)])
		all = append(all, row)
		if p.keep == nil || p.keep(row) {
			kept = append(kept, row)
		}
	}
	return all, rank(kept, p.order, p.limit)
}
