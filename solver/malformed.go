package solver

import (
	"github.com/stellarpath/eclipsecore/instant"
	"github.com/stellarpath/eclipsecore/model"
)

// ComputeUTC behaves like Compute, but additionally validates that
// record.DateYmd parses before doing any work, returning a
// *model.MalformedDateError instead of a Circumstances full of nil UTC
// fields when it does not (spec.md §7: "the solver must surface this to the
// caller... rather than silently omit fields").
func ComputeUTC(record model.EclipseRecord, observer model.Observer, cfg Config) (model.Circumstances, error) {
	if _, err := instant.TT0(record.DateYmd, record.T0TtHours); err != nil {
		return model.Circumstances{}, model.NewMalformedDateError(record.ID, record.DateYmd, err)
	}
	return Compute(record, observer, cfg), nil
}
