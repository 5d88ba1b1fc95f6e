package bandrep

import "errors"

// ErrAllWavevectorsFailed indicates a batch run produced no result at
// all; the individual failures stay available on the collector.
var ErrAllWavevectorsFailed = errors.New("bandrep: every wavevector failed")
