// Package smooth provides streaming smoothing filters: a causal moving
// average and first-order exponential smoothing.
//
// Both filters keep their history between calls, and the history can be
// snapshotted and restored, so block-wise processing reproduces a single
// pass over the whole signal exactly.
package smooth
