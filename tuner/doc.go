// Package tuner drives the per-chunk tuning loop: a silence gate, an
// accumulating voicing buffer, spectral analysis and note matching, and a
// rolling history of the dominant detected frequency.
//
// Audio capture stays outside this package; the caller reads chunks from
// its audio source and feeds them to [Session.Process] in arrival order.
// The session is single-threaded by design.
package tuner
