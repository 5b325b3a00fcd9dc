// Package temperament derives note frequency tables for historical and
// modern musical temperaments.
//
// A temperament is described by a 12-entry table of ratios between each
// pitch class and the first pitch class C, or equivalently by the same
// table expressed in cents. One engine consumes these tables; the concrete
// temperaments (equal, just, meantone, the historical well-temperaments)
// are plain data definitions.
//
// All frequencies are anchored to a single reference note/frequency pair,
// A4 at 440 Hz unless configured otherwise.
package temperament
