// Package pitch extracts a fundamental-pitch estimate from a magnitude
// spectrum and classifies it against a temperament's note table as a
// signed cents deviation.
//
// The spectral transform is provided by [Analyzer], which wraps an
// external FFT backend; peak picking and note matching operate on plain
// magnitude spectra and work with any transform that produces one.
package pitch
