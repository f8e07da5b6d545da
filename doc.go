// Package atc decodes the ALIVE ECG container format produced by portable
// single- and six-lead electrocardiogram recorders.
//
// An ALIVE file is a chunked binary container: a fixed 12-byte header
// followed by a sequence of length-delimited, identifier-tagged blocks.
// Decoding produces an immutable [Record] holding the recording metadata,
// the sample format, up to six leads of raw int16 samples, and optional
// beat annotations.
//
// # File Format Overview
//
// All multi-byte integers are little-endian:
//
//	File      := Signature(8) Version(u32) Block*
//	Signature := 41 4C 49 56 45 00 00 00   ("ALIVE" + 3 zero bytes)
//	Version   := 4 (only supported value)
//	Block     := Identifier(4) Length(u32) Content(Length) Checksum(u32)
//
// Recognized block identifiers are "info" (recording metadata), "fmt "
// (sample format), "ann " (beat annotations), and "ecg ", "ecg2".."ecg6"
// (leads I, II, III, aVR, aVL, aVF). Unrecognized blocks are skipped.
// Block checksums are captured but never verified; the reference decoder
// does not validate them and neither does this one.
//
// # Basic Usage
//
// To decode a recording already held in memory:
//
//	rec, err := atc.Decode(data)
//	if err != nil {
//		// errors.Is against atc.ErrInvalidSignature, atc.ErrTruncatedBlock, ...
//	}
//	samples := rec.Leads[atc.LeadI]
//
// [DecodeReader] additionally accepts gzip-wrapped recordings, which is how
// files commonly arrive when exported from a phone:
//
//	f, _ := os.Open("recording.atc.gz")
//	defer f.Close()
//	rec, err := atc.DecodeReader(f)
//
// # Errors
//
// Decode failures form a closed set of sentinel errors, one per structural
// expectation of the format (see errors.go). A decode either returns a fully
// assembled Record or exactly one of these errors; there is no partial
// result. Absence of the annotation block or of individual leads is not an
// error.
//
// # Concurrency
//
// Decoding is a pure function over its input bytes and keeps no state
// between calls, so independent decodes may run concurrently without
// synchronization.
package atc
