package atc

import (
	"bytes"
	"fmt"
	"strings"
)

// Fixed widths of the seven "info" text fields, in wire order.
var infoFieldWidths = [7]int{32, 40, 44, 32, 32, 32, 52}

const infoBlockSize = 32 + 40 + 44 + 32 + 32 + 32 + 52 // 264

// decodeInfo reads the seven fixed-width, null-padded text fields of an
// "info" block. Bytes after the first NUL are padding; the decoded text is
// additionally whitespace-trimmed. Surplus content past the 264 fixed bytes
// is ignored.
func decodeInfo(content []byte) (Info, error) {
	if len(content) < infoBlockSize {
		return Info{}, fmt.Errorf("%w: %d of %d bytes", ErrMalformedInfoBlock, len(content), infoBlockSize)
	}
	r := &byteReader{buf: content}
	var fields [7]string
	for i, width := range infoFieldWidths {
		b, _ := r.take(width)
		fields[i] = trimPadded(b)
	}
	return Info{
		DateRecorded:     fields[0],
		RecordingUUID:    fields[1],
		PhoneUUID:        fields[2],
		PhoneModel:       fields[3],
		RecorderSoftware: fields[4],
		RecorderHardware: fields[5],
		DeviceData:       fields[6],
	}, nil
}

// trimPadded decodes a null-padded fixed-width text field: everything up to
// the first NUL (or the whole field if none), then trimmed of surrounding
// whitespace.
func trimPadded(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// decodeFormat reads the 8-byte "fmt " block: format code, sample rate,
// amplitude resolution, one byte of LSB-first flag bits, and a reserved
// trailer.
func decodeFormat(content []byte) (Format, error) {
	r := &byteReader{buf: content}
	code, ok1 := r.u8()
	rate, ok2 := r.u16()
	res, ok3 := r.u16()
	flagsByte, ok4 := r.u8()
	reserved, ok5 := r.u16()
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return Format{}, fmt.Errorf("%w: %d bytes", ErrMalformedFormatBlock, len(content))
	}

	flags := &bitReader{b: flagsByte}
	f := Format{
		Code:              code,
		SampleRateHz:      rate,
		AmplitudeResNanoV: res,
		Polarity:          flags.next(),
		MainsFrequencyHz:  50,
		Reserved:          reserved,
	}
	if flags.next() {
		f.MainsFrequencyHz = 60
	}
	f.MainsFilter = flags.next()
	f.LowPassFilter = flags.next()
	f.BaselineFilter = flags.next()
	f.NotchMainsFilter = flags.next()
	f.EnhancedFilter = flags.next()
	flags.next() // unused bit
	return f, nil
}

// decodeSignal reads a lead block as a run of int16 little-endian samples
// spanning the whole content.
func decodeSignal(content []byte, limits Limits) ([]int16, error) {
	if len(content)%2 != 0 {
		return nil, fmt.Errorf("%w: odd content length %d", ErrMalformedSignalBlock, len(content))
	}
	n := len(content) / 2
	if n > limits.MaxLeadSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrLimitExceeded, n)
	}
	samples := make([]int16, n)
	r := &byteReader{buf: content}
	for i := range samples {
		v, _ := r.u16()
		samples[i] = int16(v)
	}
	return samples, nil
}

const tickRecordSize = 6

// decodeAnnotation reads an "ann " block: the tick clock frequency followed
// by 6-byte (offset, beat type) records until the content is exhausted. A
// trailing partial record is malformed.
func decodeAnnotation(content []byte, limits Limits) (*Annotation, error) {
	r := &byteReader{buf: content}
	freq, ok := r.u32()
	if !ok {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedAnnotationBlock, len(content))
	}
	if r.remaining()%tickRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedAnnotationBlock, r.remaining()%tickRecordSize)
	}
	n := r.remaining() / tickRecordSize
	if n > limits.MaxTicks {
		return nil, fmt.Errorf("%w: %d ticks", ErrLimitExceeded, n)
	}
	ticks := make([]Tick, n)
	for i := range ticks {
		offset, _ := r.u32()
		beatType, _ := r.u16()
		ticks[i] = Tick{Offset: offset, BeatType: beatType}
	}
	return &Annotation{TickFrequencyHz: freq, Ticks: ticks}, nil
}
