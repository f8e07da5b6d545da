package atc

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

// fileHeader starts a fixture with a valid signature and version.
func fileHeader() *bytes.Buffer {
	buf := &bytes.Buffer{}
	buf.Write(Signature[:])
	var v [4]byte
	binary.LittleEndian.PutUint32(v[:], FileVersion)
	buf.Write(v[:])
	return buf
}

// appendBlock frames content as one container block. The checksum written
// is garbage on purpose; the decoder must never look at it.
func appendBlock(buf *bytes.Buffer, id string, content []byte) {
	if len(id) != 4 {
		panic("block id must be 4 bytes")
	}
	buf.WriteString(id)
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(content)))
	buf.Write(n[:])
	buf.Write(content)
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], 0xDEADBEEF)
	buf.Write(sum[:])
}

// infoContent builds a 264-byte info block with each field null-padded to
// its fixed width.
func infoContent(fields [7]string) []byte {
	widths := []int{32, 40, 44, 32, 32, 32, 52}
	var out []byte
	for i, w := range widths {
		field := make([]byte, w)
		copy(field, fields[i])
		out = append(out, field...)
	}
	return out
}

func sampleInfoFields() [7]string {
	return [7]string{
		"2020-01-01T10:30:00Z",
		"c6b66899-4257-4b39-bb5f-9a1a5f1a0d22",
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"Phone X",
		"ECG Capture 2.1",
		"Recorder Mk1",
		"battery=98%",
	}
}

func formatContent(code uint8, rateHz, resNV uint16, flags byte, reserved uint16) []byte {
	out := make([]byte, 8)
	out[0] = code
	binary.LittleEndian.PutUint16(out[1:3], rateHz)
	binary.LittleEndian.PutUint16(out[3:5], resNV)
	out[5] = flags
	binary.LittleEndian.PutUint16(out[6:8], reserved)
	return out
}

func samplesContent(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// sampleFile is the minimal well-formed fixture: fmt + info + lead I.
func sampleFile() []byte {
	buf := fileHeader()
	appendBlock(buf, "fmt ", formatContent(1, 300, 1000, 0x05, 0))
	appendBlock(buf, "info", infoContent(sampleInfoFields()))
	appendBlock(buf, "ecg ", samplesContent([]int16{100, -200, 300}))
	return buf.Bytes()
}

func TestDecode_RoundTrip(t *testing.T) {
	rec, err := Decode(sampleFile())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.FileVersion != 4 {
		t.Fatalf("file version = %d, want 4", rec.FileVersion)
	}
	if rec.Format.SampleRateHz != 300 {
		t.Fatalf("sample rate = %d, want 300", rec.Format.SampleRateHz)
	}
	if rec.Format.AmplitudeResNanoV != 1000 {
		t.Fatalf("amplitude resolution = %d, want 1000", rec.Format.AmplitudeResNanoV)
	}
	// flags byte 0x05: polarity=1, mainsFrequency=0, mainsFilter=1, rest 0.
	if !rec.Format.Polarity {
		t.Fatal("polarity = false, want true")
	}
	if rec.Format.MainsFrequencyHz != 50 {
		t.Fatalf("mains frequency = %d, want 50", rec.Format.MainsFrequencyHz)
	}
	if !rec.Format.MainsFilter {
		t.Fatal("mains filter = false, want true")
	}
	if rec.Format.LowPassFilter || rec.Format.BaselineFilter || rec.Format.NotchMainsFilter || rec.Format.EnhancedFilter {
		t.Fatal("unexpected filter flags set")
	}
	if got, want := rec.Leads[LeadI], []int16{100, -200, 300}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lead I = %v, want %v", got, want)
	}
	if len(rec.Leads) != 1 {
		t.Fatalf("got %d leads, want only lead I", len(rec.Leads))
	}
	if rec.Annotation != nil {
		t.Fatal("unexpected annotation")
	}
	if rec.Info.DateRecorded != "2020-01-01T10:30:00Z" {
		t.Fatalf("date recorded = %q", rec.Info.DateRecorded)
	}
	if rec.Info.PhoneModel != "Phone X" {
		t.Fatalf("phone model = %q", rec.Info.PhoneModel)
	}
}

func TestDecode_Deterministic(t *testing.T) {
	data := sampleFile()
	a, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("decodes differ:\n%#v\n%#v", a, b)
	}
}

func TestDecode_AllLeads(t *testing.T) {
	buf := fileHeader()
	appendBlock(buf, "fmt ", formatContent(1, 300, 500, 0, 0))
	appendBlock(buf, "info", infoContent(sampleInfoFields()))
	want := map[Lead][]int16{
		LeadI:   {1},
		LeadII:  {2, 2},
		LeadIII: {3},
		LeadAVR: {-4},
		LeadAVL: {5},
		LeadAVF: {6, -6},
	}
	appendBlock(buf, "ecg ", samplesContent(want[LeadI]))
	appendBlock(buf, "ecg2", samplesContent(want[LeadII]))
	appendBlock(buf, "ecg3", samplesContent(want[LeadIII]))
	appendBlock(buf, "ecg4", samplesContent(want[LeadAVR]))
	appendBlock(buf, "ecg5", samplesContent(want[LeadAVL]))
	appendBlock(buf, "ecg6", samplesContent(want[LeadAVF]))

	rec, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(rec.Leads, want) {
		t.Fatalf("leads mismatch\nwant: %v\ngot:  %v", want, rec.Leads)
	}
}

func TestDecode_Annotation(t *testing.T) {
	ann := make([]byte, 4+2*6)
	binary.LittleEndian.PutUint32(ann[0:4], 1000)
	binary.LittleEndian.PutUint32(ann[4:8], 150)
	binary.LittleEndian.PutUint16(ann[8:10], 1)
	binary.LittleEndian.PutUint32(ann[10:14], 450)
	binary.LittleEndian.PutUint16(ann[14:16], 2)

	buf := fileHeader()
	appendBlock(buf, "fmt ", formatContent(1, 300, 1000, 0, 0))
	appendBlock(buf, "info", infoContent(sampleInfoFields()))
	appendBlock(buf, "ann ", ann)

	rec, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := &Annotation{
		TickFrequencyHz: 1000,
		Ticks: []Tick{
			{Offset: 150, BeatType: 1},
			{Offset: 450, BeatType: 2},
		},
	}
	if !reflect.DeepEqual(rec.Annotation, want) {
		t.Fatalf("annotation mismatch\nwant: %#v\ngot:  %#v", want, rec.Annotation)
	}
}

func TestDecode_BlockOrderIrrelevant(t *testing.T) {
	// Same blocks as sampleFile but in reverse order.
	buf := fileHeader()
	appendBlock(buf, "ecg ", samplesContent([]int16{100, -200, 300}))
	appendBlock(buf, "info", infoContent(sampleInfoFields()))
	appendBlock(buf, "fmt ", formatContent(1, 300, 1000, 0x05, 0))

	rec, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Format.SampleRateHz != 300 || len(rec.Leads[LeadI]) != 3 {
		t.Fatalf("unexpected record: %#v", rec)
	}
}

func TestDecode_UnknownBlocksIgnored(t *testing.T) {
	buf := fileHeader()
	appendBlock(buf, "xtra", []byte{0xAA, 0xBB, 0xCC})
	appendBlock(buf, "fmt ", formatContent(1, 300, 1000, 0, 0))
	appendBlock(buf, "junk", nil)
	appendBlock(buf, "info", infoContent(sampleInfoFields()))
	appendBlock(buf, "ecg ", samplesContent([]int16{7}))

	rec, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(rec.Leads[LeadI], []int16{7}) {
		t.Fatalf("lead I = %v", rec.Leads[LeadI])
	}
}

func TestDecode_ChecksumNeverValidated(t *testing.T) {
	// appendBlock writes a garbage checksum on every block already; flip a
	// few more checksum bytes to be sure.
	data := sampleFile()
	data[len(data)-1] ^= 0xFF
	if _, err := Decode(data); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}
