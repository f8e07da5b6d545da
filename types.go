package atc

import "github.com/google/uuid"

// FileVersion is the only container version this package decodes.
const FileVersion uint32 = 4

// Signature is the 8-byte ALIVE file signature.
var Signature = [8]byte{'A', 'L', 'I', 'V', 'E', 0x00, 0x00, 0x00}

// Block identifiers. Exactly 4 bytes each; the trailing spaces are part of
// the identifier on the wire.
var (
	blockInfo       = [4]byte{'i', 'n', 'f', 'o'}
	blockFormat     = [4]byte{'f', 'm', 't', ' '}
	blockAnnotation = [4]byte{'a', 'n', 'n', ' '}
)

// Lead names one ECG channel.
type Lead string

const (
	LeadI   Lead = "leadI"
	LeadII  Lead = "leadII"
	LeadIII Lead = "leadIII"
	LeadAVR Lead = "aVR"
	LeadAVL Lead = "aVL"
	LeadAVF Lead = "aVF"
)

// leadBlocks maps lead block identifiers to lead names, in the fixed order
// the assembler walks them.
var leadBlocks = []struct {
	id   [4]byte
	lead Lead
}{
	{[4]byte{'e', 'c', 'g', ' '}, LeadI},
	{[4]byte{'e', 'c', 'g', '2'}, LeadII},
	{[4]byte{'e', 'c', 'g', '3'}, LeadIII},
	{[4]byte{'e', 'c', 'g', '4'}, LeadAVR},
	{[4]byte{'e', 'c', 'g', '5'}, LeadAVL},
	{[4]byte{'e', 'c', 'g', '6'}, LeadAVF},
}

// Info holds the recording metadata from the "info" block. All fields are
// null-stripped and whitespace-trimmed.
type Info struct {
	DateRecorded     string `json:"dateRecorded"`
	RecordingUUID    string `json:"recordingUuid"`
	PhoneUUID        string `json:"phoneUuid"`
	PhoneModel       string `json:"phoneModel"`
	RecorderSoftware string `json:"recorderSoftware"`
	RecorderHardware string `json:"recorderHardware"`
	DeviceData       string `json:"deviceData"`
}

// ParseRecordingUUID parses the RecordingUUID field as a UUID.
func (i Info) ParseRecordingUUID() (uuid.UUID, error) {
	return uuid.Parse(i.RecordingUUID)
}

// ParsePhoneUUID parses the PhoneUUID field as a UUID.
func (i Info) ParsePhoneUUID() (uuid.UUID, error) {
	return uuid.Parse(i.PhoneUUID)
}

// Format holds the sample format from the "fmt " block.
//
// AmplitudeResNanoV is the voltage represented by one raw sample unit, in
// nanovolts. No scaling is applied to samples during decode; it is left to
// the caller.
type Format struct {
	Code              uint8  `json:"ecgFormat"`
	SampleRateHz      uint16 `json:"samplingRateHz"`
	AmplitudeResNanoV uint16 `json:"amplitudeResolutionNv"`
	Polarity          bool   `json:"polarity"`
	MainsFrequencyHz  uint16 `json:"mainsFrequency"` // 50 or 60
	MainsFilter       bool   `json:"mainsFilter"`
	LowPassFilter     bool   `json:"lowPassFilter"`
	BaselineFilter    bool   `json:"baseLineFilter"`
	NotchMainsFilter  bool   `json:"notchMainsFilter"`
	EnhancedFilter    bool   `json:"enhancedFilter"`
	Reserved          uint16 `json:"-"`
}

// Tick is one annotated beat: the sample offset it occurred at and the
// device's classification code.
type Tick struct {
	Offset   uint32 `json:"offset"`
	BeatType uint16 `json:"beatType"`
}

// Annotation holds the optional "ann " block contents.
type Annotation struct {
	TickFrequencyHz uint32 `json:"tickFrequencyHz"`
	Ticks           []Tick `json:"ticks"`
}

// Record is a decoded ALIVE recording.
//
// Leads contains only the leads present in the file; in practice LeadI is
// always populated but its absence is not rejected. Annotation is nil when
// the file carries no "ann " block.
type Record struct {
	FileVersion uint32           `json:"fileVersion"`
	Info        Info             `json:"info"`
	Format      Format           `json:"format"`
	Leads       map[Lead][]int16 `json:"leads"`
	Annotation  *Annotation      `json:"annotation,omitempty"`
}
