package atc

import "errors"

var (
	ErrInvalidSignature         = errors.New("atc: invalid signature")
	ErrUnsupportedVersion       = errors.New("atc: unsupported version")
	ErrTruncatedBlock           = errors.New("atc: truncated block")
	ErrMissingFormatBlock       = errors.New("atc: missing format block")
	ErrUnsupportedFormat        = errors.New("atc: unsupported ecg format")
	ErrMissingInfoBlock         = errors.New("atc: missing info block")
	ErrMalformedInfoBlock       = errors.New("atc: malformed info block")
	ErrMalformedFormatBlock     = errors.New("atc: malformed format block")
	ErrMalformedSignalBlock     = errors.New("atc: malformed signal block")
	ErrMalformedAnnotationBlock = errors.New("atc: malformed annotation block")
	ErrLimitExceeded            = errors.New("atc: limit exceeded")
)
