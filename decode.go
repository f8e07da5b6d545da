package atc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Decode parses a complete ALIVE recording held in data.
//
// The decoding process:
//  1. Checks the 8-byte signature and the container version
//  2. Splits the remainder into length-delimited blocks
//  3. Decodes the required "fmt " and "info" blocks
//  4. Decodes the optional "ann " block and whichever lead blocks exist
//
// Blocks may appear in any order; unrecognized identifiers are skipped.
// Decode returns ErrInvalidSignature if data is not an ALIVE file,
// ErrUnsupportedVersion for any version other than 4, ErrUnsupportedFormat
// for any sample format other than 1, and one of the remaining sentinel
// errors in errors.go for structural defects. Decode never returns a
// partial Record.
func Decode(data []byte, opts ...ReadOption) (*Record, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	blocks, err := readContainer(data, cfg.limits)
	if err != nil {
		return nil, err
	}

	fmtBlock, ok := findBlock(blocks, blockFormat)
	if !ok {
		return nil, ErrMissingFormatBlock
	}
	format, err := decodeFormat(fmtBlock.content)
	if err != nil {
		return nil, err
	}
	if format.Code != 1 {
		return nil, fmt.Errorf("%w: ecg format %d", ErrUnsupportedFormat, format.Code)
	}

	infoBlock, ok := findBlock(blocks, blockInfo)
	if !ok {
		return nil, ErrMissingInfoBlock
	}
	info, err := decodeInfo(infoBlock.content)
	if err != nil {
		return nil, err
	}

	var annotation *Annotation
	if annBlock, ok := findBlock(blocks, blockAnnotation); ok {
		annotation, err = decodeAnnotation(annBlock.content, cfg.limits)
		if err != nil {
			return nil, err
		}
	}

	// Leads are uniformly optional, lead I included; the device always
	// writes lead I in practice but the container does not require it.
	leads := make(map[Lead][]int16)
	for _, lb := range leadBlocks {
		block, ok := findBlock(blocks, lb.id)
		if !ok {
			continue
		}
		samples, err := decodeSignal(block.content, cfg.limits)
		if err != nil {
			return nil, err
		}
		leads[lb.lead] = samples
	}

	return &Record{
		FileVersion: FileVersion,
		Info:        info,
		Format:      format,
		Leads:       leads,
		Annotation:  annotation,
	}, nil
}

// gzipMagic is the two-byte gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

// DecodeReader reads all of r and decodes it. Recordings exported from a
// phone often arrive gzip-wrapped; DecodeReader detects the gzip header and
// decompresses transparently before decoding.
func DecodeReader(r io.Reader, opts ...ReadOption) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, err
		}
	}
	return Decode(data, opts...)
}
