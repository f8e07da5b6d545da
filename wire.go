package atc

import (
	"encoding/binary"
	"fmt"
)

// byteReader is a cursor over an in-memory buffer. All multi-byte reads are
// little-endian. Reads report ok=false instead of failing so each caller can
// map exhaustion to its own typed error.
type byteReader struct {
	buf []byte
	off int
}

func (r *byteReader) remaining() int { return len(r.buf) - r.off }

func (r *byteReader) take(n int) ([]byte, bool) {
	if n < 0 || r.remaining() < n {
		return nil, false
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, true
}

func (r *byteReader) u8() (uint8, bool) {
	b, ok := r.take(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (r *byteReader) u16() (uint16, bool) {
	b, ok := r.take(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

func (r *byteReader) u32() (uint32, bool) {
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// bitReader yields the bits of a single byte least-significant first.
type bitReader struct {
	b byte
	n uint
}

func (r *bitReader) next() bool {
	bit := (r.b >> r.n) & 1
	r.n++
	return bit == 1
}

// rawBlock is one length-delimited chunk of the container. The checksum is
// captured from the wire but never validated; the reference decoder ignores
// it too.
type rawBlock struct {
	id       [4]byte
	content  []byte
	checksum uint32
}

// readContainer splits data into its block sequence after checking the
// signature and version. The byte sequence must be consumed exactly; a block
// whose declared length overruns the remaining bytes is a truncation.
func readContainer(data []byte, limits Limits) ([]rawBlock, error) {
	r := &byteReader{buf: data}

	sig, ok := r.take(len(Signature))
	if !ok || [8]byte(sig) != Signature {
		return nil, ErrInvalidSignature
	}
	version, ok := r.u32()
	if !ok {
		return nil, fmt.Errorf("%w: file header", ErrTruncatedBlock)
	}
	if version != FileVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	var blocks []rawBlock
	for r.remaining() > 0 {
		idBytes, ok := r.take(4)
		if !ok {
			return nil, ErrTruncatedBlock
		}
		length, ok := r.u32()
		if !ok {
			return nil, ErrTruncatedBlock
		}
		if uint64(length) > limits.MaxBlockLen {
			return nil, fmt.Errorf("%w: block length %d", ErrLimitExceeded, length)
		}
		content, ok := r.take(int(length))
		if !ok {
			return nil, fmt.Errorf("%w: %q declares %d content bytes", ErrTruncatedBlock, idBytes, length)
		}
		checksum, ok := r.u32()
		if !ok {
			return nil, fmt.Errorf("%w: %q missing checksum", ErrTruncatedBlock, idBytes)
		}
		blocks = append(blocks, rawBlock{id: [4]byte(idBytes), content: content, checksum: checksum})
		if len(blocks) > limits.MaxBlocks {
			return nil, fmt.Errorf("%w: more than %d blocks", ErrLimitExceeded, limits.MaxBlocks)
		}
	}
	return blocks, nil
}

// findBlock returns the first block whose identifier matches id byte for
// byte. Absence is not an error; callers decide whether the block was
// required.
func findBlock(blocks []rawBlock, id [4]byte) (rawBlock, bool) {
	for _, b := range blocks {
		if b.id == id {
			return b, true
		}
	}
	return rawBlock{}, false
}
