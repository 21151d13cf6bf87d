package reader

import (
	"errors"
	"io"
)

const PAIR_SIZE = 2

// PairReader reads (run_length, value) pairs from an encoded stream.
type PairReader struct {
	reader    io.Reader
	buffer    [PAIR_SIZE]byte
	pairsRead int64
	finished  bool
}

func NewPairReader(reader io.Reader) *PairReader {
	return &PairReader{
		reader: reader,
	}
}

func (p *PairReader) Next() bool {
	if p.finished {
		return false
	}

	return true
}

// PairsRead is the number of complete pairs returned so far.
func (p *PairReader) PairsRead() int64 {
	return p.pairsRead
}

// ReadPair returns the next pair. Once the stream ends on a pair boundary it
// returns io.EOF and Next reports false. A stream ending in the middle of a
// pair returns io.ErrUnexpectedEOF.
func (p *PairReader) ReadPair() (count byte, value byte, err error) {
	if p.finished {
		return 0, 0, io.EOF
	}

	_, err = io.ReadFull(p.reader, p.buffer[:])
	if err != nil {
		p.finished = true
		switch {
		case errors.Is(err, io.EOF):
			return 0, 0, io.EOF
		default:
			return 0, 0, err
		}
	}

	p.pairsRead++

	return p.buffer[0], p.buffer[1], nil
}
