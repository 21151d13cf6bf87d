package writer

import "io"

// PairWriter writes (run_length, value) pairs, two bytes per pair.
type PairWriter struct {
	writer       io.Writer
	buffer       [2]byte
	pairsWritten int
}

func NewPairWriter(w io.Writer) *PairWriter {
	return &PairWriter{
		writer: w,
	}
}

func (p *PairWriter) WritePair(count, value byte) error {
	p.buffer[0] = count
	p.buffer[1] = value

	_, err := p.writer.Write(p.buffer[:])
	if err != nil {
		return err
	}

	p.pairsWritten++

	return nil
}

func (p *PairWriter) Pairs() int {
	return p.pairsWritten
}
