package writer

import "io"

const hexDigits = "0123456789abcdef"

// HexWriter dumps bytes as two-digit lowercase hex, each followed by a space,
// and ends every dump with a newline.
type HexWriter struct {
	writer io.Writer
	buffer []byte
}

func NewHexWriter(w io.Writer) *HexWriter {
	return &HexWriter{
		writer: w,
	}
}

func (h *HexWriter) WriteBytes(data []byte) error {
	h.buffer = h.buffer[:0]
	for _, bt := range data {
		h.buffer = append(h.buffer, hexDigits[bt>>4], hexDigits[bt&0x0f], ' ')
	}
	h.buffer = append(h.buffer, '\n')

	_, err := h.writer.Write(h.buffer)
	return err
}
