// Package rle implements byte-oriented run-length encoding.
//
// The encoded form is a sequence of two-byte pairs [run_length, value], where
// run_length is in [1, 255]. Runs longer than 255 bytes are split into
// consecutive pairs. The layout carries no header, so callers track the
// encoded and decoded lengths themselves.
package rle

import (
	"bytes"
	"errors"
	"io"

	mError "messenger-rle/error"
	"messenger-rle/reader"
	"messenger-rle/writer"
)

// MaxRunLength is the longest run a single pair can describe.
const MaxRunLength = 0xFF

// MaxCompressedLen returns the worst-case encoded size of n raw bytes, reached
// when no two neighbouring bytes are equal.
func MaxCompressedLen(n int) int {
	if n <= 1 {
		return n
	}

	return 2 * n
}

// Compress encodes the first length bytes of buf in place and returns the
// encoded length. len(buf) is the capacity available for the encoded form; a
// buffer of MaxCompressedLen(length) bytes always suffices. Bytes between the
// encoded length and length are zeroed.
//
// Inputs of one byte or less are returned unchanged. On error buf is left
// untouched.
func Compress(buf []byte, length int) (int, error) {
	if length < 0 || length > len(buf) {
		return 0, mError.CapacityExceeded("length %d does not fit a buffer of %d bytes", length, len(buf))
	}

	if length <= 1 {
		return length, nil
	}

	encoded := Encode(buf[:length])
	if len(encoded) > len(buf) {
		return 0, mError.CapacityExceeded("encoded form needs %d bytes, buffer holds %d", len(encoded), len(buf))
	}

	newLength := copy(buf, encoded)
	if newLength < length {
		clear(buf[newLength:length])
	}

	return newLength, nil
}

// Decompress decodes the first encodedLen bytes of buf in place and returns the
// decoded length. The decoded form must fit in len(buf).
//
// Inputs of one byte or less are returned unchanged. On error buf is left
// untouched.
func Decompress(buf []byte, encodedLen int) (int, error) {
	if encodedLen < 0 || encodedLen > len(buf) {
		return 0, mError.CapacityExceeded("encoded length %d does not fit a buffer of %d bytes", encodedLen, len(buf))
	}

	src := buf[:encodedLen]
	decodedLen, err := DecodedLen(src)
	if err != nil {
		return 0, err
	}

	if encodedLen <= 1 {
		return encodedLen, nil
	}

	if decodedLen > len(buf) {
		return 0, mError.CapacityExceeded("decoded form needs %d bytes, buffer holds %d", decodedLen, len(buf))
	}

	// expand into scratch so later pairs are never read after being overwritten
	decoded, err := expand(src, decodedLen)
	if err != nil {
		return 0, err
	}

	return copy(buf, decoded), nil
}

// Encode returns the encoded form of src in a new slice. Inputs of one byte or
// less are returned as a copy.
func Encode(src []byte) []byte {
	if len(src) <= 1 {
		return bytes.Clone(src)
	}

	buf := bytes.NewBuffer(make([]byte, 0, MaxCompressedLen(len(src))))
	pairs := writer.NewPairWriter(buf)

	for idx := 0; idx < len(src); {
		value := src[idx]
		count := 1
		for idx+count < len(src) && src[idx+count] == value && count < MaxRunLength {
			count++
		}

		// writes to a bytes.Buffer only fail by panicking on OOM
		_ = pairs.WritePair(byte(count), value)

		idx += count
	}

	return buf.Bytes()
}

// Decode returns the decoded form of src in a new slice. Inputs of one byte or
// less are returned as a copy.
func Decode(src []byte) ([]byte, error) {
	decodedLen, err := DecodedLen(src)
	if err != nil {
		return nil, err
	}

	if len(src) <= 1 {
		return bytes.Clone(src), nil
	}

	return expand(src, decodedLen)
}

// DecodedLen validates src and returns the size it decodes to, without
// expanding it.
func DecodedLen(src []byte) (int, error) {
	if len(src) <= 1 {
		return len(src), nil
	}

	if len(src)%reader.PAIR_SIZE != 0 {
		return 0, mError.InvalidEncoding("encoded length %d is odd, last pair is incomplete", len(src))
	}

	total := 0
	for idx := 0; idx < len(src); idx += reader.PAIR_SIZE {
		if src[idx] == 0 {
			return 0, mError.InvalidEncoding("pair %d has a zero run length", idx/reader.PAIR_SIZE)
		}

		total += int(src[idx])
	}

	return total, nil
}

func expand(src []byte, decodedLen int) ([]byte, error) {
	decoded := make([]byte, 0, decodedLen)

	pairs := reader.NewPairReader(bytes.NewReader(src))
	for pairs.Next() {
		count, value, err := pairs.ReadPair()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mError.InvalidEncoding("pair %d: %v", pairs.PairsRead(), err)
		}

		for c := 0; c < int(count); c++ {
			decoded = append(decoded, value)
		}
	}

	return decoded, nil
}
