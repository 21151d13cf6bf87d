// Package harness drives the rle codec with random, repeat-biased data and
// checks that every buffer survives a compress/decompress round trip.
package harness

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"messenger-rle/rle"
	"messenger-rle/writer"
)

type Result struct {
	Index            int
	OriginalSize     int
	CompressedSize   int
	DecompressedSize int
	Ratio            float64 // OriginalSize / CompressedSize, 0 for empty input
	Passed           bool
}

type Summary struct {
	Runs            int
	Passed          int
	Failed          int
	OriginalBytes   uint64
	CompressedBytes uint64
}

func (s *Summary) add(res Result) {
	s.Runs++
	if res.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
	s.OriginalBytes += uint64(res.OriginalSize)
	s.CompressedBytes += uint64(res.CompressedSize)
}

// Ratio is the overall compression ratio across all runs.
func (s Summary) Ratio() float64 {
	if s.CompressedBytes == 0 {
		return 0
	}
	return float64(s.OriginalBytes) / float64(s.CompressedBytes)
}

type Harness struct {
	cfg     Config
	logger  log.Logger
	out     io.Writer
	hex     *writer.HexWriter
	rng     *rand.Rand
	metrics *Metrics
}

func New(cfg Config, logger log.Logger, out io.Writer, reg prometheus.Registerer) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid harness config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger = log.With(logger, "component", "harness")
	level.Debug(logger).Log("msg", "harness ready", "seed", seed, "runs", cfg.Runs, "data_size", cfg.DataSize)

	return &Harness{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		hex:     writer.NewHexWriter(out),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		metrics: NewMetrics(reg),
	}, nil
}

// GenerateRandomData returns size bytes made of series of a random value, each
// series MinRepeat to MaxRepeat bytes long. The last series is cut at size.
func (h *Harness) GenerateRandomData(size int) []byte {
	data := make([]byte, size)

	idx := 0
	for idx < size {
		value := byte(h.rng.IntN(256))
		repeatCount := h.cfg.MinRepeat + h.rng.IntN(h.cfg.MaxRepeat-h.cfg.MinRepeat+1)

		for r := 0; r < repeatCount && idx < size; r++ {
			data[idx] = value
			idx++
		}
	}

	return data
}

// RunTests generates Runs buffers of DataSize bytes and round-trips each one.
func (h *Harness) RunTests() (Summary, error) {
	summary := Summary{}

	for idx := 0; idx < h.cfg.Runs; idx++ {
		data := h.GenerateRandomData(h.cfg.DataSize)

		res, err := h.RunTest(idx+1, data)
		if err != nil {
			return summary, err
		}

		summary.add(res)
	}

	level.Info(h.logger).Log(
		"msg", "runs complete",
		"runs", summary.Runs,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"original", humanize.Bytes(summary.OriginalBytes),
		"compressed", humanize.Bytes(summary.CompressedBytes),
		"ratio", formatRatio(summary.Ratio()),
	)

	return summary, nil
}

// RunTest compresses a copy of data in a buffer with worst-case headroom,
// decompresses it again and compares the result with data.
func (h *Harness) RunTest(index int, data []byte) (Result, error) {
	original := bytes.Clone(data)
	size := len(original)

	buf := make([]byte, rle.MaxCompressedLen(size))
	copy(buf, original)

	if _, err := fmt.Fprintf(h.out, "Test #%d - ", index); err != nil {
		return Result{}, err
	}
	if err := h.printData("Original Data: ", original); err != nil {
		return Result{}, err
	}

	compressedSize, err := rle.Compress(buf, size)
	if err != nil {
		return Result{}, fmt.Errorf("test #%d: compress: %w", index, err)
	}
	if err := h.printData("Compressed Data: ", buf[:compressedSize]); err != nil {
		return Result{}, err
	}

	ratio := 0.0
	if compressedSize > 0 {
		ratio = float64(size) / float64(compressedSize)
	}
	_, err = fmt.Fprintf(h.out, "Original Size: %d, Compressed Size: %d, Compression Ratio: %s\n",
		size, compressedSize, formatRatio(ratio))
	if err != nil {
		return Result{}, err
	}

	decompressedSize, err := rle.Decompress(buf, compressedSize)
	if err != nil {
		return Result{}, fmt.Errorf("test #%d: decompress: %w", index, err)
	}
	if err := h.printData("Decompressed Data: ", buf[:decompressedSize]); err != nil {
		return Result{}, err
	}

	res := Result{
		Index:            index,
		OriginalSize:     size,
		CompressedSize:   compressedSize,
		DecompressedSize: decompressedSize,
		Ratio:            ratio,
		Passed:           bytes.Equal(buf[:decompressedSize], original),
	}

	verdict := "Decompression validation passed."
	if !res.Passed {
		verdict = "Decompression validation failed."
		level.Warn(h.logger).Log("msg", "round trip mismatch", "test", index, "original", size, "decompressed", decompressedSize)
	}
	if _, err := fmt.Fprintln(h.out, verdict); err != nil {
		return Result{}, err
	}

	h.metrics.observe(res)
	level.Debug(h.logger).Log("msg", "run finished", "test", index, "original", size, "compressed", compressedSize, "passed", res.Passed)

	return res, nil
}

func (h *Harness) printData(label string, data []byte) error {
	if !h.cfg.PrintData {
		return nil
	}

	if _, err := io.WriteString(h.out, label); err != nil {
		return err
	}

	return h.hex.WriteBytes(data)
}

// formatRatio prints six significant digits, trimming trailing zeros.
func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'g', 6, 64)
}
