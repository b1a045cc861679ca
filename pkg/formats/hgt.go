package formats

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// HGT format errors.
var (
	ErrInvalidHGTSide   = errors.New("invalid HGT side length")
	ErrTruncatedHGTData = errors.New("truncated HGT data")
	ErrHGTFileAccess    = errors.New("cannot open HGT file")
)

// HGTVoid is the sample value SRTM uses for cells without data.
const HGTVoid = math.MinInt16

// Standard SRTM tile sides.
const (
	SRTM1Side = 3601 // 1 arc-second
	SRTM3Side = 1201 // 3 arc-second
)

// maxPrealloc bounds the sample buffer reserved before any data is read.
// Larger tiles grow as samples arrive.
const maxPrealloc = SRTM1Side * SRTM1Side

// HGT is a decoded SRTM height tile.
type HGT struct {
	Side    int     // Samples per row and per column
	Samples []int16 // Row-major, north row first, voids already set to 0
	Voids   int     // Number of void samples replaced with 0
}

// At returns the sample at (row, col). The caller is responsible for bounds.
func (h *HGT) At(row, col int) int16 {
	return h.Samples[row*h.Side+col]
}

// checkSide rejects sides that are not positive or whose byte size
// side*side*2 does not fit in an int.
func checkSide(side int) error {
	if side <= 0 || side > math.MaxInt/side/2 {
		return fmt.Errorf("%w: %d", ErrInvalidHGTSide, side)
	}
	return nil
}

// ParseHGT reads side*side big-endian signed 16-bit samples from r.
// Bytes past the last required sample are not read.
func ParseHGT(r io.Reader, side int) (*HGT, error) {
	if err := checkSide(side); err != nil {
		return nil, err
	}

	count := side * side
	hgt := &HGT{
		Side:    side,
		Samples: make([]int16, 0, min(count, maxPrealloc)),
	}

	br := bufio.NewReaderSize(r, 64*1024)
	var pair [2]byte
	for i := range count {
		if _, err := io.ReadFull(br, pair[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: sample %d of %d", ErrTruncatedHGTData, i, count)
			}
			return nil, fmt.Errorf("%w: sample %d of %d: %w", ErrTruncatedHGTData, i, count, err)
		}

		v := int16(binary.BigEndian.Uint16(pair[:]))
		if v == HGTVoid {
			v = 0
			hgt.Voids++
		}
		hgt.Samples = append(hgt.Samples, v)
	}

	return hgt, nil
}

// ParseHGTFile parses an HGT tile from disk. Files ending in .gz or .zst
// are decompressed on the fly.
func ParseHGTFile(path string, side int) (*HGT, error) {
	if err := checkSide(side); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHGTFileAccess, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty gzip stream", ErrTruncatedHGTData)
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrHGTFileAccess, path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrHGTFileAccess, path, err)
		}
		defer zr.Close()
		r = zr
	}

	hgt, err := ParseHGT(r, side)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hgt, nil
}

// HGTSideForSize returns the tile side for a raw (uncompressed) file of the
// given size in bytes, or 0 if the size does not describe a square tile.
func HGTSideForSize(size int64) int {
	switch size {
	case 2 * SRTM1Side * SRTM1Side:
		return SRTM1Side
	case 2 * SRTM3Side * SRTM3Side:
		return SRTM3Side
	}
	if size <= 0 || size%2 != 0 {
		return 0
	}
	n := size / 2
	side := int64(math.Round(math.Sqrt(float64(n))))
	if side*side != n {
		return 0
	}
	return int(side)
}
