// Package export writes normalized point clouds as msgpack, optionally
// deflate-compressed, for consumption by external viewers.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Faultbox/srtm-terrain/pkg/math"
)

// Layout identifies how Data is organized.
type Layout string

const (
	LayoutXYZ    Layout = "xyz"    // 3 floats per point
	LayoutXYZRGB Layout = "xyzrgb" // 3 position + 3 color floats per point
)

// ErrLayoutMismatch is returned when Data does not divide into whole points.
var ErrLayoutMismatch = errors.New("point data does not match layout")

// PointCloud is the exported document. Data is flat so it maps directly
// onto a vertex buffer.
type PointCloud struct {
	Source string    `msgpack:"source"`
	Side   int       `msgpack:"side"`
	Step   int       `msgpack:"step"`
	Layout Layout    `msgpack:"layout"`
	Data   []float32 `msgpack:"data"`
}

// Stride returns the number of floats per point.
func (l Layout) Stride() int {
	if l == LayoutXYZRGB {
		return 6
	}
	return 3
}

// Count returns the number of points in the cloud.
func (pc *PointCloud) Count() int {
	return len(pc.Data) / pc.Layout.Stride()
}

// FromPoints flattens normalized points into an xyz cloud.
func FromPoints(source string, side, step int, points []math.Vec3) *PointCloud {
	data := make([]float32, 0, len(points)*3)
	for _, p := range points {
		a := p.Array()
		data = append(data, a[:]...)
	}
	return &PointCloud{Source: source, Side: side, Step: step, Layout: LayoutXYZ, Data: data}
}

// Encode writes pc to w. With compress set the msgpack stream is deflated.
func Encode(w io.Writer, pc *PointCloud, compress bool) error {
	if len(pc.Data)%pc.Layout.Stride() != 0 {
		return fmt.Errorf("%w: %d floats for layout %s", ErrLayoutMismatch, len(pc.Data), pc.Layout)
	}

	if !compress {
		return msgpack.NewEncoder(w).Encode(pc)
	}

	fw, err := flate.NewWriter(w, flate.BestSpeed)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(fw).Encode(pc); err != nil {
		return err
	}
	return fw.Close()
}

// Decode reads a cloud written by Encode.
func Decode(r io.Reader, compressed bool) (*PointCloud, error) {
	if compressed {
		fr := flate.NewReader(r)
		defer fr.Close()
		r = fr
	}

	var pc PointCloud
	if err := msgpack.NewDecoder(r).Decode(&pc); err != nil {
		return nil, err
	}
	if len(pc.Data)%pc.Layout.Stride() != 0 {
		return nil, fmt.Errorf("%w: %d floats for layout %s", ErrLayoutMismatch, len(pc.Data), pc.Layout)
	}
	return &pc, nil
}

// WriteFile encodes pc to path, creating parent directories.
func WriteFile(path string, pc *PointCloud, compress bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, pc, compress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes a cloud from path.
func ReadFile(path string, compressed bool) (*PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, compressed)
}
