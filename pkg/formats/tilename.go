package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInvalidTileName is returned when a file name does not follow the
// SRTM N00E000 convention.
var ErrInvalidTileName = errors.New("invalid SRTM tile name")

// TileName identifies a 1x1 degree SRTM tile by its south-west corner.
type TileName struct {
	Lat int // Degrees north (negative for south)
	Lon int // Degrees east (negative for west)
}

// String returns the canonical stem, e.g. "N33W118".
func (t TileName) String() string {
	ns, lat := 'N', t.Lat
	if lat < 0 {
		ns, lat = 'S', -lat
	}
	ew, lon := 'E', t.Lon
	if lon < 0 {
		ew, lon = 'W', -lon
	}
	return fmt.Sprintf("%c%02d%c%03d", ns, lat, ew, lon)
}

// ParseTileName extracts the tile corner from a path such as
// "/data/N33W118.hgt" or "s04e021.hgt.gz".
func ParseTileName(path string) (TileName, error) {
	base := strings.ToUpper(filepath.Base(path))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if len(base) != 7 {
		return TileName{}, fmt.Errorf("%w: %q", ErrInvalidTileName, filepath.Base(path))
	}

	lat, err := strconv.Atoi(base[1:3])
	if err != nil {
		return TileName{}, fmt.Errorf("%w: %q", ErrInvalidTileName, base)
	}
	lon, err := strconv.Atoi(base[4:7])
	if err != nil {
		return TileName{}, fmt.Errorf("%w: %q", ErrInvalidTileName, base)
	}

	switch base[0] {
	case 'N':
	case 'S':
		lat = -lat
	default:
		return TileName{}, fmt.Errorf("%w: %q", ErrInvalidTileName, base)
	}
	switch base[3] {
	case 'E':
	case 'W':
		lon = -lon
	default:
		return TileName{}, fmt.Errorf("%w: %q", ErrInvalidTileName, base)
	}

	if lat < -90 || lat >= 90 || lon < -180 || lon >= 180 {
		return TileName{}, fmt.Errorf("%w: %q out of range", ErrInvalidTileName, base)
	}
	return TileName{Lat: lat, Lon: lon}, nil
}
