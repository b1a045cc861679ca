package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/srtm-terrain/pkg/formats"
)

// Terrain errors. ErrFileAccess and ErrTruncatedData are the decoder's own
// sentinels, so errors.Is works across both packages.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrFileAccess      = formats.ErrHGTFileAccess
	ErrTruncatedData   = formats.ErrTruncatedHGTData

	ErrNotSquare   = fmt.Errorf("%w: sample count is not a perfect square", ErrInvalidArgument)
	ErrInvalidStep = fmt.Errorf("%w: step must be >= 1", ErrInvalidArgument)
)
