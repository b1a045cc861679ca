// Package formats provides parsers for digital elevation model file formats.
package formats

// Note: SRTM HGT tiles are implemented in hgt.go
// Note: SRTM tile naming (N33W118) is implemented in tilename.go
