package renderer

import "errors"

var (
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrInvalidFrameSize   = errors.New("renderer: frame width and height must be positive")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")
)
