package config

import "errors"

var (
	// ErrReleased indicates an operation on a Config that has already been
	// released via [Config.Close].
	ErrReleased = errors.New("config already released")

	// ErrRootDirInvalid indicates that the final resolved root directory
	// does not exist or is not a directory. This is the only fatal
	// condition in the resolution pipeline.
	ErrRootDirInvalid = errors.New("root directory does not exist")
)
