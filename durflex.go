// Package durflex carries the assets embedded into the durflex binary.
package durflex

import (
	_ "embed" // Import the embed package
)

// EmbeddedConfig is the configuration used when no config file is found
//
//go:embed durflex.hcl
var EmbeddedConfig []byte
