package config

import _ "embed"

// schemaSource is the CUE definition of #Product.
//
//go:embed schema.cue
var schemaSource string
