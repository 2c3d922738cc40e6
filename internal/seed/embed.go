package seed

import "embed"

// FS holds the bundled *.yaml datasets embedded at compile time.
// The CLI loads sample.yaml from here when no data file is configured.
//
//go:embed *.yaml
var FS embed.FS

// SampleFile is the name of the default dataset inside FS.
const SampleFile = "sample.yaml"
