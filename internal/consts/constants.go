package consts

const (
	// AppName is the binary and default manifest base name.
	AppName = "converge"

	// DefaultConfigFile is the manifest looked up when --config is not given.
	DefaultConfigFile = "converge.yaml"
)

// Version is the release version, overridable at build time with
// -ldflags "-X ...".
var Version = "0.1.0"
