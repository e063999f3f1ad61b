package libsignal

import "github.com/anooppoommen/libsignal-client/internal/bindings"

// Config expresses the knobs required to open the native libsignal library.
// The fields are placeholders until the binding parameters are final, so
// callers can thread the object through their wiring without needing cgo
// today.
type Config struct {
	// DataDir records where the library may keep durable state such as
	// session stores. Leaving it empty lets the library pick defaults.
	DataDir string
}

func (c Config) toBindings() bindings.Config {
	return bindings.Config{}
}
