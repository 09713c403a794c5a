package platform

import (
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// Open builds the store for the backing file at path.
// An empty path selects fs.DefaultPath.
func Open(path string, opts ...Option) core.Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store
	}

	return fs.NewDatastore(fs.Config{
		Path:            path,
		Logger:          o.logger,
		IDPolicy:        o.idPolicy,
		TruncateInPlace: !o.atomic,
		FileMode:        o.fileMode,
		Debounce:        o.debounce,
	})
}

// ParseIDPolicy maps a policy name ("next" or "count") to an fs.IDPolicy.
func ParseIDPolicy(name string) (fs.IDPolicy, error) {
	switch name {
	case "", "next":
		return fs.IDPolicyNext, nil
	case "count":
		return fs.IDPolicyCount, nil
	default:
		return 0, core.Errorf(core.KindBadArgument, "parse id policy", "unknown id policy %q (want next or count)", name)
	}
}
