// Package version resolves intarray module version from build info.
package version

import (
	"runtime/debug"
	"strings"
	"sync"

	"github.com/hashicorp/go-version"
)

const modulePath = "github.com/go-faster/intarray"

// Value describes intarray module version.
type Value struct {
	Major int
	Minor int
	Patch int
	Name  string
	Raw   string
}

func (v Value) String() string { return v.Raw }

// dev is zero-versioned development build.
var dev = Value{Name: "dev", Raw: "0.0.1-dev"}

// Extract version Value from BuildInfo.
//
// Module is looked up as main module first, then as dependency, so both
// binaries of this module and programs embedding it are covered.
func Extract(info *debug.BuildInfo) Value {
	var raw string
	if strings.HasPrefix(info.Main.Path, modulePath) {
		raw = info.Main.Version
	}
	for _, d := range info.Deps {
		if strings.HasPrefix(d.Path, modulePath) {
			raw = d.Version
			break
		}
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		// Also "(devel)" of local builds.
		return dev
	}
	out := Value{
		Name: v.Prerelease(), // "alpha", "rc.1"
		Raw:  strings.TrimPrefix(raw, "v"),
	}
	if s := v.Segments(); len(s) > 2 {
		out.Major, out.Minor, out.Patch = s[0], s[1], s[2]
	}
	return out
}

// Get returns current module version, computed once.
//
// Does not handle replace directives.
var Get = sync.OnceValue(func() Value {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return dev
	}
	return Extract(info)
})
