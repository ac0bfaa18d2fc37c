package manifest

import (
	"embed"
	"io/fs"
)

// starterManifests embeds the example manifests that `arbor init` copies
// into a fresh manifest directory.
//
//go:embed examples
var starterManifests embed.FS

// StarterFS returns the embedded starter manifests, rooted so the files
// sit at the top level.
func StarterFS() fs.FS {
	sub, err := fs.Sub(starterManifests, "examples")
	if err != nil {
		// The examples directory is compiled in; Sub can only fail on
		// a bad path literal.
		panic(err)
	}
	return sub
}
