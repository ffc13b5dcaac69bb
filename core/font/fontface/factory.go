package fontface

import (
	"strings"

	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/notefonts/core/locate/resources"
)

// DefaultFactory returns a face factory reading through fsys. Files with
// suffix ".ftx" are read as packed containers, all others as outline fonts.
// Faces are wrapped in a ValidatingFace.
func DefaultFactory(fsys resources.FileSystem) font.FaceFactory {
	return func(path string) font.Face {
		if strings.HasSuffix(strings.ToLower(path), PackedSuffix) {
			return Validating(NewPackedFace(fsys))
		}
		return Validating(NewOutlineFace(fsys))
	}
}
