package readmegen

import (
	"io/fs"

	"github.com/goliatone/go-readmegen/pkg/renderers/preview"
)

// PreviewAssetsFS exposes the stylesheet bundle the preview page links, so
// applications embedding the preview can serve it without copying files.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(readmegen.PreviewAssetsFS()),
//	  ),
//	)
func PreviewAssetsFS() fs.FS {
	return preview.AssetsFS()
}
