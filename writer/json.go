package writer

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/cosmin/motion-search/meta"
	"github.com/mewkiz/pkg/errutil"
)

// writeJSON marshals results with goccy/go-json. When Detail is "gop" the
// top-level flat Frames list is dropped in favor of the per-GOP nested
// Frames (3.1), so the frame records are not duplicated in the output.
func writeJSON(w io.Writer, results meta.AnalysisResults) error {
	if results.Detail == "gop" {
		results.Frames = nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return errutil.Err(err)
	}
	return nil
}
