package writer

import (
	"encoding/xml"
	"io"

	"github.com/cosmin/motion-search/meta"
	"github.com/mewkiz/pkg/errutil"
)

// resultsXML gives meta.AnalysisResults a named root element; the type
// itself stays encoding-agnostic (it has no XMLName) so the meta package
// does not need to import encoding/xml.
type resultsXML struct {
	XMLName xml.Name `xml:"analysis"`
	meta.AnalysisResults
}

// writeXML marshals results with the standard library's encoding/xml: no
// library in the pack offers XML encoding, so this is the documented
// standard-library fallback (SPEC_FULL.md §2). AnalysisResults.Frames is
// tagged xml:"-" unconditionally, so the per-frame records appear only
// through the nested <gops><gop><frames>, which groupGOPs fills under
// -detail gop; under -detail frame the XML output carries no per-frame
// records.
func writeXML(w io.Writer, results meta.AnalysisResults) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errutil.Err(err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(resultsXML{AnalysisResults: results}); err != nil {
		return errutil.Err(err)
	}
	if err := enc.Flush(); err != nil {
		return errutil.Err(err)
	}
	return nil
}
