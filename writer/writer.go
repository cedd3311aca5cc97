// Package writer serializes meta.AnalysisResults to CSV, JSON or XML.
package writer

import (
	"io"

	"github.com/cosmin/motion-search/meta"
	"github.com/mewkiz/pkg/errutil"
)

// Format selects the output encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatXML
)

// ParseFormat maps a -format flag value to a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "csv":
		return FormatCSV, true
	case "json":
		return FormatJSON, true
	case "xml":
		return FormatXML, true
	default:
		return 0, false
	}
}

// Write serializes results to w in the given format.
func Write(w io.Writer, results meta.AnalysisResults, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	case FormatXML:
		return writeXML(w, results)
	default:
		return errutil.Newf("writer: unknown format %d", format)
	}
}
