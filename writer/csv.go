package writer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cosmin/motion-search/meta"
	"github.com/mewkiz/pkg/errutil"
)

var csvHeader = []string{"picNum", "picType", "count_I", "count_P", "count_B", "error", "bits"}

// writeCSV emits the fixed flat schema of 4.7/6: one row per frame record in
// display order, Unix line endings, regardless of -detail (CSV has no
// nesting to collapse into, so the GOP grouping only affects JSON/XML).
func writeCSV(w io.Writer, results meta.AnalysisResults) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	if err := cw.Write(csvHeader); err != nil {
		return errutil.Err(err)
	}
	for _, rec := range results.Frames {
		row := []string{
			strconv.Itoa(rec.PicNum),
			rec.PicType.String(),
			strconv.Itoa(rec.CountIntra),
			strconv.Itoa(rec.CountInterP),
			strconv.Itoa(rec.CountInterB),
			strconv.Itoa(rec.Error),
			strconv.Itoa(rec.Bits),
		}
		if err := cw.Write(row); err != nil {
			return errutil.Err(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errutil.Err(err)
	}
	return nil
}
