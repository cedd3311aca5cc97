package writer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/cosmin/motion-search/meta"
)

func sampleResults(detail string) meta.AnalysisResults {
	frames := []meta.FrameRecord{
		{PicNum: 0, PicType: meta.PictureI, Error: 10, Bits: 100, CountIntra: 4},
		{PicNum: 1, PicType: meta.PictureP, Error: 5, Bits: 50, CountInterP: 4},
	}
	return meta.AnalysisResults{
		Metadata: meta.VideoMetadata{Width: 16, Height: 16, TotalFrames: 2, Version: meta.Version},
		GOPs: []meta.GOPRecord{
			{GOPIndex: 0, StartSequenceIndex: 0, EndSequenceIndex: 1, TotalBits: 150, Frames: frames},
		},
		Frames: frames,
		Detail: detail,
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"csv": FormatCSV, "json": FormatJSON, "xml": FormatXML}
	for s, want := range cases {
		got, ok := ParseFormat(s)
		if !ok || got != want {
			t.Errorf("ParseFormat(%q) = (%v,%v), want (%v,true)", s, got, ok, want)
		}
	}
	if _, ok := ParseFormat("yaml"); ok {
		t.Error("ParseFormat(\"yaml\") = ok, want unknown format rejected")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults("frame"), Format(99)); err == nil {
		t.Error("Write with an invalid Format did not return an error")
	}
}

func TestWriteCSVSchemaAndRowCount(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults("frame"), FormatCSV); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 { // header + 2 frames
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	wantHeader := []string{"picNum", "picType", "count_I", "count_P", "count_B", "error", "bits"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][1] != "I" || rows[2][1] != "P" {
		t.Errorf("picType column = [%q,%q], want [I,P]", rows[1][1], rows[2][1])
	}
}

func TestWriteJSONDropsFlatFramesUnderGOPDetail(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults("gop"), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `"frames"`) && !strings.Contains(out, `"gops"`) {
		t.Error("gop-detail JSON has no gops field")
	}
	// Top-level flat frame list is gone; the nested per-GOP frames remain.
	count := strings.Count(out, `"picNum"`)
	if count != 2 {
		t.Errorf(`"picNum" occurs %d times, want exactly 2 (nested under gops only)`, count)
	}
}

func TestWriteJSONKeepsFlatFramesUnderFrameDetail(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults("frame"), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	count := strings.Count(out, `"picNum"`)
	if count != 4 { // 2 in the flat list + 2 nested under gops
		t.Errorf(`"picNum" occurs %d times, want 4`, count)
	}
}

func TestWriteXMLHasNamedRoot(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResults("frame"), FormatXML); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<analysis>") {
		t.Errorf("XML output missing <analysis> root: %s", out)
	}
	if !strings.HasPrefix(out, `<?xml`) {
		t.Error("XML output missing the xml.Header prologue")
	}
}
