// Package meta holds the result types handed to the writer package:
// VideoMetadata describing the analyzed sequence, per-frame and per-GOP
// records, and the AnalysisResults container that bundles them, mirroring
// the VideoMetadata/FrameData/GOPData/AnalysisResults shape of the
// original analyzer's output model.
package meta

// VideoMetadata describes the sequence that was analyzed.
type VideoMetadata struct {
	Width         int    `json:"width" xml:"width"`
	Height        int    `json:"height" xml:"height"`
	TotalFrames   int    `json:"total_frames" xml:"total_frames"`
	GOPSize       int    `json:"gop_size" xml:"gop_size"`
	BFrames       int    `json:"bframes" xml:"bframes"`
	InputFormat   string `json:"input_format" xml:"input_format"`
	InputFilename string `json:"input_filename" xml:"input_filename"`
	AnalysisTime  string `json:"analysis_time" xml:"analysis_time"`
	Version       string `json:"version" xml:"version"`
}

// Version is the analyzer's published output-format version, bumped only
// when the bit-proxy constants or record schema change in a way that
// breaks byte-for-byte reproducibility.
const Version = "1.0"
