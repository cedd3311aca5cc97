// Command motion-search analyzes a raw planar or Y4M video and reports,
// per frame and per group of pictures, how expensive it would be for a
// block-based codec to compress: a motion-estimation front end without the
// entropy coder, transform or bitstream behind it.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	motionsearch "github.com/cosmin/motion-search"
	"github.com/cosmin/motion-search/framesource"
	"github.com/cosmin/motion-search/meta"
	"github.com/cosmin/motion-search/trace"
	"github.com/cosmin/motion-search/writer"
	"github.com/mewkiz/pkg/osutil"
	"github.com/pkg/errors"
)

func main() {
	var (
		width     int
		height    int
		maxFrames int
		gopSize   int
		bframes   int
		format    string
		detail    string
		score     string
		wSpatial  float64
		wMotion   float64
		wResidual float64
		wError    float64
		outPath   string
		tracePath string
		force     bool
	)
	flag.IntVar(&width, "width", 0, "frame width in samples (required for raw planar input)")
	flag.IntVar(&height, "height", 0, "frame height in samples (required for raw planar input)")
	flag.IntVar(&maxFrames, "frames", 0, "maximum number of frame records to output; every frame is still analyzed (0 means all)")
	flag.IntVar(&gopSize, "gop_size", 150, "frames per group of pictures")
	flag.IntVar(&bframes, "bframes", 0, "consecutive B pictures between anchors")
	flag.StringVar(&format, "format", "csv", "output format: csv, json or xml")
	flag.StringVar(&detail, "detail", "frame", "output detail: frame or gop")
	flag.StringVar(&score, "complexity_score", "v1", "unified complexity score: v1 or v2")
	flag.Float64Var(&wSpatial, "w_spatial", 0.25, "score_v2 spatial-variance weight")
	flag.Float64Var(&wMotion, "w_motion", 0.30, "score_v2 motion weight")
	flag.Float64Var(&wResidual, "w_residual", 0.25, "score_v2 residual weight")
	flag.Float64Var(&wError, "w_error", 0.20, "score_v2 error weight")
	flag.StringVar(&outPath, "o", "", "output path (default: input path with the format's extension)")
	flag.StringVar(&tracePath, "mb-trace", "", "optional per-macroblock bit-packed trace output path")
	flag.BoolVar(&force, "f", false, "force overwrite of an existing output file")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatalln("Error: exactly one input path is required")
	}
	if err := run(args[0], outPath, tracePath, format, detail, score, width, height, maxFrames, gopSize, bframes, wSpatial, wMotion, wResidual, wError, force); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(inPath, outPath, tracePath, format, detail, score string, width, height, maxFrames, gopSize, bframes int, wSpatial, wMotion, wResidual, wError float64, force bool) error {
	wfmt, ok := writer.ParseFormat(format)
	if !ok {
		return errors.Errorf("unknown -format %q (want csv, json or xml)", format)
	}
	detailLevel, err := parseDetail(detail)
	if err != nil {
		return err
	}
	scoreVersion, err := parseScore(score)
	if err != nil {
		return err
	}

	cfg := motionsearch.DefaultConfig()
	cfg.GOPSize = gopSize
	cfg.BFrames = bframes
	cfg.Score = scoreVersion
	cfg.Detail = detailLevel
	cfg.Weights = motionsearch.ComplexityWeights{
		Spatial:  wSpatial,
		Motion:   wMotion,
		Residual: wResidual,
		Error:    wError,
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithStack(err)
	}

	src, closeSrc, err := openSource(inPath, width, height)
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeSrc()

	analyzer, err := motionsearch.NewAnalyzer(src, cfg)
	if err != nil {
		return errors.WithStack(err)
	}

	if tracePath != "" {
		tf, err := os.Create(tracePath)
		if err != nil {
			return errors.WithStack(err)
		}
		defer tf.Close()
		tw := trace.NewWriter(tf)
		defer tw.Close()
		analyzer.SetTraceWriter(tw)
	}

	frames, err := analyzer.Analyze()
	if err != nil {
		return errors.WithStack(err)
	}
	if maxFrames > 0 && len(frames) > maxFrames {
		frames = frames[:maxFrames]
	}

	w, h := src.Dim()
	metadata := meta.VideoMetadata{
		Width:         w,
		Height:        h,
		TotalFrames:   len(frames),
		GOPSize:       gopSize,
		BFrames:       bframes,
		InputFormat:   inputFormatName(inPath),
		InputFilename: filepath.Base(inPath),
		AnalysisTime:  time.Now().UTC().Format(time.RFC3339),
		Version:       meta.Version,
	}
	results := motionsearch.BuildResults(metadata, frames, detailLevel)

	if outPath == "" {
		outPath = defaultOutputPath(inPath, format)
	}
	if !force && osutil.Exists(outPath) {
		return errors.Errorf("output file %q already present; use -f to force overwrite", outPath)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer out.Close()

	if err := writer.Write(out, results, wfmt); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func openSource(path string, width, height int) (motionsearch.FrameSource, func(), error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".y4m" {
		src, err := framesource.OpenY4M(path)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil
	}
	src, err := framesource.OpenRawPlanar(path, width, height)
	if err != nil {
		return nil, nil, err
	}
	return src, func() { src.Close() }, nil
}

func parseDetail(s string) (motionsearch.DetailLevel, error) {
	switch s {
	case "frame":
		return motionsearch.DetailFrame, nil
	case "gop":
		return motionsearch.DetailGOP, nil
	default:
		return 0, errors.Errorf("unknown -detail %q (want frame or gop)", s)
	}
}

func parseScore(s string) (motionsearch.ScoreVersion, error) {
	switch s {
	case "v1":
		return motionsearch.ScoreV1, nil
	case "v2":
		return motionsearch.ScoreV2, nil
	default:
		return 0, errors.Errorf("unknown -complexity_score %q (want v1 or v2)", s)
	}
}

func defaultOutputPath(inPath, format string) string {
	base := inPath
	if ext := filepath.Ext(inPath); ext != "" {
		base = strings.TrimSuffix(inPath, ext)
	}
	return base + "." + format
}

func inputFormatName(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".y4m" {
		return "y4m"
	}
	return "raw_planar"
}
