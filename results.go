package motionsearch

import "github.com/cosmin/motion-search/meta"

// groupGOPs folds a display-ordered frame record list into the GOP
// aggregates of 4.7: a GOP begins at each I-record and ends before the next
// I-record or at end-of-list. frames must already be in display order, as
// produced by Analyzer.Analyze.
func groupGOPs(frames []meta.FrameRecord, detail DetailLevel) []meta.GOPRecord {
	var gops []meta.GOPRecord
	var cur *meta.GOPRecord

	flush := func() {
		if cur != nil {
			gops = append(gops, *cur)
			cur = nil
		}
	}

	for _, rec := range frames {
		if rec.PicType == meta.PictureI || cur == nil {
			flush()
			cur = &meta.GOPRecord{
				GOPIndex:           len(gops),
				StartSequenceIndex: rec.PicNum,
			}
		}
		cur.EndSequenceIndex = rec.PicNum
		cur.TotalBits += rec.Bits
		cur.AvgScoreV2 += rec.ScoreV2
		switch rec.PicType {
		case meta.PictureI:
			cur.CountIntra++
		case meta.PictureP:
			cur.CountInterP++
		case meta.PictureB:
			cur.CountInterB++
		}
		if detail == DetailGOP {
			cur.Frames = append(cur.Frames, rec)
		}
	}
	flush()

	for i := range gops {
		n := gops[i].CountIntra + gops[i].CountInterP + gops[i].CountInterB
		if n > 0 {
			gops[i].AvgScoreV2 /= float64(n)
		}
	}
	return gops
}

// BuildResults assembles the final AnalysisResults from a completed
// analysis: the GOP aggregates, and the display-ordered frame list kept
// alongside them for flat (non-nested) output.
func BuildResults(metadata meta.VideoMetadata, frames []meta.FrameRecord, detail DetailLevel) meta.AnalysisResults {
	detailName := "frame"
	if detail == DetailGOP {
		detailName = "gop"
	}
	return meta.AnalysisResults{
		Metadata: metadata,
		GOPs:     groupGOPs(frames, detail),
		Frames:   frames,
		Detail:   detailName,
	}
}
