package motionsearch

import (
	"testing"

	"github.com/cosmin/motion-search/meta"
)

func frameRec(picNum int, picType meta.PictureType, bits int, scoreV2 float64) meta.FrameRecord {
	return meta.FrameRecord{PicNum: picNum, PicType: picType, Bits: bits, ScoreV2: scoreV2}
}

func TestGroupGOPsStartsAtEachIFrame(t *testing.T) {
	frames := []meta.FrameRecord{
		frameRec(0, meta.PictureI, 100, 0.2),
		frameRec(1, meta.PictureB, 50, 0.1),
		frameRec(2, meta.PictureP, 80, 0.3),
		frameRec(3, meta.PictureI, 90, 0.4),
		frameRec(4, meta.PictureB, 40, 0.2),
	}
	gops := groupGOPs(frames, DetailFrame)
	if len(gops) != 2 {
		t.Fatalf("len(gops) = %d, want 2", len(gops))
	}
	if gops[0].StartSequenceIndex != 0 || gops[0].EndSequenceIndex != 2 {
		t.Errorf("gop0 span = [%d,%d], want [0,2]", gops[0].StartSequenceIndex, gops[0].EndSequenceIndex)
	}
	if gops[1].StartSequenceIndex != 3 || gops[1].EndSequenceIndex != 4 {
		t.Errorf("gop1 span = [%d,%d], want [3,4]", gops[1].StartSequenceIndex, gops[1].EndSequenceIndex)
	}
	if gops[0].TotalBits != 230 {
		t.Errorf("gop0 TotalBits = %d, want 230", gops[0].TotalBits)
	}
	if gops[0].CountIntra != 1 || gops[0].CountInterP != 1 || gops[0].CountInterB != 1 {
		t.Errorf("gop0 counts = {%d,%d,%d}, want {1,1,1}", gops[0].CountIntra, gops[0].CountInterP, gops[0].CountInterB)
	}
}

func TestGroupGOPsAverageScoreIsMeanNotSum(t *testing.T) {
	frames := []meta.FrameRecord{
		frameRec(0, meta.PictureI, 0, 0.2),
		frameRec(1, meta.PictureB, 0, 0.4),
	}
	gops := groupGOPs(frames, DetailFrame)
	if got, want := gops[0].AvgScoreV2, 0.3; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("AvgScoreV2 = %v, want %v", got, want)
	}
}

func TestGroupGOPsNestsFramesOnlyUnderGOPDetail(t *testing.T) {
	frames := []meta.FrameRecord{frameRec(0, meta.PictureI, 0, 0)}

	flat := groupGOPs(frames, DetailFrame)
	if flat[0].Frames != nil {
		t.Error("DetailFrame grouping should leave GOPRecord.Frames nil")
	}

	nested := groupGOPs(frames, DetailGOP)
	if len(nested[0].Frames) != 1 {
		t.Error("DetailGOP grouping should nest the frame records")
	}
}

func TestGroupGOPsEmptyInput(t *testing.T) {
	if gops := groupGOPs(nil, DetailFrame); len(gops) != 0 {
		t.Errorf("groupGOPs(nil) = %v, want empty", gops)
	}
}

func TestBuildResultsSetsDetailName(t *testing.T) {
	frames := []meta.FrameRecord{frameRec(0, meta.PictureI, 0, 0)}
	r := BuildResults(meta.VideoMetadata{}, frames, DetailGOP)
	if r.Detail != "gop" {
		t.Errorf("Detail = %q, want %q", r.Detail, "gop")
	}
	r2 := BuildResults(meta.VideoMetadata{}, frames, DetailFrame)
	if r2.Detail != "frame" {
		t.Errorf("Detail = %q, want %q", r2.Detail, "frame")
	}
}
