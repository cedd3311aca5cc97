package mvfield

import "testing"

func TestNewFieldGuardBorder(t *testing.T) {
	f := NewField(4, 3)
	if got, want := len(f.Cells), (4+2)*(3+2); got != want {
		t.Fatalf("len(Cells) = %d, want %d", got, want)
	}
	// The guard border must be reachable without panicking.
	_ = f.At(-1, -1)
	_ = f.At(4, -1)
	_ = f.At(-1, 3)
	_ = f.At(4, 3)
}

func TestFieldSetUpdatesAggregates(t *testing.T) {
	f := NewField(2, 2)
	f.Reset()
	f.Set(0, 0, Cell{Mode: ModeIntra, Bits: 10})
	f.Set(1, 0, Cell{Mode: ModeInterP, Bits: 20})
	f.Set(0, 1, Cell{Mode: ModeInterB, Bits: 30})
	f.Set(1, 1, Cell{Mode: ModeIntra, Bits: 5})

	if got, want := f.CountIntra(), 2; got != want {
		t.Errorf("CountIntra() = %d, want %d", got, want)
	}
	if got, want := f.CountInterP(), 1; got != want {
		t.Errorf("CountInterP() = %d, want %d", got, want)
	}
	if got, want := f.CountInterB(), 1; got != want {
		t.Errorf("CountInterB() = %d, want %d", got, want)
	}
	if got, want := f.Bits(), 65; got != want {
		t.Errorf("Bits() = %d, want %d", got, want)
	}
}

func TestFieldResetClearsAggregates(t *testing.T) {
	f := NewField(1, 1)
	f.Set(0, 0, Cell{Mode: ModeInterP, Bits: 99})
	f.Reset()
	if f.CountInterP() != 0 || f.Bits() != 0 {
		t.Error("Reset did not clear the aggregate counters")
	}
	if f.At(0, 0).Mode != ModeIntra {
		t.Error("Reset did not reset the interior cell's mode to intra")
	}
}

func TestMVAddSub(t *testing.T) {
	a := MV{X: 3, Y: -2}
	b := MV{X: 1, Y: 5}
	if got, want := a.Add(b), (MV{X: 4, Y: 3}); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if got, want := a.Sub(b), (MV{X: 2, Y: -7}); got != want {
		t.Errorf("Sub = %+v, want %+v", got, want)
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		ModeIntra:  "intra",
		ModeInterP: "inter_p",
		ModeInterB: "inter_b",
		ModeSkip:   "skip",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestFirstMBOffsetMatchesIndex(t *testing.T) {
	f := NewField(5, 5)
	if got, want := f.FirstMBOffset(), f.Index(0, 0); got != want {
		t.Errorf("FirstMBOffset() = %d, want Index(0,0) = %d", got, want)
	}
}
