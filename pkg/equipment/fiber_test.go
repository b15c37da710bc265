package equipment

import (
	"errors"
	"testing"
)

func TestNewRamanFiberSortsByOffset(t *testing.T) {
	base := Fiber{TypeVariety: "SSMF", Dispersion: 16.7e-6, Gamma: 1.27e-3}

	rf, err := NewRamanFiber(base, []float64{0.3, 0.1, 0.2}, []float64{15e12, 5e12, 10e12})
	if err != nil {
		t.Fatalf("NewRamanFiber: %v", err)
	}

	wantOffsets := []float64{5e12, 10e12, 15e12}
	wantCR := []float64{0.1, 0.2, 0.3}
	for i := range wantOffsets {
		if rf.FrequencyOffset[i] != wantOffsets[i] {
			t.Errorf("offset[%d] = %g, want %g", i, rf.FrequencyOffset[i], wantOffsets[i])
		}
		if rf.CR[i] != wantCR[i] {
			t.Errorf("cr[%d] = %g, want %g", i, rf.CR[i], wantCR[i])
		}
	}
}

func TestNewRamanFiberLengthMismatch(t *testing.T) {
	_, err := NewRamanFiber(Fiber{TypeVariety: "SSMF"}, []float64{0.1, 0.2}, []float64{5e12})
	if err == nil {
		t.Fatal("expected a length mismatch error")
	}
	if !errors.Is(err, ErrLengthsDiffer) {
		t.Errorf("error does not match ErrLengthsDiffer: %v", err)
	}
}

func TestLibraryLookupUnknownType(t *testing.T) {
	lib := NewLibrary()
	lib.Fibers["SSMF"] = &Fiber{TypeVariety: "SSMF"}

	if _, err := lib.FiberType("SSMF"); err != nil {
		t.Fatalf("known type: %v", err)
	}
	_, err := lib.FiberType("NZDF")
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type error = %v, want ErrUnknownType", err)
	}
	if _, err := lib.Amplifier("nope"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("amplifier lookup error = %v, want ErrUnknownType", err)
	}
}
