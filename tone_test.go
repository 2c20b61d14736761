package thursday

import "testing"

// TestSinePurity is S2: a 440 Hz sine at 44100 Hz sample rate should cross
// zero 879 or 880 times over one second of samples (440*2, plus or minus
// one for where the window happens to land).
func TestSinePurity(t *testing.T) {
	tone := NewSineTone(440, 44100)
	samples := make([]StereoSample, 44100)
	tone.FillStereoSamples(samples, MixDiv1)

	crossings := 0
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1].Left, samples[i].Left
		if (prev < 0 && cur >= 0) || (prev >= 0 && cur < 0) {
			crossings++
		}
	}
	if crossings != 879 && crossings != 880 {
		t.Errorf("zero crossings = %d, want 879 or 880", crossings)
	}
}

// TestFadeInMonotonicity is S6: over a 32-chunk fade-in, the per-chunk peak
// absolute amplitude must never decrease.
func TestFadeInMonotonicity(t *testing.T) {
	tone := NewSineTone(220, 44100)
	samples := make([]StereoSample, 3200)
	tone.FillFirstStereoSamples(samples, MixDiv1)

	chunkSize := len(samples) / 32
	var lastPeak int32 = -1
	for c := 0; c < 32; c++ {
		lo, hi := c*chunkSize, (c+1)*chunkSize
		var peak int32
		for i := lo; i < hi; i++ {
			v := int32(samples[i].Left)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		if peak < lastPeak {
			t.Errorf("chunk %d peak %d < previous chunk peak %d", c, peak, lastPeak)
		}
		lastPeak = peak
	}
}

func TestSquareToneAlternates(t *testing.T) {
	tone := NewSquareTone(100, 44100)
	samples := make([]StereoSample, 8)
	tone.FillStereoSamples(samples, MixDiv1)
	for _, s := range samples {
		if s.Left != 32767 && s.Left != -32768 {
			t.Errorf("square sample %d out of {32767,-32768}", s.Left)
		}
	}
}

func TestMixShiftReducesAmplitude(t *testing.T) {
	full := NewSineTone(440, 44100)
	quartered := NewSineTone(440, 44100)

	sFull := make([]StereoSample, 64)
	sQuart := make([]StereoSample, 64)
	full.FillStereoSamples(sFull, MixDiv1)
	quartered.FillStereoSamples(sQuart, MixDiv4)

	for i := range sFull {
		want := sFull[i].Left >> 2
		if sQuart[i].Left != want {
			t.Errorf("sample %d: Div4 = %d, want %d (Div1 %d >> 2)", i, sQuart[i].Left, want, sFull[i].Left)
		}
	}
}
