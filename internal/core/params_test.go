package core

import "testing"

func TestParamsClamped(t *testing.T) {
	p := Params{SpikeDetail: 0.2, SpikeLength: 9}.Clamped()
	if p.SpikeDetail != SpikeDetailMin {
		t.Fatalf("SpikeDetail = %v, expected clamp to %v", p.SpikeDetail, SpikeDetailMin)
	}
	if p.SpikeLength != SpikeLengthMax {
		t.Fatalf("SpikeLength = %v, expected clamp to %v", p.SpikeLength, SpikeLengthMax)
	}

	in := Params{SpikeDetail: 12.5, SpikeLength: 1.2}
	if got := in.Clamped(); got != in {
		t.Fatalf("in-range params changed by Clamped: %v -> %v", in, got)
	}
}
