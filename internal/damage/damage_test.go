package damage

import (
	"math"
	"testing"
)

func TestSingleHitPhysical(t *testing.T) {
	raw, actual := SingleHit(1000, 2.0, 500, 0, Physical)
	if raw != 2000 {
		t.Fatalf("expected raw=2000, got %v", raw)
	}
	if actual != 1500 {
		t.Fatalf("expected actual=1500, got %v", actual)
	}
}

func TestSingleHitPhysicalFloor(t *testing.T) {
	// Defense above raw damage: the 5% floor holds.
	raw, actual := SingleHit(1000, 1.0, 5000, 0, Physical)
	if raw != 1000 {
		t.Fatalf("expected raw=1000, got %v", raw)
	}
	if actual != 50 {
		t.Fatalf("expected actual=50, got %v", actual)
	}
}

func TestSingleHitArtsResistanceCap(t *testing.T) {
	// 100 resistance caps at 95%, the same 5% floor.
	raw, actual := SingleHit(1000, 2.0, 0, 100, Arts)
	if raw != 2000 {
		t.Fatalf("expected raw=2000, got %v", raw)
	}
	if math.Abs(actual-100) > 1e-9 {
		t.Fatalf("expected actual=100, got %v", actual)
	}
}

func TestSingleHitArts(t *testing.T) {
	_, actual := SingleHit(1000, 2.0, 0, 40, Arts)
	if math.Abs(actual-1200) > 1e-9 {
		t.Fatalf("expected actual=1200, got %v", actual)
	}
}

func TestSustained(t *testing.T) {
	d := 5.0
	total, dps, ok := Sustained(100, &d, 1.2, 1)
	if !ok {
		t.Fatalf("expected a sustained phase")
	}
	// floor(5/1.2) = 4 hits
	if total != 400 {
		t.Fatalf("expected total=400, got %v", total)
	}
	if math.Abs(dps-100/1.2) > 1e-9 {
		t.Fatalf("expected dps=%v, got %v", 100/1.2, dps)
	}
}

func TestSustainedDPSIsNotTotalOverDuration(t *testing.T) {
	// DPS is the untruncated steady rate; with 4 of 5/1.2 hits the two
	// quantities deliberately disagree.
	d := 5.0
	total, dps, ok := Sustained(100, &d, 1.2, 1)
	if !ok {
		t.Fatalf("expected a sustained phase")
	}
	if math.Abs(total/d-80) > 1e-9 {
		t.Fatalf("expected total/duration=80, got %v", total/d)
	}
	if total/d == dps {
		t.Fatalf("expected dps to differ from total/duration when hits truncate")
	}
}

func TestSustainedTargets(t *testing.T) {
	d := 6.0
	total, dps, ok := Sustained(100, &d, 1.0, 3)
	if !ok {
		t.Fatalf("expected a sustained phase")
	}
	if total != 1800 {
		t.Fatalf("expected total=1800, got %v", total)
	}
	if dps != 300 {
		t.Fatalf("expected dps=300, got %v", dps)
	}
}

func TestSustainedWithoutDuration(t *testing.T) {
	if _, _, ok := Sustained(100, nil, 1.2, 1); ok {
		t.Fatalf("expected no sustained phase for nil duration")
	}
	zero := 0.0
	if _, _, ok := Sustained(100, &zero, 1.2, 1); ok {
		t.Fatalf("expected no sustained phase for zero duration")
	}
}
