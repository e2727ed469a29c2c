package advisor

import "testing"

func TestDefaultTipPool(t *testing.T) {
	if len(defaultTips) != 7 {
		t.Errorf("pool has %d tips, want 7", len(defaultTips))
	}
	for i, tip := range defaultTips {
		if tip == "" {
			t.Errorf("tip %d is empty", i)
		}
	}
}

func TestRandomTip(t *testing.T) {
	pool := make(map[string]bool, len(defaultTips))
	for _, tip := range defaultTips {
		pool[tip] = true
	}
	for i := 0; i < 50; i++ {
		if tip := RandomTip(); !pool[tip] {
			t.Fatalf("RandomTip returned %q, not in the pool", tip)
		}
	}
}
