package track

import "testing"

func TestPartitionByRuns(t *testing.T) {
	items := []int{1, 3, 5, 2, 4, 7}

	runs := PartitionBy(items, func(v int) bool { return v%2 == 1 })

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantLens := []int{3, 2, 1}
	wantMatch := []bool{true, false, true}
	for i, run := range runs {
		if len(run.Items) != wantLens[i] {
			t.Errorf("Run %d has %d items, want %d", i, len(run.Items), wantLens[i])
		}
		if run.Match != wantMatch[i] {
			t.Errorf("Run %d Match = %v, want %v", i, run.Match, wantMatch[i])
		}
	}

	if runs[0].Items[0] != 1 || runs[1].Items[0] != 2 || runs[2].Items[0] != 7 {
		t.Errorf("Runs out of order: %v", runs)
	}
}

func TestPartitionByEmpty(t *testing.T) {
	if got := PartitionBy(nil, func(int) bool { return true }); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
}

func TestPartitionBySingleRun(t *testing.T) {
	items := []string{"a", "b", "c"}

	runs := PartitionBy(items, func(string) bool { return false })

	if len(runs) != 1 {
		t.Fatalf("Expected a single run, got %d", len(runs))
	}
	if runs[0].Match || len(runs[0].Items) != 3 {
		t.Errorf("Run = %+v", runs[0])
	}
}

func TestPartitionByAdjacentRunsAlternate(t *testing.T) {
	items := []int{0, 1, 0, 0, 1, 1, 0}

	runs := PartitionBy(items, func(v int) bool { return v == 1 })

	for i := 1; i < len(runs); i++ {
		if runs[i].Match == runs[i-1].Match {
			t.Errorf("Adjacent runs %d and %d share Match = %v", i-1, i, runs[i].Match)
		}
	}

	total := 0
	for _, run := range runs {
		total += len(run.Items)
	}
	if total != len(items) {
		t.Errorf("Runs cover %d items, want %d", total, len(items))
	}
}

func TestPartitionByReturnsViews(t *testing.T) {
	items := []int{1, 1, 2, 2}

	runs := PartitionBy(items, func(v int) bool { return v == 1 })

	runs[0].Items[0] = 99
	if items[0] != 99 {
		t.Errorf("Run items should alias the input slice")
	}
}
