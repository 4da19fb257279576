package locs

import "testing"

func TestSortedLocationList(t *testing.T) {
	var list SortedLocationList
	list.Add(Must("c1", '+', 50, 70))
	list.Add(Must("c1", '+', 10, 30))
	list.Add(Must("c2", '+', 5, 10))
	list.Add(Must("c1", '+', 10, 20))

	want := []Location{
		Must("c1", '+', 10, 20),
		Must("c1", '+', 10, 30),
		Must("c1", '+', 50, 70),
		Must("c2", '+', 5, 10),
	}
	if list.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", list.Len(), len(want))
	}
	for i, w := range want {
		if list.Get(i) != w {
			t.Errorf("Get(%d) = %v, want %v", i, list.Get(i), w)
		}
	}

	rest := list.ContigRange(0)
	if len(rest) != 2 || rest[0] != want[1] || rest[1] != want[2] {
		t.Errorf("ContigRange(0) = %v, want %v", rest, want[1:3])
	}
	if rest = list.ContigRange(2); len(rest) != 0 {
		t.Errorf("ContigRange(2) = %v, want empty", rest)
	}
}

func TestFramedLocationLists(t *testing.T) {
	f := NewFramedLocationLists()

	// Two targets, two frames apiece.
	f.Connect("pegA", Must("c1", '+', 4, 15))  // P1
	f.Connect("pegA", Must("c1", '+', 10, 21)) // P1
	f.Connect("pegA", Must("c1", '+', 5, 16))  // P2
	f.Connect("pegB", Must("c1", '-', 8, 19))  // M1
	f.Connect("pegB", Must("c2", '-', 3, 14))  // M2

	if f.Size() != 5 {
		t.Errorf("Size() = %d, want 5", f.Size())
	}
	reports := f.Reports()
	if len(reports) != 4 {
		t.Fatalf("got %d reports, want 4", len(reports))
	}
	byFrame := make(map[string]int)
	for _, r := range reports {
		byFrame[r.TargetID] += r.List.Len()
	}
	if byFrame["pegA"] != 3 || byFrame["pegB"] != 2 {
		t.Errorf("per-target location counts = %v, want pegA:3 pegB:2", byFrame)
	}

	// Locations in one bucket stay sorted.
	for _, r := range reports {
		for i := 1; i < r.List.Len(); i++ {
			if lessLoc(r.List.Get(i), r.List.Get(i-1)) {
				t.Errorf("target %s: list out of order at %d", r.TargetID, i)
			}
		}
	}

	f.Clear()
	if f.Size() != 0 || len(f.Reports()) != 0 {
		t.Errorf("after Clear: size %d, %d reports", f.Size(), len(f.Reports()))
	}
}
