package locs

import "sort"

// SortedLocationList keeps the locations of one (frame, target) bucket
// ordered by contig, then left edge, then length.
type SortedLocationList struct {
	locs []Location
}

func lessLoc(a, b Location) bool {
	if a.Contig != b.Contig {
		return a.Contig < b.Contig
	}
	if a.Left != b.Left {
		return a.Left < b.Left
	}
	return a.Length() < b.Length()
}

// Add inserts a location at its sort position.
func (l *SortedLocationList) Add(loc Location) {
	i := sort.Search(len(l.locs), func(i int) bool {
		return !lessLoc(l.locs[i], loc)
	})
	l.locs = append(l.locs, Location{})
	copy(l.locs[i+1:], l.locs[i:])
	l.locs[i] = loc
}

// Len returns the number of locations in the list.
func (l *SortedLocationList) Len() int { return len(l.locs) }

// Get returns the location at index i.
func (l *SortedLocationList) Get(i int) Location { return l.locs[i] }

// ContigRange returns the locations after index i that are on the same
// contig as the location at i.
func (l *SortedLocationList) ContigRange(i int) []Location {
	contig := l.locs[i].Contig
	j := i + 1
	for j < len(l.locs) && l.locs[j].Contig == contig {
		j++
	}
	return l.locs[i+1 : j]
}
