package locs

// FramedLocationLists buckets matched locations by reading frame and
// then by target ID within the frame. Targets are usually reference
// feature IDs, but any string works. One instance is filled per
// reference genome and cleared before the next.
type FramedLocationLists struct {
	master [numFrames]map[string]*SortedLocationList
	count  int
}

// Report pairs a target with its location list during iteration.
type Report struct {
	TargetID string
	List     *SortedLocationList
}

// NewFramedLocationLists builds an empty bucket set.
func NewFramedLocationLists() *FramedLocationLists {
	f := new(FramedLocationLists)
	for i := range f.master {
		f.master[i] = make(map[string]*SortedLocationList)
	}
	return f
}

// Connect files a location under its own frame for the given target.
func (f *FramedLocationLists) Connect(target string, loc Location) {
	m := f.master[loc.Frame()]
	list := m[target]
	if list == nil {
		list = new(SortedLocationList)
		m[target] = list
	}
	list.Add(loc)
	f.count++
}

// Clear empties every bucket.
func (f *FramedLocationLists) Clear() {
	for i := range f.master {
		f.master[i] = make(map[string]*SortedLocationList)
	}
	f.count = 0
}

// Size returns the total number of connections made since the last
// clear.
func (f *FramedLocationLists) Size() int { return f.count }

// Reports returns one report per non-empty (frame, target) bucket. The
// reports are grouped by frame; the order is otherwise unspecified.
func (f *FramedLocationLists) Reports() []Report {
	var reports []Report
	for _, m := range f.master {
		for target, list := range m {
			reports = append(reports, Report{TargetID: target, List: list})
		}
	}
	return reports
}
