// Package carousel holds the circular index arithmetic shared by the photo
// carousel and the trail picker.
package carousel

// PickerSize is the number of trails visible at once in the picker
const PickerSize = 3

// WrapIndex maps any integer onto [0, n). It returns 0 when n <= 0.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Window returns the catalog positions visible from offset.
// Catalogs no larger than size are shown whole and in order; larger ones
// show size consecutive positions wrapping past the end back to the start.
func Window(n, offset, size int) []int {
	if n <= 0 || size <= 0 {
		return nil
	}
	if n <= size {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	start := WrapIndex(offset, n)
	out := make([]int, size)
	for i := range out {
		out[i] = WrapIndex(start+i, n)
	}
	return out
}

// Photos tracks the current photo of a single trail
type Photos struct {
	index int
	count int
}

// NewPhotos creates a carousel over count photos, positioned on the first one
func NewPhotos(count int) Photos {
	if count < 0 {
		count = 0
	}
	return Photos{count: count}
}

// Index returns the current photo position
func (p Photos) Index() int { return p.index }

// Len returns the number of photos
func (p Photos) Len() int { return p.count }

// Next moves to the following photo, wrapping to the first
func (p *Photos) Next() {
	p.index = WrapIndex(p.index+1, p.count)
}

// Prev moves to the previous photo, wrapping to the last
func (p *Photos) Prev() {
	p.index = WrapIndex(p.index-1, p.count)
}

// JumpTo selects photo i. Positions outside the list are ignored and
// reported as false.
func (p *Photos) JumpTo(i int) bool {
	if i < 0 || i >= p.count {
		return false
	}
	p.index = i
	return true
}

// Picker is the rotation offset of the "other trails" window
type Picker struct {
	offset int
	count  int
}

// NewPicker creates a picker over a catalog of count trails
func NewPicker(count int) Picker {
	if count < 0 {
		count = 0
	}
	return Picker{count: count}
}

// Offset returns the catalog position the window starts at
func (p Picker) Offset() int { return p.offset }

// Enabled reports whether the picker has anything to rotate through
func (p Picker) Enabled() bool { return p.count > 0 }

// Next rotates the window forward by one trail
func (p *Picker) Next() {
	if !p.Enabled() {
		return
	}
	p.offset = WrapIndex(p.offset+1, p.count)
}

// Prev rotates the window back by one trail
func (p *Picker) Prev() {
	if !p.Enabled() {
		return
	}
	p.offset = WrapIndex(p.offset-1, p.count)
}

// Visible returns the catalog positions currently shown
func (p Picker) Visible() []int {
	return Window(p.count, p.offset, PickerSize)
}
