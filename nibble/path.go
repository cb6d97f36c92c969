// Package nibble implements Path, an immutable sequence of 4-bit nibbles used
// as the unit of branching in a radix trie.
//
// A Path is a view into a packed byte slice:
//
//	data:   [ 0x1a ][ 0x2b ][ 0x3c ]
//	nibble:   1  a    2  b    3  c
//	offset:   0  1    2  3    4  5
//
// Slicing never copies; joining and appending always allocate a fresh backing
// array, so the bytes behind a Path are never written after construction.
package nibble

import (
	"errors"
	"fmt"
	"strings"
)

const (
	nibbleWidth = 4
	nibbleMask  = 0x0F
	hexDigits   = "0123456789abcdef"
)

// ErrOutOfBounds is the cause of panics raised on bad nibble indices.
var ErrOutOfBounds = errors.New("nibble index out of bounds")

// Path is a sequence of nibbles. The zero value is an empty path.
type Path struct {
	data   []byte
	offset int // in nibbles
	length int // in nibbles
}

// FromBytes returns a path of 2*len(b) nibbles, the high nibble of every byte
// first. The slice is not copied and must not be modified afterwards.
func FromBytes(b []byte) Path {
	return Path{data: b, length: len(b) * 2}
}

// FromNibbles builds a path out of raw nibble values. Every value must be
// below 16.
func FromNibbles(nibs ...byte) Path {
	data := make([]byte, (len(nibs)+1)/2)

	for i, nib := range nibs {
		if nib > nibbleMask {
			panic(fmt.Errorf("%w: nibble value %d at %d", ErrOutOfBounds, nib, i))
		}

		putNibble(data, i, nib)
	}

	return Path{data: data, length: len(nibs)}
}

// Concat joins paths into a freshly allocated one.
func Concat(paths ...Path) Path {
	total := 0
	for _, p := range paths {
		total += p.length
	}

	var (
		data = make([]byte, (total+1)/2)
		pos  int
	)

	for _, p := range paths {
		pos = p.copyTo(data, pos)
	}

	return Path{data: data, length: total}
}

func (p Path) Len() int {
	return p.length
}

func (p Path) IsEmpty() bool {
	return p.length == 0
}

// At returns the i-th nibble.
func (p Path) At(i int) byte {
	if i < 0 || i >= p.length {
		panic(fmt.Errorf("%w: index %d, length %d", ErrOutOfBounds, i, p.length))
	}

	return p.at(i)
}

func (p Path) at(i int) byte {
	idx := p.offset + i
	b := p.data[idx>>1]

	if idx&1 == 0 {
		return b >> nibbleWidth
	}

	return b & nibbleMask
}

// CommonPrefixLen returns the number of leading nibbles p and q share.
func (p Path) CommonPrefixLen(q Path) int {
	limit := min(p.length, q.length)

	if p.offset&1 == 0 && q.offset&1 == 0 {
		// both are byte aligned - compare whole bytes first
		var (
			pb = p.data[p.offset>>1:]
			qb = q.data[q.offset>>1:]
			n  int
		)

		for ; n+2 <= limit && pb[n>>1] == qb[n>>1]; n += 2 {
		}

		if n < limit && pb[n>>1]>>nibbleWidth == qb[n>>1]>>nibbleWidth {
			n++
		}

		return n
	}

	n := 0
	for ; n < limit && p.at(n) == q.at(n); n++ {
	}

	return n
}

// HasPrefix reports whether q is a prefix of p.
func (p Path) HasPrefix(q Path) bool {
	return q.length <= p.length && p.CommonPrefixLen(q) == q.length
}

func (p Path) Equal(q Path) bool {
	return p.length == q.length && p.CommonPrefixLen(q) == p.length
}

// Slice returns nibbles [start, end) sharing the backing array.
func (p Path) Slice(start, end int) Path {
	if start < 0 || end > p.length || start > end {
		panic(fmt.Errorf("%w: slice [%d:%d], length %d", ErrOutOfBounds, start, end, p.length))
	}

	if start == end {
		return Path{}
	}

	return Path{
		data:   p.data,
		offset: p.offset + start,
		length: end - start,
	}
}

// SplitAt returns nibbles [0, n) and [n, Len).
func (p Path) SplitAt(n int) (Path, Path) {
	return p.Slice(0, n), p.Slice(n, p.length)
}

// Append returns a new path with a nibble added at the end.
func (p Path) Append(nib byte) Path {
	if nib > nibbleMask {
		panic(fmt.Errorf("%w: nibble value %d", ErrOutOfBounds, nib))
	}

	data := make([]byte, (p.length+2)/2)
	pos := p.copyTo(data, 0)
	putNibble(data, pos, nib)

	return Path{data: data, length: p.length + 1}
}

// Clone returns a copy that shares no memory with p.
func (p Path) Clone() Path {
	return Concat(p)
}

// Bytes packs the path back into bytes. For an odd length the last byte is
// padded with a zero nibble and ok is false.
func (p Path) Bytes() (b []byte, ok bool) {
	b = make([]byte, (p.length+1)/2)
	p.copyTo(b, 0)

	return b, p.length&1 == 0
}

// String returns the path as hex digits, one per nibble.
func (p Path) String() string {
	var b strings.Builder

	b.Grow(p.length)

	for i := 0; i < p.length; i++ {
		b.WriteByte(hexDigits[p.at(i)])
	}

	return b.String()
}

// copyTo writes p into dst starting at nibble position pos and returns the
// position right after the last written nibble.
func (p Path) copyTo(dst []byte, pos int) int {
	if pos&1 == 0 && p.offset&1 == 0 {
		// aligned - copy whole bytes
		var (
			full = p.length >> 1
			src  = p.data[p.offset>>1:]
		)

		copy(dst[pos>>1:], src[:full])

		pos += full * 2
		if p.length&1 != 0 {
			putNibble(dst, pos, src[full]>>nibbleWidth)
			pos++
		}

		return pos
	}

	for i := 0; i < p.length; i++ {
		putNibble(dst, pos, p.at(i))
		pos++
	}

	return pos
}

// putNibble sets a nibble at position pos of a zero-initialized buffer.
func putNibble(dst []byte, pos int, nib byte) {
	if pos&1 == 0 {
		dst[pos>>1] |= nib << nibbleWidth
	} else {
		dst[pos>>1] |= nib & nibbleMask
	}
}
