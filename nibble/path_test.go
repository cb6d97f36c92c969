package nibble

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Bytes  []byte
		ExpStr string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0x1a}, "1a"},
		{[]byte("te"), "7465"},
		{[]byte{0xff, 0x0f, 0xf0}, "ff0ff0"},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v", tcase.Bytes)
		)

		t.Run(name, func(t *testing.T) {
			p := FromBytes(tcase.Bytes)

			assert.Equal(t, len(tcase.Bytes)*2, p.Len())
			assert.Equal(t, tcase.ExpStr, p.String())
			assert.Equal(t, len(tcase.Bytes) == 0, p.IsEmpty())
		})
	}
}

func TestFromNibbles(t *testing.T) {
	t.Parallel()

	p := FromNibbles(0x7, 0x4, 0x6)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "746", p.String())
	assert.Equal(t, byte(0x6), p.At(2))

	assert.PanicsWithError(t, "nibble index out of bounds: nibble value 16 at 1", func() {
		FromNibbles(0x1, 0x10)
	})
}

func TestAt_OutOfBounds(t *testing.T) {
	t.Parallel()

	p := FromBytes([]byte{0xab})

	assert.Equal(t, byte(0xa), p.At(0))
	assert.Equal(t, byte(0xb), p.At(1))

	for _, idx := range []int{-1, 2, 100} {
		idx := idx

		assert.Panics(t, func() { p.At(idx) }, idx)
	}

	defer func() {
		err, ok := recover().(error)

		require.True(t, ok)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}()

	p.Slice(1, 3)
}

func TestCommonPrefixLen(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		A, B   Path
		ExpLen int
	}{
		{Path{}, Path{}, 0},
		{FromBytes([]byte("test")), Path{}, 0},
		{FromBytes([]byte("test")), FromBytes([]byte("test")), 8},
		{FromBytes([]byte("test")), FromBytes([]byte("team")), 4},
		{FromBytes([]byte("test")), FromBytes([]byte("testing")), 8},
		{FromBytes([]byte("toast")), FromBytes([]byte("test")), 3},
		{FromBytes([]byte{0x12, 0x34}), FromBytes([]byte{0x12, 0x3f}), 3},
		{FromBytes([]byte{0x12, 0x34}), FromBytes([]byte{0x22, 0x34}), 0},
		{FromBytes([]byte{0x12, 0x34}).Slice(1, 4), FromNibbles(0x2, 0x3, 0x4), 3},
		{FromBytes([]byte{0x12, 0x34}).Slice(1, 4), FromNibbles(0x2, 0x3, 0x5), 2},
		{FromBytes([]byte{0x12, 0x34}).Slice(1, 4), FromBytes([]byte{0x56, 0x23}).Slice(2, 3), 1},
		{FromBytes([]byte{0x12, 0x34}).Slice(0, 3), FromBytes([]byte{0x12, 0x34}), 3},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v,%v", tcase.A, tcase.B)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.ExpLen, tcase.A.CommonPrefixLen(tcase.B))
			assert.Equal(t, tcase.ExpLen, tcase.B.CommonPrefixLen(tcase.A))
		})
	}
}

func TestSlice_SplitAt(t *testing.T) {
	t.Parallel()

	p := FromBytes([]byte("team")) // 74 65 61 6d

	assert.Equal(t, "7465616d", p.String())
	assert.Equal(t, "4656", p.Slice(1, 5).String())
	assert.Equal(t, "", p.Slice(3, 3).String())
	assert.Equal(t, "56", p.Slice(1, 5).Slice(2, 4).String())

	head, tail := p.SplitAt(3)

	assert.Equal(t, "746", head.String())
	assert.Equal(t, "5616d", tail.String())
	assert.True(t, Concat(head, tail).Equal(p))
}

func TestConcat_Append(t *testing.T) {
	t.Parallel()

	var (
		a = FromBytes([]byte{0xab, 0xcd}).Slice(1, 3) // "bc"
		b = FromNibbles(0x1)
		c = FromBytes([]byte{0xef}).Slice(1, 2) // "f"
	)

	joined := Concat(a, b, c)

	assert.Equal(t, "bc1f", joined.String())
	assert.Equal(t, "bc1f0", joined.Append(0).String())
	assert.Equal(t, "", Concat().String())
	assert.Equal(t, "bc1f", Concat(Path{}, joined, Path{}).String())

	// the source is left untouched
	assert.Equal(t, "bc", a.String())
}

func TestClone(t *testing.T) {
	t.Parallel()

	var (
		data = []byte{0x12, 0x34}
		p    = FromBytes(data).Slice(1, 4)
		c    = p.Clone()
	)

	data[1] = 0xff

	assert.Equal(t, "2ff", p.String())
	assert.Equal(t, "234", c.String())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Path     Path
		ExpBytes []byte
		ExpOK    bool
	}{
		{Path{}, []byte{}, true},
		{FromBytes([]byte("ab")), []byte("ab"), true},
		{FromBytes([]byte{0x12, 0x34}).Slice(1, 3), []byte{0x23}, true},
		{FromBytes([]byte{0x12, 0x34}).Slice(1, 4), []byte{0x23, 0x40}, false},
		{FromNibbles(0xa), []byte{0xa0}, false},
	} {
		var (
			tcase = tcase
			name  = tcase.Path.String()
		)

		t.Run(name, func(t *testing.T) {
			b, ok := tcase.Path.Bytes()

			assert.Equal(t, tcase.ExpBytes, b)
			assert.Equal(t, tcase.ExpOK, ok)
		})
	}
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	p := FromBytes([]byte("testing"))

	assert.True(t, p.HasPrefix(Path{}))
	assert.True(t, p.HasPrefix(FromBytes([]byte("test"))))
	assert.True(t, p.HasPrefix(FromBytes([]byte("test")).Slice(0, 7)))
	assert.False(t, p.HasPrefix(FromBytes([]byte("team"))))
	assert.False(t, p.HasPrefix(FromBytes([]byte("testing!"))))
}

func TestCommonPrefixLen_FakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 10_000
		seed  = 1234567890
	)

	fake := gofakeit.New(seed)

	for i := 0; i < total; i++ {
		var (
			a     = []byte(fake.Word() + fake.Word())
			b     = []byte(fake.Word() + fake.Word())
			skipA = fake.Number(0, len(a)*2)
			skipB = fake.Number(0, len(b)*2)
			pa    = FromBytes(a).Slice(skipA, len(a)*2)
			pb    = FromBytes(b).Slice(skipB, len(b)*2)
			exp   = 0
		)

		for exp < pa.Len() && exp < pb.Len() && pa.At(exp) == pb.At(exp) {
			exp++
		}

		require.Equal(t, exp, pa.CommonPrefixLen(pb), "%v vs %v", pa, pb)

		// byte-aligned paths agree with bytes.HasPrefix
		if skipA == 0 && skipB == 0 {
			require.Equal(t, bytes.HasPrefix(a, b), pa.HasPrefix(pb))
		}
	}
}
