package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzTo_Int64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-100))
	f.Fuzz(func(t *testing.T, i int64) {
		p := To(i)
		assert.Equal(t, p, &i)
	})
}

func FuzzTo_String(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("wash")
	f.Fuzz(func(t *testing.T, s string) {
		p := To(s)
		assert.Equal(t, p, &s)
	})
}

func TestDeref(t *testing.T) {
	assert.Equal(t, int64(42), Deref(To(int64(42))))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, int64(0), Deref[int64](nil))
}
