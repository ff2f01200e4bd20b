package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeServices(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want ServiceList
	}{
		{
			name: "обрезает пробелы и отбрасывает пустые элементы",
			in:   []string{"  ", "wash", "", "iron"},
			want: ServiceList{"wash", "iron"},
		},
		{
			name: "сохраняет порядок и дубликаты",
			in:   []string{"iron", "wash", "iron"},
			want: ServiceList{"iron", "wash", "iron"},
		},
		{
			name: "пустой вход",
			in:   nil,
			want: ServiceList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeServices(tt.in))
		})
	}
}

func TestServiceList_Value(t *testing.T) {
	v, err := ServiceList{"wash", "iron"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["wash","iron"]`, string(v.([]byte)))

	v, err = ServiceList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestServiceList_Scan(t *testing.T) {
	var s ServiceList
	require.NoError(t, s.Scan([]byte(`["wash","iron"]`)))
	assert.Equal(t, ServiceList{"wash", "iron"}, s)

	var empty ServiceList
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, ServiceList{}, empty)

	var fromString ServiceList
	require.NoError(t, fromString.Scan(`["dry"]`))
	assert.Equal(t, ServiceList{"dry"}, fromString)

	var bad ServiceList
	assert.Error(t, bad.Scan(42))
}
