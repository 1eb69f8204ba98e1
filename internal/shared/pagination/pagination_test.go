package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg := Config{DefaultLimit: 10, MaxLimit: 100}

	tests := []struct {
		name    string
		page    string
		limit   string
		want    Params
		wantErr bool
	}{
		{name: "defaults", want: Params{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", want: Params{Page: 3, Limit: 25}},
		{name: "clamped", page: "1", limit: "5000", want: Params{Page: 1, Limit: 100}},
		{name: "zero page", page: "0", wantErr: true},
		{name: "negative limit", limit: "-1", wantErr: true},
		{name: "not a number", page: "abc", wantErr: true},
		{name: "fraction", limit: "2.5", wantErr: true},
		{name: "offset overflows", page: "9223372036854775807", limit: "10", wantErr: true},
		{name: "offset overflows after clamp", page: "92233720368547760", limit: "5000", wantErr: true},
		{name: "large page fits after clamp", page: "92233720368547759", limit: "5000", want: Params{Page: 92233720368547759, Limit: 100}},
		{name: "wrapping offset", page: "4611686018427387905", limit: "4", wantErr: true},
		{name: "largest page for limit", page: "922337203685477581", limit: "10", want: Params{Page: 922337203685477581, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.page, tt.limit, cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())

	p, err := Parse("922337203685477581", "10", Config{DefaultLimit: 10, MaxLimit: 100})
	require.NoError(t, err)
	assert.Positive(t, p.Offset())
}
