package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToMB(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "0 MB"},
		{size: 1048576, want: "1 MB"},
		{size: 1572864, want: "1.5 MB"},
		{size: 5 * 1048576, want: "5 MB"},
		{size: 123456789, want: "117.74 MB"},
		{size: 1024, want: "0 MB"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BytesToMB(tc.size), "size %d", tc.size)
	}
}

func TestShortIDs(t *testing.T) {
	assert.Equal(t, "0123456789ab", ShortImageID("sha256:0123456789abcdef"))
	assert.Equal(t, "abc", ShortImageID("abc"))
	assert.Equal(t, "0123456789ab", ShortID("0123456789abcdef0123"))
	assert.Equal(t, "", ShortID(""))
}
