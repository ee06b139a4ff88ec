package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanRoot(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		want string
	}{
		{name: "single directory", dirs: []string{"src"}, want: "src"},
		{name: "multiple directories", dirs: []string{"src", "vendor", "assets"}, want: "src, vendor, assets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanRoot(tt.dirs))
		})
	}
}
