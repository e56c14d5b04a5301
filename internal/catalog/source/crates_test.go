package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCrateList(t *testing.T) {
	tests := []struct {
		raw    string
		want   []string
		wantOK bool
	}{
		{"", []string{}, true},
		{"   ", []string{}, true},
		{"[]", []string{}, true},
		{"['Chroma Case']", []string{"Chroma Case"}, true},
		{`['Chroma Case', "Operation Bravo Case"]`, []string{"Chroma Case", "Operation Bravo Case"}, true},
		{`["Man-o'-war Case"]`, []string{"Man-o'-war Case"}, true},
		{`['It\'s a Case']`, []string{"It's a Case"}, true},
		{"['A',]", []string{"A"}, true},
		{"Chroma Case", []string{}, false},
		{"['A'", []string{}, false},
		{"['A' 'B']", []string{}, false},
		{"[,'A']", []string{}, false},
		{"['A'] trailing", []string{}, false},
		{"[A]", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseCrateList(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
