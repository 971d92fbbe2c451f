package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apt-report/internal/report/service"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"tabs and newlines", "\t \n ", ""},
		{"lowercases", "Статус", "статус"},
		{"trims", "  ціна за метр  ", "ціна за метр"},
		{"collapses runs", "ціна   за \t метр", "ціна за метр"},
		{"nbsp counts as space", "ціна за метр", "ціна за метр"},
		{"mixed case latin", "  Building  A ", "building a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Normalize(tt.in))
		})
	}
}
