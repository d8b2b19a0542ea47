package utils_test

import (
	"testing"

	"fioparser/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Bool", true, true},
		{"One", "1", true},
		{"TrueUpper", "TRUE", true},
		{"Yes", "yes", true},
		{"Zero", "0", false},
		{"Empty", "", false},
		{"IntOne", 1, true},
		{"Nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToBool(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "Иванов Петр", utils.CollapseSpace("  Иванов \t  Петр \n"))
	assert.Equal(t, "Петр", utils.Norm("  Петр "))
	assert.Equal(t, 4, utils.RuneLen(" Петр "))
}
