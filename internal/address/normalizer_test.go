package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "plain address untouched", raw: "Ленина 10", want: "Ленина 10"},
		{name: "city marker stripped", raw: "г. Ярославль, Ленина 10", want: "Ярославль Ленина 10"},
		{name: "street and house markers stripped", raw: "ул. Ленина, д. 10", want: "Ленина 10"},
		{name: "uppercase markers stripped", raw: "Г. Ярославль, УЛ. Свободы 5", want: "Ярославль Свободы 5"},
		{name: "commas collapse to spaces", raw: "Ярославль,,Ленина,10", want: "Ярославль Ленина 10"},
		{name: "whitespace runs collapse", raw: "  Ленина   10  ", want: "Ленина 10"},
		{name: "punctuation only", raw: " , ;, ", want: ""},
		{name: "marker without dot kept", raw: "город Ярославль", want: "город Ярославль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}
