package ui

import "testing"

func TestAlignStatusLine(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{name: "fits", left: "left", right: "right", width: 12, want: "left   right"},
		{name: "no right", left: "left", right: "", width: 12, want: "left"},
		{name: "zero width", left: "left", right: "right", width: 0, want: "left"},
		{name: "too narrow", left: "left", right: "right", width: 9, want: "left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alignStatusLine(tt.left, tt.right, tt.width); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestPriceLabel(t *testing.T) {
	if got := priceLabel(140); got != "~$140 value" {
		t.Fatalf("got %q", got)
	}
}
