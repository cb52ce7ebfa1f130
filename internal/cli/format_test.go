package cli

import (
	"testing"
	"time"
)

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		ml   int
		want string
	}{
		{0, "0ml"},
		{750, "750ml"},
		{1000, "1L"},
		{1500, "1.5L"},
		{62500, "62.5L"},
	}
	for _, c := range cases {
		if got := FormatVolume(c.ml); got != c.want {
			t.Fatalf("FormatVolume(%d) = %q, want %q", c.ml, got, c.want)
		}
	}
}

func TestFormatInterval(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "off"},
		{15 * time.Minute, "15m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "90m"},
		{2 * time.Hour, "2h"},
	}
	for _, c := range cases {
		if got := FormatInterval(c.d); got != c.want {
			t.Fatalf("FormatInterval(%s) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q, want 1,234,567", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber = %q, want -1,000", got)
	}
}
