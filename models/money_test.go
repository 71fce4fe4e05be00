package models

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"5.00", 500, false},
		{"5", 500, false},
		{"5.0", 500, false},
		{"5.5", 550, false},
		{"12.50", 1250, false},
		{" 3.00 ", 300, false},
		{"0.99", 99, false},
		{"", 0, true},
		{"abc", 0, true},
		{"5.xy", 0, true},
		{"-1.00", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDisplay(t *testing.T) {
	got, err := ParseDisplay("RM5.00")
	if err != nil || got != 500 {
		t.Errorf("ParseDisplay(RM5.00) = %d, %v; want 500, nil", got, err)
	}
	if _, err := ParseDisplay("5.00"); err == nil {
		t.Error("ParseDisplay without prefix should fail")
	}
	if _, err := ParseDisplay(""); err == nil {
		t.Error("ParseDisplay of empty string should fail")
	}
}

func TestMoneyDisplay(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{500, "RM5.00"},
		{550, "RM5.50"},
		{1250, "RM12.50"},
		{99, "RM0.99"},
		{0, "RM0.00"},
	}
	for _, tt := range tests {
		if got := tt.in.Display(); got != tt.want {
			t.Errorf("Money(%d).Display() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	for _, m := range []Money{0, 1, 99, 100, 500, 1250, 999999} {
		got, err := ParseDisplay(m.Display())
		if err != nil || got != m {
			t.Errorf("round trip of %d via %q gave %d, %v", m, m.Display(), got, err)
		}
	}
}
