package main

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"64x64", 64, 64, false},
		{"128X32", 128, 32, false},
		{"64", 0, 0, true},
		{"ax64", 0, 0, true},
		{"64xb", 0, 0, true},
		{"0x64", 0, 0, true},
		{"-1x64", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): %v", tt.in, err)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func TestEffectiveVersionExplicit(t *testing.T) {
	if got := effectiveVersion("1.2.3"); got != "1.2.3" {
		t.Errorf("effectiveVersion = %q, want 1.2.3", got)
	}
}

func TestEffectiveVersionFallback(t *testing.T) {
	if got := effectiveVersion(""); got == "" {
		t.Error("effectiveVersion should never be empty")
	}
}
