package main

import "testing"

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		factor float64
		wantW  int
		wantH  int
	}{
		{"unscaled", 1280, 720, 1, 1280, 720},
		{"hidpi", 1280, 720, 2, 2560, 1440},
		{"fractional_rounds_up", 1280, 720, 1.25, 1600, 900},
		{"fractional_ceil", 853, 479, 1.5, 1280, 719},
		{"zero_factor_is_unscaled", 854, 480, 0, 854, 480},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := physicalSize(tc.w, tc.h, tc.factor)
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("physicalSize(%v, %v, %v) = %dx%d, want %dx%d", tc.w, tc.h, tc.factor, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestInitialWindowIsPhysical(t *testing.T) {
	window := initialWindow(GameConfig{Width: 854, Height: 480, DeviceScale: 2})
	if window.Width != 1708 || window.Height != 960 {
		t.Fatalf("expected 1708x960 physical window, got %dx%d", window.Width, window.Height)
	}
}
