package model

import "testing"

func TestIntervalSeconds(t *testing.T) {
	tests := []struct {
		interval Interval
		seconds  int64
	}{
		{"1", 60},
		{"3", 180},
		{"5", 300},
		{"15", 900},
		{"30", 1800},
		{"60", 3600},
		{"120", 7200},
		{"240", 14400},
		{"360", 21600},
		{"720", 43200},
		{"D", 86400},
		{"W", 604800},
		{"M", 2592000},
	}
	for _, tt := range tests {
		t.Run(string(tt.interval), func(t *testing.T) {
			s, ok := tt.interval.Seconds()
			if !ok {
				t.Fatalf("Seconds() reported interval %q as unknown", tt.interval)
			}
			if s != tt.seconds {
				t.Errorf("Seconds() = %d, want %d", s, tt.seconds)
			}
		})
	}
}

func TestIntervalUnknown(t *testing.T) {
	for _, iv := range []Interval{"", "2", "h", "1h", "d"} {
		if iv.Valid() {
			t.Errorf("interval %q should not be valid", iv)
		}
		if _, ok := iv.Seconds(); ok {
			t.Errorf("Seconds() should report interval %q as unknown", iv)
		}
	}
	if !DefaultInterval.Valid() {
		t.Error("DefaultInterval must be a known interval")
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2024-12-01 00:00:00")
	if err != nil {
		t.Fatalf("ParseTime returned error: %v", err)
	}
	if got.Unix() != 1733011200 {
		t.Errorf("ParseTime = %d, want 1733011200", got.Unix())
	}

	if _, err := ParseTime("2024-12-01 25:00:00"); err == nil {
		t.Error("expected error for invalid hour")
	}
	if _, err := ParseTime("2024/12/01"); err == nil {
		t.Error("expected error for wrong layout")
	}
}
