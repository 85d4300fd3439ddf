package mediascan

import "testing"

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0.00 B"},
		{"just below 1 KB", 1023, "1023.00 B"},
		{"exactly 1 KB", 1024, "1.00 KB"},
		{"1.5 KB", 1536, "1.50 KB"},
		{"1 MB", 1048576, "1.00 MB"},
		{"1 GB", 1073741824, "1.00 GB"},
		{"capped at GB", 1 << 40, "1024.00 GB"},
		{"3 KB", 3072, "3.00 KB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HumanSize(tt.bytes)
			if got != tt.want {
				t.Errorf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
