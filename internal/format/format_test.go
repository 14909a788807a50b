package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes_small", 512, "512 B"},
		{"bytes_max", 1023, "1023 B"},
		{"one_kb", 1024, "1.0 KB"},
		{"one_and_half_kb", 1536, "1.5 KB"},
		{"just_under_mb", 1024*1024 - 1, "1024.0 KB"},
		{"one_mb", 1024 * 1024, "1.0 MB"},
		{"twenty_mb", 20 * 1024 * 1024, "20.0 MB"},
		{"one_gb", 1024 * 1024 * 1024, "1.0 GB"},
		{"one_and_half_gb", int64(1.5 * 1024 * 1024 * 1024), "1.5 GB"},
		{"one_tb", 1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{"two_pb", 2 * 1024 * 1024 * 1024 * 1024 * 1024, "2.0 PB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatBytes(tc.input))
		})
	}
}

func TestFormatGiB(t *testing.T) {
	assert.Equal(t, "60.0GB", FormatGiB(60<<30))
	assert.Equal(t, "50.5GB", FormatGiB(50<<30+512<<20))
	assert.Equal(t, "0.0GB", FormatGiB(0))
}

func TestFormatLatency(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "0.00 ms"},
		{"small_ms", 2.34, "2.34 ms"},
		{"just_under_1s", 999.99, "999.99 ms"},
		{"exactly_1s", 1000, "1.00 s"},
		{"one_and_half_s", 1500, "1.50 s"},
		{"negative", -1, NA},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatLatency(tc.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0"},
		{"small", 42, "42"},
		{"three_digits", 999, "999"},
		{"four_digits", 1000, "1,000"},
		{"six_digits", 123456, "123,456"},
		{"seven_digits", 1234567, "1,234,567"},
		{"nine_digits", 200000001, "200,000,001"},
		{"negative", -12345, "-12,345"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "34.5%", FormatPercent(34.5))
	assert.Equal(t, "67.9%", FormatPercent(67.89))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1,204.3", FormatFloat(1204.3))
	assert.Equal(t, "-1,000,000.0", FormatFloat(-1000000))
	assert.Equal(t, "0.5", FormatFloat(0.5))
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "2024-03-01 10:00:00", FormatMillis(1709287200000))
	assert.Equal(t, NA, FormatMillis(0))
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2024-03-01 10:00:00", FormatISO("2024-03-01T10:00:00.000Z"))
	assert.Equal(t, "2024-03-01 02:00:00", FormatISO("2024-03-01T10:00:00+08:00"))
	assert.Equal(t, "next tuesday", FormatISO("next tuesday"))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, NA, OrNA(""))
	assert.Equal(t, "x", OrNA("x"))
}
