package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "170,000 đ", FormatMoney(170000))
	assert.Equal(t, "0 đ", FormatMoney(0))
	assert.Equal(t, "1,234,567 đ", FormatMoney(1234567))
	assert.Equal(t, "-30,000 đ", FormatMoney(-30000))
	assert.Equal(t, "999 đ", FormatMoney(999))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "10,000,000", FormatNumber(10000000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "92.5%", FormatPercent(92.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "31/08/2026 14:05", FormatDate(ts))
	assert.Equal(t, "-", FormatDate(time.Time{}))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "vừa xong", RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "5 phút trước", RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 giờ trước", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 ngày trước", RelativeTime(now.Add(-48*time.Hour), now))
}
