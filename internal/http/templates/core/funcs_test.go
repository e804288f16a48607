package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumberTemplate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", formatNumberTemplate(0))
	assert.Equal(t, "999", formatNumberTemplate(999))
	assert.Equal(t, "1,000", formatNumberTemplate(1000))
	assert.Equal(t, "1,234,567", formatNumberTemplate(1234567))
	assert.Equal(t, "-12,345", formatNumberTemplate(-12345))
	assert.Equal(t, "42", formatNumberTemplate(uint16(42)))
	assert.Equal(t, "nope", formatNumberTemplate("nope"))
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₹499", FormatAmount(499))
	assert.Equal(t, "₹1,299", FormatAmount(1299))
	assert.Equal(t, "₹1,299.50", FormatAmount(1299.5))
	assert.Equal(t, "₹0", FormatAmount(0))
	assert.Equal(t, "-₹250", FormatAmount(-250))
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "long tex…", TruncateText("long text here", 9))
	assert.Equal(t, "l", TruncateText("long", 1))
	assert.Equal(t, "whatever", TruncateText("whatever", 0))
	// rune-safe truncation
	assert.Equal(t, "गण…", TruncateText("गणितशास्त्र", 3))
}

func TestBoolVal(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	assert.True(t, BoolVal(true))
	assert.False(t, BoolVal(false))
	assert.True(t, BoolVal(&yes))
	assert.False(t, BoolVal(&no))
	assert.False(t, BoolVal((*bool)(nil)))
	assert.False(t, BoolVal(nil))
	assert.False(t, BoolVal("true"))
}

func TestStatusBadge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "badge-success", statusBadge(true))
	assert.Equal(t, "badge-secondary", statusBadge(false))
}

func TestTimeTag(t *testing.T) {
	t.Parallel()
	fn := createTimeTagFunc()

	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	html := string(fn(ts))
	assert.Contains(t, html, `<time datetime="2025-06-01T10:30:00Z"`)

	assert.Empty(t, string(fn(nil)))
	assert.Empty(t, string(fn((*time.Time)(nil))))
	assert.Empty(t, string(fn(time.Time{})))
}
