package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid input", "Mathematics", ""},
		{"empty string", "", "Title is required."},
		{"whitespace only", "   ", "Title is required."},
		{"exceeds max length", "abcdefghijk", "Title cannot exceed 10 characters."},
		{"exactly max length", "abcdefghij", ""},
		{"rune count not byte count", "गणितशास्त्", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Required("Title", 10)(tt.value))
		})
	}
}

func TestRequiredRange(t *testing.T) {
	t.Parallel()

	v := RequiredRange("Mobile number", 8, 15)
	assert.Empty(t, v("9876543210"))
	assert.Equal(t, "Mobile number is required.", v(""))
	assert.Equal(t, "Mobile number must be between 8 and 15 characters.", v("12345"))
	assert.Equal(t, "Mobile number must be between 8 and 15 characters.", v("1234567890123456"))
	assert.Empty(t, v("12345678"))
	assert.Empty(t, v("123456789012345"))
}

func TestOptional(t *testing.T) {
	t.Parallel()

	v := Optional("Description", 5)
	assert.Empty(t, v(""))
	assert.Empty(t, v("   "))
	assert.Empty(t, v("short"))
	assert.Equal(t, "Description cannot exceed 5 characters.", v("toolong"))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"valid address", "asha@adhyan.local", ""},
		{"empty is left to Required", "", ""},
		{"missing at sign", "asha.adhyan.local", "Enter a valid email."},
		{"at sign first", "@adhyan.local", "Enter a valid email."},
		{"at sign last", "asha@", "Enter a valid email."},
		{"no dot after at", "asha@adhyan", "Enter a valid email."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Email("Email")(tt.value))
		})
	}
}

func TestIntRange(t *testing.T) {
	t.Parallel()

	v := IntRange("Order", 0, 100)
	assert.Empty(t, v("50"))
	assert.Empty(t, v("0"))
	assert.Empty(t, v("100"))
	assert.Equal(t, "Order must be between 0 and 100.", v("-1"))
	assert.Equal(t, "Order must be between 0 and 100.", v("101"))
	assert.Equal(t, "Order must be a number.", v("abc"))
	assert.Equal(t, "Order must be a number.", v(""))
}

func TestFloatRange(t *testing.T) {
	t.Parallel()

	v := FloatRange("Commission", 0, 100)
	assert.Empty(t, v("12.5"))
	assert.Empty(t, v(" 100 "))
	assert.Equal(t, "Commission must be between 0 and 100.", v("100.01"))
	assert.Equal(t, "Commission must be between 0 and 100.", v("-0.5"))
	assert.Equal(t, "Commission must be a number.", v("twelve"))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	v := OneOf("Duration", []string{"1_MONTH", "3_MONTHS", "6_MONTHS", "1_YEAR"})
	assert.Empty(t, v("1_MONTH"))
	assert.Empty(t, v("1_month"))
	assert.Empty(t, v("  3_MONTHS  "))
	assert.Equal(t, "Duration must be one of: 1_MONTH, 3_MONTHS, 6_MONTHS, 1_YEAR", v("2_WEEKS"))
	assert.Equal(t, "Duration must be one of: 1_MONTH, 3_MONTHS, 6_MONTHS, 1_YEAR", v(""))
}

func TestFieldValidator_AccumulatesPerField(t *testing.T) {
	t.Parallel()

	errs := New().
		Validate("name", "", Required("Name", 150)).
		Validate("amount", "abc", FloatRange("Amount", 0, 100000)).
		Validate("description", "fine", Optional("Description", 1000)).
		Errors()

	assert.Len(t, errs, 2)
	assert.Equal(t, "Name is required.", errs["name"])
	assert.Equal(t, "Amount must be a number.", errs["amount"])
}

func TestFieldValidator_StopsAtFirstErrorPerField(t *testing.T) {
	t.Parallel()

	errs := New().
		Validate("email", "", Required("Email", 255), Email("Email")).
		Errors()

	assert.Equal(t, "Email is required.", errs["email"])
}

func TestFieldValidator_SecondValidatorTriggers(t *testing.T) {
	t.Parallel()

	errs := New().
		Validate("email", "not-an-address", Required("Email", 255), Email("Email")).
		Errors()

	assert.Equal(t, "Enter a valid email.", errs["email"])
}

func TestFieldValidator_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, New().Errors())
}
