package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "200 L", FormatAmount(decimal.NewFromInt(200), "L"))
	assert.Equal(t, "12.5 L", FormatAmount(decimal.RequireFromString("12.50"), "L"))
	assert.Equal(t, "0 L", FormatAmount(decimal.Zero, "L"))
	assert.Equal(t, "7", FormatAmount(decimal.NewFromInt(7), ""))
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount(" 120 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(120)))

	amount, err = ParseAmount("0.75")
	require.NoError(t, err)
	assert.Equal(t, "0.75", amount.String())

	for _, raw := range []string{"", "   ", "abc", "-1", "1,5"} {
		_, err := ParseAmount(raw)
		assert.Error(t, err, "input %q", raw)
	}
}
