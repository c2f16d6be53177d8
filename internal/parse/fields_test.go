package parse

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{name: "Single digit is padded", raw: "7", expected: "07"},
		{name: "Already padded", raw: "07", expected: "07"},
		{name: "Upper bound", raw: "99", expected: "99"},
		{name: "Lower bound", raw: "1", expected: "01"},
		{name: "Surrounding spaces", raw: " 12 ", expected: "12"},
		{name: "Extra leading zero", raw: "007", expected: "07"},
		{name: "Zero", raw: "0", expectErr: true},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Too large", raw: "100", expectErr: true},
		{name: "Letters", raw: "ab", expectErr: true},
		{name: "Negative", raw: "-1", expectErr: true},
		{name: "Non-ASCII digits", raw: "٣", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Identifier(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestIdentifier_AllValidArePadded(t *testing.T) {
	for n := 1; n <= 99; n++ {
		id, err := Identifier(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Len(t, id, 2)
		assert.Equal(t, fmt.Sprintf("%02d", n), id)
	}
}

func TestPadIdentifier(t *testing.T) {
	assert.Equal(t, "00", PadIdentifier(""))
	assert.Equal(t, "05", PadIdentifier("5"))
	assert.Equal(t, "123", PadIdentifier("123"))
}

func TestIsYear(t *testing.T) {
	assert.True(t, IsYear("2024"))
	assert.True(t, IsYear("0000"))
	for _, bad := range []string{"123", "12345", "abcd", "", "20 4", "-202"} {
		assert.False(t, IsYear(bad), bad)
	}
}

func TestDate(t *testing.T) {
	want := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	got, err := Date("09/03/2026")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = Date("2026-03-09")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = Date("03/31/2026")
	assert.Error(t, err)
	_, err = Date("")
	assert.Error(t, err)

	assert.Equal(t, "09/03/2026", FormatDate(want))
}

func TestOptionalDate(t *testing.T) {
	got, err := OptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalDate("2026-01-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "31/01/2026", FormatDate(*got))

	_, err = OptionalDate("yesterday")
	assert.Error(t, err)
}
