package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func utcFormatter() *Formatter {
	return &Formatter{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2023, time.August, 14, 9, 0, 0, 0, time.UTC) },
	}
}

func TestFormatNamedFormats(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	d := Of(time.Date(2020, time.May, 1, 14, 30, 0, 0, time.UTC))

	cases := map[string]string{
		"shortdate":                 "5/1/2020",
		"shorttime":                 "2:30 PM",
		"shortdateshorttime":        "5/1/2020, 2:30 PM",
		"longdate":                  "Friday, May 1, 2020",
		"monthAndYear":              "May 2020",
		"yyyy-MM-dd'T'HH:mm:ss.SSS": "2020-05-01T14:30:00.000",
		"EEE dd MMM yy":             "Fri 01 May 20",
		"''h''":                     "'2'",
	}
	for layout, want := range cases {
		require.Equal(t, want, f.Format(d, layout), layout)
	}
}

func TestFormatMidnightAndNonValid(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	midnight := Of(time.Date(2020, time.May, 1, 0, 5, 0, 0, time.UTC))
	require.Equal(t, "12:05 AM", f.Format(midnight, "shorttime"))
	require.Equal(t, "00:05", f.Format(midnight, "HH:mm"))
	require.Empty(t, f.Format(Null(), "shortdate"))
	require.Empty(t, f.Format(Unparsed(), "shortdate"))
	require.Empty(t, f.Format(Invalid(), "shortdate"))
}

func TestFormatOffset(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("CEST", 2*3600)
	f := &Formatter{Location: zone}
	d := Of(time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC))
	require.Equal(t, "2020-05-01T10:00:00+02:00", f.Format(d, "yyyy-MM-dd'T'HH:mm:ssxxx"))
}

func TestParseDates(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	want := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{"5/1/2020", "05/01/2020", " 5/1/2020 "} {
		got := f.Parse(text, "shortdate")
		require.True(t, got.IsValid(), text)
		require.True(t, want.Equal(got.Time()), text)
	}

	got := f.Parse("may 1, 2020", "MMMM d, yyyy")
	require.True(t, got.IsValid())
	require.True(t, want.Equal(got.Time()))

	got = f.Parse("Friday, May 1, 2020", "longdate")
	require.True(t, got.IsValid())
	require.True(t, want.Equal(got.Time()))
}

func TestParseTimeDefaultsToFirstOfCurrentYear(t *testing.T) {
	t.Parallel()

	f := utcFormatter()

	got := f.Parse("2:30 PM", "shorttime")
	require.True(t, got.IsValid())
	require.Equal(t, time.Date(2023, time.January, 1, 14, 30, 0, 0, time.UTC), got.Time())

	got = f.Parse("12:15 am", "shorttime")
	require.True(t, got.IsValid())
	require.Equal(t, 0, got.Time().Hour())
	require.Equal(t, 15, got.Time().Minute())

	got = f.Parse("14:30", "HH:mm")
	require.True(t, got.IsValid())
	require.Equal(t, 14, got.Time().Hour())
}

func TestParseRejectsMalformedText(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	cases := []struct {
		text   string
		layout string
	}{
		{"hello", "shortdate"},
		{"2/30/2020", "shortdate"},
		{"13/1/2020", "shortdate"},
		{"25:00", "HH:mm"},
		{"13:00 PM", "shorttime"},
		{"", "shortdate"},
		{"5/1/2020", "'unterminated"},
	}
	for _, tc := range cases {
		got := f.Parse(tc.text, tc.layout)
		require.Equal(t, KindUnparsed, got.Kind(), tc.text)
	}
}

func TestParseOffsetConvertsToLocation(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	got := f.Parse("2020-05-01T10:00:00+02:00", "yyyy-MM-dd'T'HH:mm:ssxxx")
	require.True(t, got.IsValid())
	require.Equal(t, time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC), got.Time())
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	f := utcFormatter()
	d := Of(time.Date(2021, time.November, 30, 23, 59, 0, 0, time.UTC))
	for _, layout := range []string{"shortdateshorttime", "yyyy-MM-dd HH:mm", "EEEE, MMMM d, yyyy, h:mm a"} {
		parsed := f.Parse(f.Format(d, layout), layout)
		require.True(t, d.SameInstant(parsed), layout)
	}
}

func TestValidatePattern(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidatePattern("shortDate"))
	require.NoError(t, ValidatePattern("yyyy-MM-dd"))
	require.Error(t, ValidatePattern("'oops"))
	require.Error(t, ValidatePattern("---"))
	require.True(t, IsNamedFormat("ShortTime"))
	require.Equal(t, "M/d/yyyy", ResolvePattern("shortdate"))
	require.Equal(t, "HH:mm", ResolvePattern("HH:mm"))
}

func TestNamesAreCopies(t *testing.T) {
	t.Parallel()

	f := NewFormatter()
	months := f.MonthNames()
	months[0] = "changed"
	require.Equal(t, "January", f.MonthNames()[0])
	require.Len(t, f.DayNames(), 7)
}
