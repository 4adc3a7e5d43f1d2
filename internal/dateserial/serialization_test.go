package dateserial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datebox/internal/datetime"
)

func TestFormatOfInfersShape(t *testing.T) {
	t.Parallel()

	cases := map[string]FormatTag{
		"2020-05-01":                FormatISODate,
		"2020-05-01T10:00:00":       FormatISODateTime,
		"2020-05-01T10:00:00.250":   FormatISODateTimeMillis,
		"2020-05-01T10:00:00Z":      FormatISODateTimeUTC,
		"2020-05-01T10:00:00.250Z":  FormatISODateTimeMillisUTC,
		"2020-05-01T10:00":          "yyyy-MM-ddTHH:mm",
		"20200501":                  "yyyyMMdd",
		"2020-05-01T10:00:00+02:00": "yyyy-MM-ddTHH:mm:ssxxx",
		"May 1, 2020":               FormatNone,
		"":                          FormatNone,
	}
	for input, want := range cases {
		require.Equal(t, want, FormatOf(input), input)
	}
}

func TestRoundTripAcrossFormats(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*3600)
	codec := New(loc)

	cases := []struct {
		tag  FormatTag
		date time.Time
	}{
		{FormatNumber, time.Date(2020, time.May, 1, 10, 15, 30, 125*int(time.Millisecond), loc)},
		{FormatISODate, time.Date(2020, time.May, 1, 0, 0, 0, 0, loc)},
		{FormatISODateTime, time.Date(2020, time.May, 1, 10, 15, 30, 0, loc)},
		{FormatISODateTimeMillis, time.Date(2020, time.May, 1, 10, 15, 30, 125*int(time.Millisecond), loc)},
		{FormatISODateTimeUTC, time.Date(2020, time.May, 1, 1, 0, 0, 0, loc)},
		{FormatNone, time.Date(1999, time.December, 31, 23, 59, 59, 0, loc)},
	}
	for _, tc := range cases {
		d := datetime.Of(tc.date)
		back := codec.DeserializeAs(codec.Serialize(d, tc.tag), tc.tag)
		require.True(t, d.SameInstant(back), string(tc.tag))
	}
}

func TestSerializeShapes(t *testing.T) {
	t.Parallel()

	codec := New(time.UTC)
	d := datetime.Of(time.Date(2020, time.May, 1, 10, 0, 0, 0, time.UTC))

	require.Equal(t, Number(1588327200000), codec.Serialize(d, FormatNumber))
	require.Equal(t, "2020-05-01", codec.Serialize(d, FormatISODate).Text())
	require.Equal(t, "2020-05-01T10:00:00", codec.Serialize(d, FormatISODateTime).Text())
	require.Equal(t, "2020-05-01T10:00:00Z", codec.Serialize(d, FormatISODateTimeUTC).Text())
	require.Equal(t, KindDate, codec.Serialize(d, FormatNone).Kind())
	require.True(t, codec.Serialize(datetime.Null(), FormatNumber).IsNull())
	require.True(t, codec.Serialize(datetime.Unparsed(), FormatISODate).IsNull())
}

func TestUTCSuffixConvertsZone(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*3600)
	codec := New(loc)
	d := datetime.Of(time.Date(2020, time.May, 1, 10, 0, 0, 0, loc))
	require.Equal(t, "2020-05-01T08:00:00Z", codec.Serialize(d, FormatISODateTimeUTC).Text())

	back := codec.Deserialize(String("2020-05-01T08:00:00Z"))
	require.True(t, d.SameInstant(back))
	require.Equal(t, loc, back.Time().Location())
}

func TestDeserializeValues(t *testing.T) {
	t.Parallel()

	codec := New(time.UTC)

	require.True(t, codec.Deserialize(Null()).IsNull())
	require.True(t, codec.Deserialize(String("")).IsNull())
	require.Equal(t, datetime.KindInvalid, codec.Deserialize(String("yesterday")).Kind())
	require.Equal(t, datetime.KindInvalid, codec.Deserialize(String("2020-02-30")).Kind())

	got := codec.Deserialize(String("2020-05-01"))
	require.Equal(t, time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), got.Time())

	got = codec.Deserialize(Number(0))
	require.Equal(t, time.Unix(0, 0).UTC(), got.Time())
}

func TestDeserializeAsCustomPattern(t *testing.T) {
	t.Parallel()

	codec := New(time.UTC)
	tag := FormatTag("dd.MM.yyyy")
	d := datetime.Of(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC))

	stored := codec.Serialize(d, tag)
	require.Equal(t, "01.05.2020", stored.Text())
	require.Equal(t, datetime.KindInvalid, codec.Deserialize(stored).Kind())
	require.True(t, d.SameInstant(codec.DeserializeAs(stored, tag)))
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	now := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		in   any
		kind ValueKind
	}{
		{nil, KindNull},
		{"2020-05-01", KindString},
		{1588291200000, KindNumber},
		{int64(5), KindNumber},
		{float64(5), KindNumber},
		{now, KindDate},
		{&now, KindDate},
		{(*time.Time)(nil), KindNull},
		{datetime.Of(now), KindDate},
		{Number(3), KindNumber},
	}
	for _, tc := range cases {
		v, err := FromAny(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.kind, v.Kind(), "%v", tc.in)
	}

	_, err := FromAny(struct{}{})
	require.Error(t, err)
}

func TestValueEqualityAndInterface(t *testing.T) {
	t.Parallel()

	now := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)
	require.True(t, Number(1).Equal(Number(1)))
	require.False(t, Number(1).Equal(String("1")))
	require.True(t, Time(now).Equal(Time(now.In(time.FixedZone("", 3600)))))
	require.True(t, Null().Equal(Date(datetime.Null())))

	require.Nil(t, Null().Interface())
	require.Equal(t, int64(4), Number(4).Interface())
	require.Equal(t, "x", String("x").Interface())
	require.Equal(t, now, Time(now).Interface())
	require.Equal(t, "null", Null().String())
}
