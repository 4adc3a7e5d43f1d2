package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateKinds(t *testing.T) {
	t.Parallel()

	require.True(t, Null().IsNull())
	require.True(t, Null().IsAbsent())
	require.False(t, Unparsed().IsNull())
	require.True(t, Unparsed().IsAbsent())
	require.False(t, Invalid().IsAbsent())
	require.False(t, Invalid().IsValid())

	d := Of(time.Date(2020, time.May, 1, 10, 0, 0, 0, time.UTC))
	require.True(t, d.IsValid())
	require.False(t, d.IsAbsent())
	ms, ok := d.UnixMilli()
	require.True(t, ok)
	require.Equal(t, int64(1588327200000), ms)

	_, ok = Invalid().UnixMilli()
	require.False(t, ok)
	require.True(t, Invalid().Time().IsZero())
}

func TestSameInstantIgnoresZone(t *testing.T) {
	t.Parallel()

	utc := Of(time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC))
	shifted := Of(time.Date(2020, time.May, 1, 10, 0, 0, 0, time.FixedZone("", 2*3600)))
	require.True(t, utc.SameInstant(shifted))
	require.False(t, utc.SameInstant(Null()))
	require.False(t, Null().SameInstant(Null()))
}

func TestDateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "null", Null().String())
	require.Equal(t, "unparsed", Unparsed().String())
	require.Equal(t, "2020-05-01T08:00:00.000Z", Of(time.Date(2020, time.May, 1, 8, 0, 0, 0, time.UTC)).String())
}
