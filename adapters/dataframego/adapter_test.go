package dataframego_test

import (
	"testing"
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/stretchr/testify/require"

	"github.com/chedl98/hyperleaup/adapters/dataframego"
	"github.com/chedl98/hyperleaup/pkg/frame"
)

func TestToFrame(t *testing.T) {
	joined := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesInt64("id", nil, 1001, 1002, nil),
		dataframe.NewSeriesString("first_name", nil, "Jane", "John", nil),
		dataframe.NewSeriesFloat64("age", nil, 29.0, nil, 21.0),
		dataframe.NewSeriesTime("joined", nil, joined, nil, nil),
	)

	f, err := dataframego.ToFrame(df)
	require.NoError(t, err)

	s := f.Schema()
	require.Len(t, s.Columns, 4)
	require.Equal(t, frame.KindLong, s.Columns[0].Type)
	require.Equal(t, frame.KindString, s.Columns[1].Type)
	require.Equal(t, frame.KindDouble, s.Columns[2].Type)
	require.Equal(t, frame.KindTimestamp, s.Columns[3].Type)
	for _, cs := range s.Columns {
		require.True(t, cs.Nullable)
	}

	require.Equal(t, 3, f.Rows())
	rows := f.Records()
	require.Equal(t, []any{int64(1001), "Jane", 29.0, joined}, rows[0])
	require.Nil(t, rows[1][2]) // NaN age becomes null
	require.Nil(t, rows[2][0])
	require.Nil(t, rows[2][1])
}

func TestToFrameUnsupportedSeries(t *testing.T) {
	df := dataframe.NewDataFrame(
		dataframe.NewSeriesGeneric("blob", map[string]any{}, nil, map[string]any{"k": 1}),
	)
	_, err := dataframego.ToFrame(df)
	require.Error(t, err)
	require.Contains(t, err.Error(), "blob")
}
