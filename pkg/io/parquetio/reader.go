// Package parquetio loads Parquet files into frames by way of
// rocketlaunchr/dataframe-go's parquet import.
package parquetio

import (
	"context"
	"errors"

	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/xitongsys/parquet-go-source/local"

	"github.com/chedl98/hyperleaup/adapters/dataframego"
	"github.com/chedl98/hyperleaup/pkg/frame"
)

var ErrEmptyParquet = errors.New("empty parquet file")

// ReadAll loads an entire Parquet file into a Frame.
func ReadAll(ctx context.Context, path string) (*frame.Frame, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fr.Close() }()

	df, err := imports.LoadFromParquet(ctx, fr)
	if err != nil {
		return nil, err
	}
	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptyParquet
	}
	return dataframego.ToFrame(df)
}
