package output

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// PositionRow is one ply of one game.
type PositionRow struct {
	GameID string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	White  string `parquet:"name=white, type=BYTE_ARRAY, convertedtype=UTF8"`
	Black  string `parquet:"name=black, type=BYTE_ARRAY, convertedtype=UTF8"`
	Result string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply    int32  `parquet:"name=ply, type=INT32"`
	SAN    string `parquet:"name=san, type=BYTE_ARRAY, convertedtype=UTF8"`
	UCI    string `parquet:"name=uci, type=BYTE_ARRAY, convertedtype=UTF8"`
	FEN    string `parquet:"name=fen, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// parquetParallel is the number of goroutines the parquet writer and
// reader use to marshal pages.
const parquetParallel = 4

// PositionRows returns one row per ply of g. The game id is the GUID tag
// when present, else gameNum.
func PositionRows(data *chess.GameData, g *engine.Game, gameNum int) []PositionRow {
	id := data.GUID()
	if id == "" {
		id = fmt.Sprintf("%d", gameNum)
	}

	plies, final := walkPlies(g)
	result := gameResult(data, final)
	rows := make([]PositionRow, 0, len(plies))
	for i, p := range plies {
		rows = append(rows, PositionRow{
			GameID: id,
			White:  data.White(),
			Black:  data.Black(),
			Result: result,
			Ply:    int32(i + 1),
			SAN:    p.SAN,
			UCI:    p.Move.String(),
			FEN:    p.FEN,
		})
	}
	return rows
}

// WritePositionsParquet writes rows to a Snappy-compressed parquet file.
func WritePositionsParquet(path string, rows []PositionRow) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(PositionRow), parquetParallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		if err := parquetWriter.Write(row); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

// ReadPositionsParquet reads every row of a file written by
// WritePositionsParquet.
func ReadPositionsParquet(path string) ([]PositionRow, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(PositionRow), parquetParallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	rows := make([]PositionRow, int(parquetReader.GetNumRows()))
	if len(rows) == 0 {
		return rows, nil
	}
	if err := parquetReader.Read(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
