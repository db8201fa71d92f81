package festival

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/chaeni-dev/ICT-INNO/internal/district"
)

// Festival is a single event from the Busan festival dataset.
type Festival struct {
	Name     string
	District district.Name
	Place    string
	// PeriodText is the raw range text from the dataset, kept for display.
	PeriodText string
	Period     Period
	Detail     string
}

// Column headers as they appear in the public dataset export. The period
// column header varies between export versions.
const (
	colName     = "콘텐츠명"
	colDistrict = "구군"
	colPlace    = "장소"
	colPeriodA  = "운영기간"
	colPeriodB  = "이용요일 및 시간"
	colDetail   = "상세내용"
)

// LoadResult carries the parsed rows plus how many were dropped for
// missing or unparsable period text.
type LoadResult struct {
	Festivals []Festival
	Dropped   int
}

// LoadCSV parses the festival dataset from r. Rows whose period cannot be
// reduced to a date range are dropped rather than failing the whole load.
func LoadCSV(r io.Reader) (LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return LoadResult{}, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))] = i
	}

	nameIdx, ok := idx[colName]
	if !ok {
		return LoadResult{}, fmt.Errorf("csv missing column %q", colName)
	}
	periodIdx, ok := idx[colPeriodA]
	if !ok {
		periodIdx, ok = idx[colPeriodB]
		if !ok {
			return LoadResult{}, fmt.Errorf("csv missing column %q or %q", colPeriodA, colPeriodB)
		}
	}
	districtIdx := columnOrMissing(idx, colDistrict)
	placeIdx := columnOrMissing(idx, colPlace)
	detailIdx := columnOrMissing(idx, colDetail)

	var result LoadResult
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return LoadResult{}, fmt.Errorf("read csv record: %w", err)
		}

		name := field(record, nameIdx)
		periodText := field(record, periodIdx)
		if name == "" || periodText == "" {
			result.Dropped++
			continue
		}

		period, err := ParsePeriod(periodText)
		if err != nil {
			result.Dropped++
			continue
		}

		result.Festivals = append(result.Festivals, Festival{
			Name:       name,
			District:   district.Name(field(record, districtIdx)),
			Place:      field(record, placeIdx),
			PeriodText: periodText,
			Period:     period,
			Detail:     field(record, detailIdx),
		})
	}

	return result, nil
}

// LoadFile opens and parses a dataset file. Files with a .zst extension
// are decompressed on the fly.
func LoadFile(path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == ".zst" {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return LoadResult{}, fmt.Errorf("open zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	return LoadCSV(r)
}

func columnOrMissing(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
