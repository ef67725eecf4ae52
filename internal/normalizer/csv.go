package normalizer

import (
	"strings"

	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/parsererror"
)

// ParseCSV converts pasted CSV text into a dataset. The first row is the
// header: its first cell is ignored and the remaining cells name the series.
// Every following row is one label (cell 0) with one value per series. Values
// go through ParseNumber, so bad or missing cells read as 0. Quoting is not
// supported.
func ParseCSV(text string) models.Dataset {
	return parseCSV(text, nil)
}

func parseCSV(text string, onFallback func(*parsererror.ParseError)) models.Dataset {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.EmptyDataset()
	}

	rows := strings.Split(trimmed, "\n")
	header := splitCells(rows[0])

	ds := models.Dataset{
		Labels: make([]string, 0, len(rows)-1),
		Series: make([]models.DataSeries, 0, len(header)),
	}
	for _, name := range header[1:] {
		ds.Series = append(ds.Series, models.DataSeries{
			Name:   name,
			Values: make([]float64, 0, len(rows)-1),
		})
	}

	for _, row := range rows[1:] {
		cells := splitCells(row)
		label := cells[0]
		ds.Labels = append(ds.Labels, label)

		for i := range ds.Series {
			var cell string
			var err error
			v := 0.0
			if i+1 < len(cells) {
				cell = cells[i+1]
				v, err = parseNumber(cell)
			} else {
				err = errMissingCell
			}
			if err != nil && onFallback != nil {
				onFallback(&parsererror.ParseError{
					Source: "csv",
					Field:  ds.Series[i].Name + "@" + label,
					Value:  cell,
					Err:    err,
				})
			}
			ds.Series[i].Values = append(ds.Series[i].Values, v)
		}
	}
	return ds
}

func splitCells(row string) []string {
	cells := strings.Split(row, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
