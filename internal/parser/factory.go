package parser

import (
	"fmt"
	"strings"

	"fjacquet/chart-csv/internal/logging"
)

// ParserType defines the input formats available.
type ParserType string

const (
	CSVText ParserType = "csv"
	Rows    ParserType = "rows"
)

// ParserTypes lists every supported input format.
var ParserTypes = []ParserType{CSVText, Rows}

// ParseParserType converts a user supplied format name into a ParserType.
func ParseParserType(s string) (ParserType, error) {
	pt := ParserType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ParserTypes {
		if pt == known {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown input format: %s", s)
}

// GetParser returns a new instance of the parser for the given type.
// delimiter only applies to rows files.
func GetParser(parserType ParserType, logger logging.Logger, delimiter rune) (FullParser, error) {
	switch parserType {
	case CSVText:
		return NewCSVTextParser(logger), nil
	case Rows:
		return NewRowsParser(logger, delimiter), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
