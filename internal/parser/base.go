package parser

import "fjacquet/chart-csv/internal/logging"

// BaseParser provides common functionality for all parser implementations.
// Parsers embed it to share logger handling:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser with the provided logger.
// If logger is nil, a default logger is used.
func NewBaseParser(logger logging.Logger) BaseParser {
	return BaseParser{logger: logging.OrDefault(logger)}
}

// SetLogger implements LoggerConfigurable. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// snippet returns the first line of content, cut to a readable length, for
// InvalidFormatError messages.
func snippet(content string) string {
	const maxLen = 60
	for i, r := range content {
		if r == '\n' || r == '\r' {
			content = content[:i]
			break
		}
	}
	if len(content) > maxLen {
		return content[:maxLen] + "..."
	}
	return content
}
