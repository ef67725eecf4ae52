package logging

// Standardized field names for structured logging.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldSeries     = "series"
	FieldLabel      = "label"
	FieldValue      = "value"
	FieldLabels     = "labels"
	FieldChartType  = "chart_type"
	FieldTheme      = "theme"
	FieldMode       = "mode"
	FieldFormat     = "format"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldThemesFile = "themes_file"
)
