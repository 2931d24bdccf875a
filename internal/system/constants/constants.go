package constants

// DateLayout is the YYYY-MM-DD form used for dateUpdated values and the
// export date filter.
const DateLayout = "2006-01-02"

// XlsxContentType is the MIME type of the exported spreadsheet.
const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportSheetName is the worksheet name in the exported workbook.
const ExportSheetName = "People"

// ExportFilenamePrefix is the base name of the downloaded spreadsheet; the
// date filter (or "all") is appended to it.
const ExportFilenamePrefix = "screening_export_"
