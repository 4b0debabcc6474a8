package export

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Table is a titled grid of values rendered by every writer in this package.
type Table struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]any
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ParseFormat accepts csv, xlsx or pdf in any case; empty means csv.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Render writes t in format and names the file baseName.<ext>.
func Render(format Format, baseName string, t Table) (File, error) {
	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case FormatCSV:
		data, err = CSV(t)
		contentType = "text/csv"
	case FormatXLSX:
		data, err = XLSX(t)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		data, err = PDF(t)
		contentType = "application/pdf"
	default:
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return File{}, err
	}

	return File{
		Name:        fmt.Sprintf("%s.%s", baseName, format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
