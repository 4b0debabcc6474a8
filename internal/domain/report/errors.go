package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrAttachmentTooLarge = errors.New("attachment exceeds the maximum file size")
)
