package report

// ReportError is a custom error type for report errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

const (
	ErrNilInput    ReportError = "input cannot be nil"
	ErrNilReport   ReportError = "report cannot be nil"
	ErrNilChampion ReportError = "report needs a champion"
	ErrNoUploader  ReportError = "no uploader configured"
)
