package domain

// ProcessResult is the structure returned for every processing attempt.
// The pipeline never surfaces a raw fault to its caller: failures are
// folded into Success=false with a short error description and, where one
// exists, a detailed diagnostic trace.
type ProcessResult struct {
	Success      bool           `json:"success"`
	Data         []OutletRecord `json:"data,omitempty"`
	OutletsCount int            `json:"outlets_count"`
	Message      string         `json:"message"`
	Error        string         `json:"error,omitempty"`
	Traceback    string         `json:"traceback,omitempty"`
}

// NewSuccessResult builds a successful result around the extracted records.
func NewSuccessResult(records []OutletRecord, message string) *ProcessResult {
	return &ProcessResult{
		Success:      true,
		Data:         records,
		OutletsCount: len(records),
		Message:      message,
	}
}

// NewFailureResult builds a failed result with an error description and an
// optional diagnostic trace.
func NewFailureResult(errText, traceback string) *ProcessResult {
	return &ProcessResult{
		Success:   false,
		Message:   "processing failed",
		Error:     errText,
		Traceback: traceback,
	}
}
