package domain

// JobStatus enumerates generation job lifecycle states.
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusNotFound   JobStatus = "not_found"
)

// Terminal reports whether a job can no longer change state.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job tracks one cart-image generation attempt. Records live for the process
// lifetime; they are created in the processing state and transition exactly
// once to completed or failed.
type Job struct {
	ID           string
	UserID       string
	Status       JobStatus
	Progress     int
	ImageURL     string
	ErrorMessage string
}

// AdvanceProgress raises the progress marker. Progress never moves backwards,
// regardless of the order in which pipeline stages report.
func (j *Job) AdvanceProgress(p int) {
	if p > j.Progress {
		j.Progress = p
	}
}

// UploadStatus enumerates upload outcomes.
type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusFailed  UploadStatus = "failed"
)

// UploadedAsset is the result of processing and storing an uploaded image. It
// is not retained beyond the response that carries it.
type UploadedAsset struct {
	URL          string
	Status       UploadStatus
	ErrorMessage string
}
