package constants

// JobStatus is the canonical status for rows in trawl_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusProcessing JobStatus = "PROCESSING" // accepted, pipeline running
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds every legal trawl_job status.
var JobStatuses = []string{
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether s is a terminal job status.
// A terminal job never re-enters PROCESSING.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// SourceType tags where a menu came from.
type SourceType string

const (
	SourceWebsiteScrape SourceType = "website_scrape"
	SourceGooglePhoto   SourceType = "google_photo"
	SourcePDFMenu       SourceType = "pdf_menu"
	SourceUserSubmitted SourceType = "user_submitted"
	SourceManual        SourceType = "manual"
)

// SourceTypes holds every legal menu source type.
var SourceTypes = []string{
	string(SourceWebsiteScrape),
	string(SourceGooglePhoto),
	string(SourcePDFMenu),
	string(SourceUserSubmitted),
	string(SourceManual),
}

// ExtractionMethod records which path produced an ExtractedMenu.
type ExtractionMethod string

const (
	MethodText   ExtractionMethod = "text"
	MethodVision ExtractionMethod = "vision"
	// MethodReview marks a low-confidence extraction routed to manual review.
	MethodReview ExtractionMethod = "review"
)
