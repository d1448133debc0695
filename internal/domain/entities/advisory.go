package entities

// AdvisoryKind classifies a recoverable build condition.
type AdvisoryKind string

// The advisory taxonomy. None of these abort a build.
const (
	AdvisoryUnresolvedReference    AdvisoryKind = "unresolved_reference"
	AdvisoryUnconfiguredType       AdvisoryKind = "unconfigured_type"
	AdvisoryMissingImageRecord     AdvisoryKind = "missing_image_record"
	AdvisoryUnsupportedImageFormat AdvisoryKind = "unsupported_image_format"
	AdvisoryMalformedMarker        AdvisoryKind = "malformed_marker"
	AdvisoryDuplicateRecord        AdvisoryKind = "duplicate_record"
)

// Advisory is a non-fatal problem found during the build. Advisories are
// accumulated for the surrounding system to log; the affected record or
// mention degrades gracefully and the build continues.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Subject string       `json:"subject"` // record name, label or marker the condition applies to
	Detail  string       `json:"detail,omitempty"`
}
