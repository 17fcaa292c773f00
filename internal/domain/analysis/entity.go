package analysis

import (
	"time"
)

// AIModelTag identifies the scoring pipeline revision embedded in every verdict.
const AIModelTag = "CopyrightChain-AI-v1.0"

// DefaultTitle is used when a request carries no artwork title.
const DefaultTitle = "Untitled"

// Confidence enum
type Confidence string

const (
	ConfidenceVeryHigh Confidence = "Very High"
	ConfidenceHigh     Confidence = "High"
	ConfidenceMedium   Confidence = "Medium"
	ConfidenceLow      Confidence = "Low"
)

// Risk enum
type Risk string

const (
	RiskVeryLow Risk = "Very Low"
	RiskLow     Risk = "Low"
	RiskMedium  Risk = "Medium"
	RiskHigh    Risk = "High"
)

// ObjectMetadata holds structural properties probed from a blob. A zero value
// represents an unprobeable (non-image or corrupt) blob; that is a valid state,
// not an error.
type ObjectMetadata struct {
	WidthPx  uint
	HeightPx uint
	Encoding string
	ByteSize uint

	// Enrichment fields, empty when the blob carries no usable metadata.
	ExifArtist     string
	ExifCopyright  string
	PerceptualHash string
}

// PixelCount returns width*height; zero marks the unknown-resolution path.
func (m ObjectMetadata) PixelCount() uint {
	return m.WidthPx * m.HeightPx
}

// SubScores value object: the three independent bounded heuristics.
type SubScores struct {
	Quality     int `json:"imageQuality"`
	Uniqueness  int `json:"uniquenessScore"`
	Consistency int `json:"consistencyScore"`
}

// Detail is the presentation block nested inside a verdict.
type Detail struct {
	SubScores
	Resolution     string    `json:"resolution"`
	Format         string    `json:"format,omitempty"`
	FileSize       string    `json:"fileSize"`
	ExifArtist     string    `json:"exifArtist,omitempty"`
	ExifCopyright  string    `json:"exifCopyright,omitempty"`
	PerceptualHash string    `json:"perceptualHash,omitempty"`
	Timestamp      time.Time `json:"analysisTimestamp"`
	Error          string    `json:"error,omitempty"`
}

// Verdict is the combined authenticity result for a single request.
type Verdict struct {
	AuthenticityScore int        `json:"authenticityScore"`
	Confidence        Confidence `json:"confidence"`
	RiskLevel         Risk       `json:"riskLevel"`
	Analysis          Detail     `json:"analysis"`
	VerificationHash  string     `json:"verificationHash"`
	ProcessingTime    string     `json:"processingTime"`
	AIModel           string     `json:"aiModel"`
}
