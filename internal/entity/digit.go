package entity

// Point is a surface-local coordinate, already translated from client
// coordinates by the drawing page.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StrokeRequest carries one continuous pen-down-to-pen-up path.
type StrokeRequest struct {
	Points []Point `json:"points"`
}

// UploadOutcome is the per-digit result of a submit-all batch.
type UploadOutcome struct {
	Digit   int    `json:"digit"`
	Success bool   `json:"success"`
	Skipped bool   `json:"skipped,omitempty"`
	Message string `json:"message,omitempty"`
}

type SubmitResponse struct {
	Outcomes []UploadOutcome `json:"outcomes"`
}
