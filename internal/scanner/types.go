package scanner

// Kind classifies the severity of a TransformError.
type Kind string

const (
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// TransformError is a diagnostic produced while scanning, validating, or
// emitting annotation blocks. It is carried as data in transform results
// rather than returned as a Go error: a single bad block never aborts the
// rest of the file.
type TransformError struct {
	Message        string `json:"message"`
	Line           int    `json:"line"`
	Kind           Kind   `json:"kind"`
	AnnotationType string `json:"annotation_type,omitempty"`
}

// AnnotationBlock is one :::type ... ::: region of the source dialect.
// StartLine and EndLine are 1-based and inclusive, spanning the marker
// lines themselves. Content is the raw interior text with internal blank
// lines preserved.
type AnnotationBlock struct {
	Type         string
	Attributes   map[string]string
	Content      string
	StartLine    int
	EndLine      int
	OriginalText string
}
