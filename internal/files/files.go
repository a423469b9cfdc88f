package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind classifies an attachment by its declared name and MIME type. File
// bytes are never read; classification is metadata-only.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindImage   Kind = "image"
	KindUnknown Kind = "unknown"
)

// MaxAttachmentBytes caps accepted uploads at 10MB.
const MaxAttachmentBytes = 10 << 20

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Classify determines the attachment kind from its file name and declared
// content type. The content type wins when present; the extension is the
// fallback.
func Classify(name, contentType string) Kind {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case ct == "application/pdf":
		return KindPDF
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	}

	switch ext := strings.ToLower(filepath.Ext(name)); {
	case ext == ".pdf":
		return KindPDF
	case imageExtensions[ext]:
		return KindImage
	}
	return KindUnknown
}

// Validate checks that an attachment descriptor is acceptable: a
// recognizable PDF or image, a non-empty name and a positive size under
// the cap.
func Validate(name string, sizeBytes int64, contentType string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("attachment has no file name")
	}
	if sizeBytes <= 0 {
		return fmt.Errorf("attachment %s is empty", name)
	}
	if sizeBytes > MaxAttachmentBytes {
		return fmt.Errorf("attachment %s exceeds the %dMB limit", name, MaxAttachmentBytes>>20)
	}
	if Classify(name, contentType) == KindUnknown {
		return fmt.Errorf("attachment %s is not a PDF or image", name)
	}
	return nil
}
