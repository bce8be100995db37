package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrObjectNotFound is returned by object stores when no object exists at
// the requested path.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo is the subset of object metadata the file service needs.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// Category is the closed set of storage folders. Each category maps to a
// fixed folder inside the shared bucket.
type Category string

const (
	ProfileImages Category = "profile_images"
	ProfileCVs    Category = "profile_cvs"
)

// ParseCategory resolves a path segment to a known category. Both the enum
// name (PROFILE_IMAGES) and the folder name (profile_images) are accepted,
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "profile_images", "profile-images", "profileimages":
		return ProfileImages, nil
	case "profile_cvs", "profile-cvs", "profilecvs":
		return ProfileCVs, nil
	default:
		return "", fmt.Errorf("unknown file category: %s", s)
	}
}

// Folder is the object path prefix inside the bucket.
func (c Category) Folder() string {
	return string(c)
}

// FileDescriptor is the upload response: everything a client needs to
// reference or fetch the stored object later.
type FileDescriptor struct {
	Key         string   `json:"key"`
	URL         string   `json:"url"`
	ContentType string   `json:"contentType"`
	Size        int64    `json:"size"`
	Category    Category `json:"category"`
}

type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}
