package storage

import (
	"fmt"
	"regexp"
	"strings"
)

// maxSlugLength bounds object key length; S3 allows far more, but keys feed
// into URLs and filenames downstream.
const maxSlugLength = 100

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts free text to a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, no leading or
// trailing hyphen, at most 100 characters.
func Slugify(text string) string {
	slug := strings.ToLower(text)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// ObjectKey derives the storage key for a (topic, category) pair. The key is
// deterministic: regenerating the same pair overwrites the earlier page.
func ObjectKey(topic, category string) string {
	return fmt.Sprintf("output/%s-%s.html", Slugify(topic), category)
}
