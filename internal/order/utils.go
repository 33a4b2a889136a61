package order

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

func createOrderReference(handle, title string, createdAt time.Time) string {
	ref := strings.Join([]string{handle, title, createdAt.Format("2006-01-02")}, "_")
	return slug.Make(ref)
}
