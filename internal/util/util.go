package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

func NewEnquiryID() string {
	// ULID is sortable (nice for log correlation and dashboards)
	t := time.Now().UTC()
	return "enq_" + ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
