package filterset

import (
	"time"
)

type SessionFilterSet struct {
	updatedBefore time.Time
}

func NewSessionFilterSet() SessionFilterSet {
	return SessionFilterSet{}
}

func (fs SessionFilterSet) UpdatedBefore(before time.Time) SessionFilterSet {
	fs.updatedBefore = before
	return fs
}

func (fs SessionFilterSet) GetUpdatedBefore() (time.Time, bool) {
	if fs.updatedBefore.IsZero() {
		return fs.updatedBefore, false
	}
	return fs.updatedBefore, true
}
