// Package logging holds logrus helpers shared by packages that accept an
// optional logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns an entry whose output is dropped
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// OrDiscard returns entry, or a discarding entry when entry is nil
func OrDiscard(entry *logrus.Entry) *logrus.Entry {
	if entry == nil {
		return Discard()
	}
	return entry
}
