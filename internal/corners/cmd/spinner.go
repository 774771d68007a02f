package cmd

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

const SPIN = 14

// working runs fn while a spinner is shown on w. The spinner is skipped
// when tracing, since the trace output would be garbled by it.
func working(w io.Writer, suffix string, fn func()) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fn()
		return
	}

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()

	fn()
}
