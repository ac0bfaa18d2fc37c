package testutil

import "time"

// WithStandardHistory adds a small run history spread over the last two
// hours, newest last:
//
//	run-old     root       ok     2h ago
//	run-home    home       ok     1h ago
//	run-failed  kind:page  error  30m ago
//	run-latest  root       ok     now
func (b *Builder) WithStandardHistory() *Builder {
	now := time.Now()
	return b.
		WithRun("run-old",
			Descriptor("root"), NodeCount(8), DurationMS(4),
			Snapshot("root [site]\n"), CreatedAt(now.Add(-2*time.Hour))).
		WithRun("run-home",
			Descriptor("home"), NodeCount(3), DurationMS(2),
			Snapshot("home\n"), CreatedAt(now.Add(-time.Hour))).
		WithRun("run-failed",
			Descriptor("kind:page"), Failed(`ambiguous binding for type manifest.Page: 2 matches`),
			CreatedAt(now.Add(-30*time.Minute))).
		WithRun("run-latest",
			Descriptor("root"), NodeCount(8), DurationMS(3),
			Snapshot("root [site]\n"), TraceID("4bf92f3577b34da6a3ce929d0e0e4736"),
			CreatedAt(now))
}
