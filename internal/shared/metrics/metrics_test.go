package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesCountersAndHistograms(t *testing.T) {
	IncUploadCompleted()
	IncUploadOrphanBlob()
	IncRetrieveFailed()
	ObserveUploadDurationMs(42)
	ObserveRetrieveDurationMs(7)

	out := Render()

	for _, want := range []string{
		"# TYPE upload_completed_total counter",
		"# TYPE upload_orphan_blob_total counter",
		"# TYPE retrieve_failed_total counter",
		"# TYPE upload_duration_ms histogram",
		"upload_duration_ms_bucket{le=\"+Inf\"}",
		"retrieve_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, out)
		}
	}
}
