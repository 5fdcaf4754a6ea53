package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	uploadCompletedTotal   atomic.Uint64
	uploadFailedTotal      atomic.Uint64
	uploadOrphanBlobTotal  atomic.Uint64
	retrieveCompletedTotal atomic.Uint64
	retrieveFailedTotal    atomic.Uint64

	uploadDuration   = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
	retrieveDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncUploadCompleted increments the completed-upload counter.
func IncUploadCompleted() {
	uploadCompletedTotal.Add(1)
}

// IncUploadFailed increments the failed-upload counter.
func IncUploadFailed() {
	uploadFailedTotal.Add(1)
}

// IncUploadOrphanBlob counts uploads that wrote a blob but failed to write
// its metadata row, leaving an orphan object in the bucket.
func IncUploadOrphanBlob() {
	uploadOrphanBlobTotal.Add(1)
}

// IncRetrieveCompleted increments the completed-retrieval counter.
func IncRetrieveCompleted() {
	retrieveCompletedTotal.Add(1)
}

// IncRetrieveFailed increments the failed-retrieval counter.
func IncRetrieveFailed() {
	retrieveFailedTotal.Add(1)
}

// ObserveUploadDurationMs records an upload duration in milliseconds.
func ObserveUploadDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	uploadDuration.Observe(value)
}

// ObserveRetrieveDurationMs records a retrieval duration in milliseconds.
func ObserveRetrieveDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	retrieveDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "upload_completed_total", "Total asset uploads completed", uploadCompletedTotal.Load())
	writeCounter(&buf, "upload_failed_total", "Total asset uploads failed", uploadFailedTotal.Load())
	writeCounter(&buf, "upload_orphan_blob_total", "Total uploads that left an orphan blob", uploadOrphanBlobTotal.Load())
	writeCounter(&buf, "retrieve_completed_total", "Total asset retrievals completed", retrieveCompletedTotal.Load())
	writeCounter(&buf, "retrieve_failed_total", "Total asset retrievals failed", retrieveFailedTotal.Load())
	writeHistogram(&buf, "upload_duration_ms", "Asset upload duration in milliseconds", uploadDuration.Snapshot())
	writeHistogram(&buf, "retrieve_duration_ms", "Asset retrieval duration in milliseconds", retrieveDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
