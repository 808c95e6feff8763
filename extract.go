package doctext

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

const (
	extractOutputPrefix = "processed/"
	extractOutputSuffix = ".txt"
)

// ExtractHandler reacts to object creation events by running text
// detection on the new object and writing the recognized lines back
// to the same bucket under a derived key. The derived key is the
// base name of the source key placed under the processed prefix with
// a .txt extension. Re-processing the same object overwrites the
// previous result.
//
// Failures are reported with the same structured envelope as the
// upload function rather than as an unhandled fault.
type ExtractHandler struct {
	// Detector runs text detection against stored objects.
	Detector TextDetector
	// Store receives the extracted text.
	Store  ObjectStore
	LogFn  LogFn
	StatFn StatFn
}

// Handle processes one object creation notification.
func (h *ExtractHandler) Handle(ctx context.Context, event events.S3Event) (events.APIGatewayProxyResponse, error) {
	logger := h.LogFn(ctx)
	stat := h.StatFn(ctx)

	if len(event.Records) == 0 {
		err := RequestError{Field: "records"}
		logger.Warn(extractFailed{Reason: err.Error()})
		stat.Count("extract.error", 1, "cause:request")
		return errorResponse(err), nil
	}
	record := event.Records[0]
	bucket := record.S3.Bucket.Name
	key := record.S3.Object.Key

	blocks, errDetect := h.Detector.Detect(ctx, bucket, key)
	if errDetect != nil {
		err := DetectError{Bucket: bucket, Key: key, Cause: errDetect}
		logger.Error(extractFailed{Bucket: bucket, Key: key, Reason: err.Error()})
		stat.Count("extract.error", 1, "cause:detect")
		return errorResponse(err), nil
	}
	text, lines := joinLines(blocks)
	outputKey := extractOutputPrefix + path.Base(key) + extractOutputSuffix
	if errPut := h.Store.Put(ctx, bucket, outputKey, strings.NewReader(text)); errPut != nil {
		err := StoreError{Bucket: bucket, Key: outputKey, Cause: errPut}
		logger.Error(extractFailed{Bucket: bucket, Key: key, Reason: err.Error()})
		stat.Count("extract.error", 1, "cause:store")
		return errorResponse(err), nil
	}
	logger.Info(textExtracted{Bucket: bucket, Key: key, OutputKey: outputKey, Lines: lines})
	stat.Count("extract.success", 1)
	return successResponse(fmt.Sprintf("Text extracted and saved to %s", outputKey)), nil
}

// joinLines concatenates the text of each LINE block in the order
// emitted by the detection service with a newline after every line.
// Blocks of any other type are excluded.
func joinLines(blocks []Block) (string, int) {
	var b strings.Builder
	lines := 0
	for _, block := range blocks {
		if block.Type != BlockTypeLine {
			continue
		}
		b.WriteString(block.Text)
		b.WriteByte('\n')
		lines++
	}
	return b.String(), lines
}
