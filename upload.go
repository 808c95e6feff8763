package doctext

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// UploadHandler accepts API gateway proxy events that carry a base64
// encoded payload and writes the decoded bytes to the configured
// bucket under the name given in the filename header.
//
// The handler always returns a proxy response and a nil error.
// Failures are collapsed into a 500 response with the error
// description in the body so that gateway integrations see a uniform
// envelope regardless of the failure mode.
type UploadHandler struct {
	// Store is the destination object store.
	Store ObjectStore
	// Bucket is the destination bucket for all uploads.
	Bucket string
	LogFn  LogFn
	StatFn StatFn
}

// Handle decodes and stores one uploaded file.
func (h *UploadHandler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := h.LogFn(ctx)
	stat := h.StatFn(ctx)

	name := event.Headers["filename"]
	if name == "" {
		err := RequestError{Field: "filename"}
		logger.Warn(uploadFailed{Bucket: h.Bucket, Reason: err.Error()})
		stat.Count("upload.error", 1, "cause:request")
		return errorResponse(err), nil
	}
	content, errDecode := base64.StdEncoding.DecodeString(event.Body)
	if errDecode != nil {
		err := DecodeError{Cause: errDecode}
		logger.Warn(uploadFailed{Filename: name, Bucket: h.Bucket, Reason: err.Error()})
		stat.Count("upload.error", 1, "cause:decode")
		return errorResponse(err), nil
	}
	if errPut := h.Store.Put(ctx, h.Bucket, name, bytes.NewReader(content)); errPut != nil {
		err := StoreError{Bucket: h.Bucket, Key: name, Cause: errPut}
		logger.Error(uploadFailed{Filename: name, Bucket: h.Bucket, Reason: err.Error()})
		stat.Count("upload.error", 1, "cause:store")
		return errorResponse(err), nil
	}
	logger.Info(uploadStored{Filename: name, Bucket: h.Bucket, Bytes: len(content)})
	stat.Count("upload.success", 1)
	return successResponse(fmt.Sprintf("File %s uploaded successfully to %s", name, h.Bucket)), nil
}
