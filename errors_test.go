package doctext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  NotFoundError{ID: "upload"},
			want: "resource (upload) not found",
		},
		{
			name: "request",
			err:  RequestError{Field: "filename"},
			want: "invalid request: missing filename",
		},
		{
			name: "decode",
			err:  DecodeError{Cause: cause},
			want: "invalid base64 payload: boom",
		},
		{
			name: "store",
			err:  StoreError{Bucket: "docs", Key: "report.pdf", Cause: cause},
			want: "unable to store object (docs/report.pdf): boom",
		},
		{
			name: "detect",
			err:  DetectError{Bucket: "docs", Key: "report.pdf", Cause: cause},
			want: "unable to detect text in object (docs/report.pdf): boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
	}{
		{name: "decode", err: DecodeError{Cause: cause}},
		{name: "store", err: StoreError{Bucket: "docs", Key: "report.pdf", Cause: cause}},
		{name: "detect", err: DetectError{Bucket: "docs", Key: "report.pdf", Cause: cause}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, cause))
		})
	}
}
