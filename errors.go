package doctext

import "fmt"

// NotFoundError represents a failed lookup for a resource.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// RequestError represents an incoming event that is missing a
// required element and cannot be processed.
type RequestError struct {
	// Field is the name of the missing element.
	Field string
}

func (e RequestError) Error() string {
	return fmt.Sprintf("invalid request: missing %s", e.Field)
}

// DecodeError represents a payload that could not be decoded from
// its base64 wire form.
type DecodeError struct {
	// Cause is the underlying decoder failure.
	Cause error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("invalid base64 payload: %v", e.Cause)
}

func (e DecodeError) Unwrap() error {
	return e.Cause
}

// StoreError represents a rejected write to the object store.
type StoreError struct {
	// Bucket is the destination bucket of the failed write.
	Bucket string
	// Key is the destination key of the failed write.
	Key string
	// Cause is the underlying client failure.
	Cause error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("unable to store object (%s/%s): %v", e.Bucket, e.Key, e.Cause)
}

func (e StoreError) Unwrap() error {
	return e.Cause
}

// DetectError represents a failed text detection call.
type DetectError struct {
	// Bucket is the bucket containing the source object.
	Bucket string
	// Key is the key of the source object.
	Key string
	// Cause is the underlying client failure.
	Cause error
}

func (e DetectError) Error() string {
	return fmt.Sprintf("unable to detect text in object (%s/%s): %v", e.Bucket, e.Key, e.Cause)
}

func (e DetectError) Unwrap() error {
	return e.Cause
}
