package doctext

// functionNotFound is logged when an invocation names a function
// that has no registered implementation or, in mock mode, an error
// type that the function does not declare.
type functionNotFound struct {
	Function string `logevent:"function"`
	Message  string `logevent:"message,default=function-not-found"`
}

// invokeFailed is logged when loading or executing a hosted function
// returns an error.
type invokeFailed struct {
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invoke-failed"`
}

// uploadStored is logged after a decoded payload is written to the
// object store.
type uploadStored struct {
	Filename string `logevent:"filename"`
	Bucket   string `logevent:"bucket"`
	Bytes    int    `logevent:"bytes"`
	Message  string `logevent:"message,default=upload-stored"`
}

// uploadFailed is logged when an upload request cannot be completed.
type uploadFailed struct {
	Filename string `logevent:"filename"`
	Bucket   string `logevent:"bucket"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=upload-failed"`
}

// textExtracted is logged after detected text is written back to the
// object store.
type textExtracted struct {
	Bucket    string `logevent:"bucket"`
	Key       string `logevent:"key"`
	OutputKey string `logevent:"output_key"`
	Lines     int    `logevent:"lines"`
	Message   string `logevent:"message,default=text-extracted"`
}

// extractFailed is logged when an extraction event cannot be completed.
type extractFailed struct {
	Bucket  string `logevent:"bucket"`
	Key     string `logevent:"key"`
	Reason  string `logevent:"reason"`
	Message string `logevent:"message,default=extract-failed"`
}
