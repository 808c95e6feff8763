package doctext

import (
	"context"

	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
)

const (
	// FunctionUpload is the registered name of the upload function.
	FunctionUpload = "upload"
	// FunctionExtract is the registered name of the text extraction
	// function.
	FunctionExtract = "extract"
)

// NewFetcher constructs a Fetcher hosting the service functions with
// all clients built from the given configuration source. The returned
// Fetcher annotates every invocation with logging and metrics before
// handing off to the function body.
func NewFetcher(ctx context.Context, s settings.Source) (Fetcher, error) {
	src := &settings.PrefixSource{Source: s, Prefix: []string{"doctext"}}

	awsConf := new(aws.Config)
	if err := settings.NewComponent(ctx, src, &AWSComponent{}, awsConf); err != nil {
		return nil, err
	}
	store := new(S3Store)
	if err := settings.NewComponent(ctx, src, &StorageComponent{Config: *awsConf}, store); err != nil {
		return nil, err
	}
	upload := new(UploadHandler)
	if err := settings.NewComponent(ctx, src, &UploadComponent{Store: store}, upload); err != nil {
		return nil, err
	}
	extract := &ExtractHandler{
		Detector: &TextractDetector{Client: textract.NewFromConfig(*awsConf)},
		Store:    store,
		LogFn:    LoggerFromContext,
		StatFn:   StatFromContext,
	}

	static := &StaticFetcher{
		Functions: map[string]Function{
			FunctionUpload: NewFunctionWithErrors(
				upload.Handle,
				RequestError{}, DecodeError{}, StoreError{},
			),
			FunctionExtract: NewFunctionWithErrors(
				extract.Handle,
				RequestError{}, DetectError{}, StoreError{},
			),
		},
	}
	return &statFetcher{
		StatFn: StatFromContext,
		Fetcher: &loggingFetcher{
			LogFn:   LoggerFromContext,
			Fetcher: static,
		},
	}, nil
}
