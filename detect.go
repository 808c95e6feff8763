package doctext

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractAPI is the subset of the Textract client consumed by the
// service.
type TextractAPI interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

// TextractDetector is a TextDetector implementation backed by the
// synchronous Textract detection API. Documents are referenced in
// place within the object store rather than streamed through the
// service.
type TextractDetector struct {
	Client TextractAPI
}

// Detect runs text detection against the object at bucket and key and
// flattens the provider block shape into the domain Block type.
func (d *TextractDetector) Detect(ctx context.Context, bucket string, key string) ([]Block, error) {
	out, err := d.Client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return nil, err
	}
	blocks := make([]Block, 0, len(out.Blocks))
	for _, b := range out.Blocks {
		blocks = append(blocks, Block{
			Type: string(b.BlockType),
			Text: aws.ToString(b.Text),
		})
	}
	return blocks, nil
}
