package doctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpListsConfiguration(t *testing.T) {
	help := Help()
	assert.Contains(t, help, "DOCTEXT_RUNTIME")
	assert.Contains(t, help, "DOCTEXT_AWS_REGION")
	assert.Contains(t, help, "DOCTEXT_STORAGE_ENDPOINT")
	assert.Contains(t, help, "DOCTEXT_UPLOAD_BUCKET")
}
