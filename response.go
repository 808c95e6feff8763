package doctext

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// successResponse renders a 200 proxy response with the given body.
func successResponse(msg string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Body:       msg,
	}
}

// errorResponse renders the failure envelope shared by all functions.
// Callers are expected to return the envelope with a nil error so
// that the failure reaches the caller as a structured response rather
// than an unhandled fault.
func errorResponse(err error) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       fmt.Sprintf("Error: %s", err),
	}
}
