package separation

import (
	"errors"
	"net/http"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/session"
)

type FailureKind string

const (
	ValidationFailure       FailureKind = "validation"
	ModelUnavailableFailure FailureKind = "model_unavailable"
	InferenceFailure        FailureKind = "inference"
	ResourceFailure         FailureKind = "resource"
	UnexpectedFailure       FailureKind = "unexpected"
)

const (
	ModelNotLoadedMessage = "Model not loaded. Please check server logs."
	UnexpectedMessage     = "An unexpected error occurred while separating audio"
)

var _ error = Failure{}

// Failure is an error that is ready to be shown to a caller.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (f Failure) Error() string {
	return f.Message
}

func (f Failure) Unwrap() error {
	return f.Cause
}

func (f Failure) StatusCode() int {
	if f.Kind == ValidationFailure {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func validationFailure(message string) Failure {
	return Failure{
		Kind:    ValidationFailure,
		Message: message,
	}
}

// Classify maps any error onto the failure taxonomy. Messages of errors that
// are not explicitly known are never exposed.
func Classify(err error, redactedPaths ...string) Failure {
	var failure Failure
	if errors.As(err, &failure) {
		return failure
	}

	if errors.Is(err, session.ErrModelUnavailable) {
		return Failure{
			Kind:    ModelUnavailableFailure,
			Message: ModelNotLoadedMessage,
			Cause:   err,
		}
	}

	var inferenceErr session.InferenceError
	if errors.As(err, &inferenceErr) {
		return Failure{
			Kind:    InferenceFailure,
			Message: redact(inferenceErr.Message, redactedPaths...),
			Cause:   err,
		}
	}

	var resourceErr artifact.ResourceError
	if errors.As(err, &resourceErr) {
		return Failure{
			Kind:    ResourceFailure,
			Message: redact(resourceErr.Message, redactedPaths...),
			Cause:   err,
		}
	}

	return Failure{
		Kind:    UnexpectedFailure,
		Message: UnexpectedMessage,
		Cause:   err,
	}
}
