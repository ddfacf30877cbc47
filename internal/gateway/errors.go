package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	"awsmcp/pkg/logging"

	"github.com/aws/smithy-go"
)

// DuplicateToolError reports a second registration under an existing name.
// Registration is write-once per name; hitting this is a programming error.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %s is already registered", e.Name)
}

// UnknownToolError reports an invocation of a name absent from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %s", e.Name)
}

// MissingArgumentError reports a required argument the caller did not supply.
type MissingArgumentError struct {
	Arg string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s argument is required", e.Arg)
}

// InvalidArgumentError reports an argument that is present but structurally
// malformed (wrong type, non-integral number, ...).
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s argument: %s", e.Arg, e.Reason)
}

// IsValidation checks whether an error is a caller-input validation error.
// Validation errors are detected before any provider call and are always
// recoverable by correcting the input.
func IsValidation(err error) bool {
	var missing *MissingArgumentError
	var invalid *InvalidArgumentError
	return errors.As(err, &missing) || errors.As(err, &invalid)
}

// NotFoundError is the domain error raised by describe-style handlers when a
// successful provider response contains zero matching resources. The message
// is caller-facing and passes through normalization unchanged.
type NotFoundError struct {
	// ResourceType categorizes the resource ("instance", "vpc", "load balancer", ...)
	ResourceType string

	// ResourceName is the identifier that matched nothing.
	ResourceName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ResourceName)
}

// IsNotFound checks if an error is a NotFoundError using error unwrapping.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NewNotFoundError creates a NotFoundError for the given resource.
func NewNotFoundError(resourceType, resourceName string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceName: resourceName,
	}
}

// ProviderError carries the structured diagnostic of a provider-rejected
// request. Its message is the serialized payload so the caller keeps the
// full structure, matching the provider error contract.
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Fault   string `json:"fault,omitempty"`
}

func (e *ProviderError) Error() string {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(payload)
}

// Normalize classifies a handler failure into the gateway error taxonomy and
// returns the single error delivered to the caller. Structured provider
// failures keep their diagnostic payload; domain errors pass through
// unchanged; everything else surfaces with its plain text. The full detail is
// logged here regardless of what the caller ends up seeing.
//
// Normalize never fails: any input produces exactly one error value.
func Normalize(subsystem, invocationID, toolName string, err error) error {
	if IsNotFound(err) {
		logging.Error(subsystem, err, "Tool %s failed (invocation %s): resource not found", toolName, invocationID)
		return err
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) {
		logging.Error(subsystem, err, "Tool %s failed (invocation %s): provider error %s", toolName, invocationID, provErr.Code)
		return provErr
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		normalized := &ProviderError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Fault:   apiErr.ErrorFault().String(),
		}
		logging.Error(subsystem, err, "Tool %s failed (invocation %s): provider error %s (%s)",
			toolName, invocationID, normalized.Code, normalized.Fault)
		return normalized
	}

	logging.Error(subsystem, err, "Tool %s failed (invocation %s): transport error", toolName, invocationID)
	return err
}
