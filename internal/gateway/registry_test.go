package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(calls *int) Tool {
	return Tool{
		Name:        "echo",
		Description: "Echo a value back",
		Args: []ArgSpec{
			{Name: "value", Type: TypeString, Required: true, Description: "Value to echo"},
		},
		Handler: func(ctx context.Context, args Args) (interface{}, error) {
			*calls++
			value, err := args.String("value")
			if err != nil {
				return nil, err
			}
			return value, nil
		},
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	var calls int

	require.NoError(t, reg.Register(echoTool(&calls)))

	err := reg.Register(echoTool(&calls))
	var dup *DuplicateToolError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "echo", dup.Name)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_InvokeUnknownTool(t *testing.T) {
	reg := NewRegistry()
	var calls int
	require.NoError(t, reg.Register(echoTool(&calls)))

	env, err := reg.Invoke(context.Background(), "no_such_tool", nil)
	assert.Nil(t, env)
	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no_such_tool", unknown.Name)
	assert.Zero(t, calls, "no handler may run for an unknown tool")
}

func TestRegistry_InvokeEchoSuccess(t *testing.T) {
	reg := NewRegistry()
	var calls int
	require.NoError(t, reg.Register(echoTool(&calls)))

	env, err := reg.Invoke(context.Background(), "echo", map[string]interface{}{"value": "hi"})
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, ContentTypeJSON, env.Type)
	assert.Equal(t, "hi", env.Data)
	assert.Equal(t, 1, calls)
}

func TestRegistry_MissingRequiredArgumentShortCircuits(t *testing.T) {
	reg := NewRegistry()
	var calls int
	require.NoError(t, reg.Register(echoTool(&calls)))

	env, err := reg.Invoke(context.Background(), "echo", map[string]interface{}{})
	assert.Nil(t, env)
	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "value", missing.Arg)
	assert.Zero(t, calls, "handler must not run when a required argument is absent")
}

func TestRegistry_NotFoundPassesThroughUnchanged(t *testing.T) {
	reg := NewRegistry()
	notFound := NewNotFoundError("instance", "i-0abc")
	require.NoError(t, reg.Register(Tool{
		Name:        "describe_instance",
		Description: "Describe an EC2 instance",
		Handler: func(ctx context.Context, args Args) (interface{}, error) {
			return nil, notFound
		},
	}))

	env, err := reg.Invoke(context.Background(), "describe_instance", nil)
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Same(t, notFound, err, "domain errors must not be re-wrapped")
	assert.Equal(t, "instance i-0abc not found", err.Error())
}

func TestRegistry_ProviderErrorSerializesDiagnostic(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Tool{
		Name:        "failing",
		Description: "Always fails with a provider error",
		Handler: func(ctx context.Context, args Args) (interface{}, error) {
			return nil, &smithy.GenericAPIError{
				Code:    "X",
				Message: "Y",
				Fault:   smithy.FaultClient,
			}
		},
	}))

	env, err := reg.Invoke(context.Background(), "failing", nil)
	assert.Nil(t, env)
	require.Error(t, err)

	var decoded ProviderError
	require.NoError(t, json.Unmarshal([]byte(err.Error()), &decoded), "provider error message must be structured JSON")
	assert.Equal(t, "X", decoded.Code)
	assert.Equal(t, "Y", decoded.Message)
}

func TestRegistry_TransportErrorKeepsPlainMessage(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Tool{
		Name:        "flaky",
		Description: "Always fails with a plain error",
		Handler: func(ctx context.Context, args Args) (interface{}, error) {
			return nil, errors.New("boom")
		},
	}))

	env, err := reg.Invoke(context.Background(), "flaky", nil)
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestRegistry_HandlerValidationErrorNotNormalized(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Tool{
		Name:        "picky",
		Description: "Rejects its argument shape",
		Args: []ArgSpec{
			{Name: "tags", Type: TypeObject, Required: true},
		},
		Handler: func(ctx context.Context, args Args) (interface{}, error) {
			_, err := args.StringMap("tags")
			return nil, err
		},
	}))

	_, err := reg.Invoke(context.Background(), "picky", map[string]interface{}{"tags": "not-an-object"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestRegistry_ToolsPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	noop := func(ctx context.Context, args Args) (interface{}, error) { return nil, nil }
	for _, name := range []string{"c_tool", "a_tool", "b_tool"} {
		require.NoError(t, reg.Register(Tool{Name: name, Handler: noop}))
	}

	var names []string
	for _, tool := range reg.Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"c_tool", "a_tool", "b_tool"}, names)
}

func TestNormalize_WrapsAPIErrorOnce(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "Throttling", Message: "slow down", Fault: smithy.FaultServer}

	normalized := Normalize(logSubsystem, "test-invocation", "some_tool", apiErr)
	var provErr *ProviderError
	require.ErrorAs(t, normalized, &provErr)
	assert.Equal(t, "Throttling", provErr.Code)

	// A second pass must not re-wrap.
	again := Normalize(logSubsystem, "test-invocation", "some_tool", normalized)
	assert.Same(t, normalized, again)
}
