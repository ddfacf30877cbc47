package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_FalseAndZeroArePresent(t *testing.T) {
	// Regression test against naive truthiness: a caller-supplied false or 0
	// must be treated as present and included verbatim.
	args := NewArgs(map[string]interface{}{
		"force":     false,
		"min_count": float64(0),
	})

	force, err := args.OptionalBool("force")
	require.NoError(t, err)
	require.NotNil(t, force)
	assert.False(t, *force)

	minCount, err := args.OptionalInt32("min_count")
	require.NoError(t, err)
	require.NotNil(t, minCount)
	assert.Equal(t, int32(0), *minCount)
}

func TestArgs_AbsentOptionalIsNil(t *testing.T) {
	args := NewArgs(nil)

	s, err := args.OptionalString("subnet_id")
	require.NoError(t, err)
	assert.Nil(t, s)

	b, err := args.OptionalBool("force")
	require.NoError(t, err)
	assert.Nil(t, b)

	n, err := args.OptionalInt64("asn")
	require.NoError(t, err)
	assert.Nil(t, n)

	list, err := args.OptionalStringSlice("ids")
	require.NoError(t, err)
	assert.Nil(t, list)

	m, err := args.OptionalStringMap("tags")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestArgs_RequiredString(t *testing.T) {
	args := NewArgs(map[string]interface{}{"instance_id": "i-0abc", "bad": 7})

	value, err := args.String("instance_id")
	require.NoError(t, err)
	assert.Equal(t, "i-0abc", value)

	_, err = args.String("missing")
	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "missing", missing.Arg)

	_, err = args.String("bad")
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bad", invalid.Arg)
}

func TestArgs_Fallbacks(t *testing.T) {
	args := NewArgs(map[string]interface{}{"tenancy": "dedicated"})

	tenancy, err := args.StringOr("tenancy", "default")
	require.NoError(t, err)
	assert.Equal(t, "dedicated", tenancy)

	scheme, err := args.StringOr("scheme", "internet-facing")
	require.NoError(t, err)
	assert.Equal(t, "internet-facing", scheme)

	noReboot, err := args.BoolOr("no_reboot", false)
	require.NoError(t, err)
	assert.False(t, noReboot)

	count, err := args.Int32Or("min_count", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), count)
}

func TestArgs_IntegerConversions(t *testing.T) {
	args := NewArgs(map[string]interface{}{
		"port":       float64(8080),
		"asn":        float64(64512),
		"fractional": 1.5,
		"huge":       float64(1 << 40),
	})

	port, err := args.Int32("port")
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)

	asn, err := args.Int64("asn")
	require.NoError(t, err)
	assert.Equal(t, int64(64512), asn)

	_, err = args.Int32("fractional")
	assert.True(t, IsValidation(err))

	_, err = args.Int32("huge")
	assert.True(t, IsValidation(err))
}

func TestArgs_StringSlice(t *testing.T) {
	args := NewArgs(map[string]interface{}{
		"subnets": []interface{}{"subnet-1", "subnet-2"},
		"mixed":   []interface{}{"subnet-1", 5},
		"scalar":  "subnet-1",
	})

	subnets, err := args.StringSlice("subnets")
	require.NoError(t, err)
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, subnets)

	_, err = args.StringSlice("mixed")
	assert.True(t, IsValidation(err))

	_, err = args.StringSlice("scalar")
	assert.True(t, IsValidation(err))

	_, err = args.StringSlice("missing")
	var missing *MissingArgumentError
	assert.ErrorAs(t, err, &missing)
}

func TestArgs_StringMap(t *testing.T) {
	args := NewArgs(map[string]interface{}{
		"tags":     map[string]interface{}{"Name": "web", "Env": "prod"},
		"bad_tags": map[string]interface{}{"Count": 3},
		"scalar":   "oops",
	})

	tags, err := args.StringMap("tags")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Name": "web", "Env": "prod"}, tags)

	_, err = args.StringMap("bad_tags")
	assert.True(t, IsValidation(err))

	_, err = args.StringMap("scalar")
	assert.True(t, IsValidation(err))
}

func TestArgs_ObjectSlice(t *testing.T) {
	args := NewArgs(map[string]interface{}{
		"targets": []interface{}{
			map[string]interface{}{"Id": "i-1", "Port": float64(80)},
			map[string]interface{}{"Id": "i-2"},
		},
		"bad": []interface{}{"i-1"},
	})

	targets, err := args.ObjectSlice("targets")
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "i-1", targets[0]["Id"])

	_, err = args.ObjectSlice("bad")
	assert.True(t, IsValidation(err))
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Empty(t, SortedKeys(nil))
}
