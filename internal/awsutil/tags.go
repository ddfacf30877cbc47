// Package awsutil holds small request-building helpers shared by the tool
// sets that front the EC2 control plane.
package awsutil

import (
	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// TagList converts a tag mapping into the key/value pair list the EC2 API
// expects. Keys are rendered in sorted order so built requests are
// deterministic; the provider does not care about tag order.
func TagList(tags map[string]string) []types.Tag {
	out := make([]types.Tag, 0, len(tags))
	for _, key := range gateway.SortedKeys(tags) {
		out = append(out, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(tags[key]),
		})
	}
	return out
}

// TagSpecifications wraps a tag mapping for resource-creating calls that
// take tag specifications keyed by resource type. Returns nil for an empty
// mapping so the field is omitted from the request.
func TagSpecifications(resourceType types.ResourceType, tags map[string]string) []types.TagSpecification {
	if len(tags) == 0 {
		return nil
	}
	return []types.TagSpecification{
		{
			ResourceType: resourceType,
			Tags:         TagList(tags),
		},
	}
}
