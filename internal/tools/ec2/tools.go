// Package ec2 exposes EC2 instance management as gateway tools.
package ec2

import (
	"context"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// API is the slice of the EC2 control plane this tool set consumes.
// Narrowing the client to the operations actually called keeps handlers
// testable against hand-written fakes.
type API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	RebootInstances(ctx context.Context, params *ec2.RebootInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RebootInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	CreateImage(ctx context.Context, params *ec2.CreateImageInput, optFns ...func(*ec2.Options)) (*ec2.CreateImageOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// ToolSet binds the EC2 instance tools to a client.
type ToolSet struct {
	client API
}

// NewToolSet creates the EC2 tool set.
func NewToolSet(client API) *ToolSet {
	return &ToolSet{client: client}
}

// RegisterTools registers all EC2 instance tools with the gateway registry.
func (t *ToolSet) RegisterTools(reg *gateway.Registry) error {
	tools := []gateway.Tool{
		{
			Name:        "list_instances",
			Description: "List EC2 instances",
			Args: []gateway.ArgSpec{
				{Name: "state", Type: gateway.TypeString, Description: "Filter by instance state name (e.g. running, stopped)"},
			},
			Handler: t.listInstances,
		},
		{
			Name:        "describe_instance",
			Description: "Describe an EC2 instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "ID of the instance to describe"},
			},
			Handler: t.describeInstance,
		},
		{
			Name:        "start_instance",
			Description: "Start an EC2 instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "ID of the instance to start"},
			},
			Handler: t.startInstance,
		},
		{
			Name:        "stop_instance",
			Description: "Stop an EC2 instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "ID of the instance to stop"},
				{Name: "force", Type: gateway.TypeBoolean, Description: "Force the instance to stop", Default: false},
			},
			Handler: t.stopInstance,
		},
		{
			Name:        "reboot_instance",
			Description: "Reboot an EC2 instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "ID of the instance to reboot"},
			},
			Handler: t.rebootInstance,
		},
		{
			Name:        "terminate_instance",
			Description: "Terminate an EC2 instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "ID of the instance to terminate"},
			},
			Handler: t.terminateInstance,
		},
		{
			Name:        "run_instances",
			Description: "Launch new EC2 instances",
			Args: []gateway.ArgSpec{
				{Name: "image_id", Type: gateway.TypeString, Required: true, Description: "AMI to launch from"},
				{Name: "instance_type", Type: gateway.TypeString, Required: true, Description: "Instance type (e.g. t3.micro)"},
				{Name: "key_name", Type: gateway.TypeString, Description: "Key pair name"},
				{Name: "min_count", Type: gateway.TypeInteger, Description: "Minimum number of instances", Default: 1},
				{Name: "max_count", Type: gateway.TypeInteger, Description: "Maximum number of instances", Default: 1},
				{Name: "subnet_id", Type: gateway.TypeString, Description: "Subnet to launch into"},
				{Name: "security_group_ids", Type: gateway.TypeArray, Description: "Security group IDs"},
				{Name: "user_data", Type: gateway.TypeString, Description: "User data script"},
				{Name: "iam_instance_profile", Type: gateway.TypeString, Description: "IAM instance profile name"},
			},
			Handler: t.runInstances,
		},
		{
			Name:        "create_image",
			Description: "Create an AMI from an instance",
			Args: []gateway.ArgSpec{
				{Name: "instance_id", Type: gateway.TypeString, Required: true, Description: "Source instance ID"},
				{Name: "name", Type: gateway.TypeString, Required: true, Description: "Name for the new image"},
				{Name: "description", Type: gateway.TypeString, Description: "Description for the new image"},
				{Name: "no_reboot", Type: gateway.TypeBoolean, Description: "Do not reboot the instance before imaging", Default: false},
			},
			Handler: t.createImage,
		},
		{
			Name:        "create_tags",
			Description: "Apply tags to EC2 resources",
			Args: []gateway.ArgSpec{
				{Name: "resource_ids", Type: gateway.TypeArray, Required: true, Description: "Resource IDs to tag"},
				{Name: "tags", Type: gateway.TypeObject, Required: true, Description: "Tags as key/value pairs"},
			},
			Handler: t.createTags,
		},
	}

	for _, tool := range tools {
		// create_tags is shared with the vpc set. Whichever set registers
		// first owns it; the handlers are interchangeable.
		if tool.Name == "create_tags" && reg.Contains(tool.Name) {
			continue
		}
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
