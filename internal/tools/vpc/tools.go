// Package vpc exposes VPC and subnet management as gateway tools.
package vpc

import (
	"context"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// API is the slice of the EC2 control plane this tool set consumes.
type API interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	CreateVpc(ctx context.Context, params *ec2.CreateVpcInput, optFns ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error)
	AssociateVpcCidrBlock(ctx context.Context, params *ec2.AssociateVpcCidrBlockInput, optFns ...func(*ec2.Options)) (*ec2.AssociateVpcCidrBlockOutput, error)
	DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error)
	ModifyVpcAttribute(ctx context.Context, params *ec2.ModifyVpcAttributeInput, optFns ...func(*ec2.Options)) (*ec2.ModifyVpcAttributeOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	CreateSubnet(ctx context.Context, params *ec2.CreateSubnetInput, optFns ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error)
	DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// ToolSet binds the VPC tools to a client.
type ToolSet struct {
	client API
}

// NewToolSet creates the VPC tool set.
func NewToolSet(client API) *ToolSet {
	return &ToolSet{client: client}
}

// RegisterTools registers all VPC and subnet tools with the gateway registry.
func (t *ToolSet) RegisterTools(reg *gateway.Registry) error {
	tools := []gateway.Tool{
		{
			Name:        "list_vpcs",
			Description: "List all VPCs",
			Handler:     t.listVpcs,
		},
		{
			Name:        "describe_vpc",
			Description: "Describe a specific VPC",
			Args: []gateway.ArgSpec{
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "ID of the VPC to describe"},
			},
			Handler: t.describeVpc,
		},
		{
			Name:        "create_vpc",
			Description: "Create a new VPC",
			Args: []gateway.ArgSpec{
				{Name: "cidr_block", Type: gateway.TypeString, Required: true, Description: "IPv4 CIDR block for the VPC"},
				{Name: "ipv6_support", Type: gateway.TypeBoolean, Description: "Associate an Amazon-provided IPv6 CIDR block", Default: false},
				{Name: "instance_tenancy", Type: gateway.TypeString, Description: "Instance tenancy (default or dedicated)", Default: "default"},
			},
			Handler: t.createVpc,
		},
		{
			Name:        "delete_vpc",
			Description: "Delete a VPC",
			Args: []gateway.ArgSpec{
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "ID of the VPC to delete"},
			},
			Handler: t.deleteVpc,
		},
		{
			Name:        "modify_vpc_attribute",
			Description: "Modify a VPC attribute",
			Args: []gateway.ArgSpec{
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "ID of the VPC to modify"},
				{Name: "enable_dns_support", Type: gateway.TypeBoolean, Description: "Enable or disable DNS resolution"},
				{Name: "enable_dns_hostnames", Type: gateway.TypeBoolean, Description: "Enable or disable DNS hostnames"},
			},
			Handler: t.modifyVpcAttribute,
		},
		{
			Name:        "list_subnets",
			Description: "List subnets optionally filtered by VPC",
			Args: []gateway.ArgSpec{
				{Name: "vpc_id", Type: gateway.TypeString, Description: "Limit results to subnets of this VPC"},
			},
			Handler: t.listSubnets,
		},
		{
			Name:        "create_subnet",
			Description: "Create a subnet within a VPC",
			Args: []gateway.ArgSpec{
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "VPC to create the subnet in"},
				{Name: "cidr_block", Type: gateway.TypeString, Required: true, Description: "IPv4 CIDR block for the subnet"},
				{Name: "availability_zone", Type: gateway.TypeString, Description: "Availability zone for the subnet"},
			},
			Handler: t.createSubnet,
		},
		{
			Name:        "delete_subnet",
			Description: "Delete a subnet",
			Args: []gateway.ArgSpec{
				{Name: "subnet_id", Type: gateway.TypeString, Required: true, Description: "ID of the subnet to delete"},
			},
			Handler: t.deleteSubnet,
		},
		{
			Name:        "create_tags",
			Description: "Apply tags to AWS resources",
			Args: []gateway.ArgSpec{
				{Name: "resource_ids", Type: gateway.TypeArray, Required: true, Description: "Resource IDs to tag"},
				{Name: "tags", Type: gateway.TypeObject, Required: true, Description: "Tags as key/value pairs"},
			},
			Handler: t.createTags,
		},
	}

	for _, tool := range tools {
		// create_tags is shared with the ec2 set. Whichever set registers
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
