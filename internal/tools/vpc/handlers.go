package vpc

import (
	"context"
	"errors"
	"fmt"

	"awsmcp/internal/awsutil"
	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
)

func (t *ToolSet) listVpcs(ctx context.Context, args gateway.Args) (interface{}, error) {
	out, err := t.client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return nil, err
	}
	return out.Vpcs, nil
}

func (t *ToolSet) describeVpc(ctx context.Context, args gateway.Args) (interface{}, error) {
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		VpcIds: []string{vpcID},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Vpcs) == 0 {
		return nil, gateway.NewNotFoundError("VPC", vpcID)
	}
	return out.Vpcs[0], nil
}

func (t *ToolSet) createVpc(ctx context.Context, args gateway.Args) (interface{}, error) {
	cidrBlock, err := args.String("cidr_block")
	if err != nil {
		return nil, err
	}
	ipv6Support, err := args.BoolOr("ipv6_support", false)
	if err != nil {
		return nil, err
	}
	tenancy, err := args.StringOr("instance_tenancy", "default")
	if err != nil {
		return nil, err
	}

	out, err := t.client.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:       aws.String(cidrBlock),
		InstanceTenancy: types.Tenancy(tenancy),
	})
	if err != nil {
		return nil, err
	}
	vpc := out.Vpc

	// The IPv6 association is a second dependent call with no rollback. A
	// failure here leaves the VPC created but only partially configured, so
	// the error must carry the new VPC ID for the caller to act on.
	if ipv6Support {
		vpcID := aws.ToString(vpc.VpcId)
		if _, assocErr := t.client.AssociateVpcCidrBlock(ctx, &ec2.AssociateVpcCidrBlockInput{
			VpcId:                       vpc.VpcId,
			AmazonProvidedIpv6CidrBlock: aws.Bool(true),
		}); assocErr != nil {
			var apiErr smithy.APIError
			if errors.As(assocErr, &apiErr) {
				return nil, &gateway.ProviderError{
					Code:    apiErr.ErrorCode(),
					Message: fmt.Sprintf("VPC %s was created but IPv6 CIDR association failed: %s", vpcID, apiErr.ErrorMessage()),
					Fault:   apiErr.ErrorFault().String(),
				}
			}
			return nil, fmt.Errorf("VPC %s was created but IPv6 CIDR association failed: %w", vpcID, assocErr)
		}
	}
	return vpc, nil
}

func (t *ToolSet) deleteVpc(ctx context.Context, args gateway.Args) (interface{}, error) {
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteVpc(ctx, &ec2.DeleteVpcInput{
		VpcId: aws.String(vpcID),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("VPC %s deletion initiated", vpcID)}, nil
}

func (t *ToolSet) modifyVpcAttribute(ctx context.Context, args gateway.Args) (interface{}, error) {
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}
	dnsSupport, err := args.OptionalBool("enable_dns_support")
	if err != nil {
		return nil, err
	}
	dnsHostnames, err := args.OptionalBool("enable_dns_hostnames")
	if err != nil {
		return nil, err
	}

	// Each attribute takes its own modify call. A supplied false is a real
	// update, only absent attributes are skipped.
	if dnsSupport != nil {
		if _, err := t.client.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
			VpcId:            aws.String(vpcID),
			EnableDnsSupport: &types.AttributeBooleanValue{Value: dnsSupport},
		}); err != nil {
			return nil, err
		}
	}
	if dnsHostnames != nil {
		if _, err := t.client.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
			VpcId:              aws.String(vpcID),
			EnableDnsHostnames: &types.AttributeBooleanValue{Value: dnsHostnames},
		}); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"message": "VPC attributes updated", "vpc_id": vpcID}, nil
}

func (t *ToolSet) listSubnets(ctx context.Context, args gateway.Args) (interface{}, error) {
	vpcID, err := args.OptionalString("vpc_id")
	if err != nil {
		return nil, err
	}

	input := &ec2.DescribeSubnetsInput{}
	if vpcID != nil {
		input.Filters = []types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{*vpcID}},
		}
	}

	out, err := t.client.DescribeSubnets(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Subnets, nil
}

func (t *ToolSet) createSubnet(ctx context.Context, args gateway.Args) (interface{}, error) {
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}
	cidrBlock, err := args.String("cidr_block")
	if err != nil {
		return nil, err
	}

	input := &ec2.CreateSubnetInput{
		VpcId:     aws.String(vpcID),
		CidrBlock: aws.String(cidrBlock),
	}
	if input.AvailabilityZone, err = args.OptionalString("availability_zone"); err != nil {
		return nil, err
	}

	out, err := t.client.CreateSubnet(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Subnet, nil
}

func (t *ToolSet) deleteSubnet(ctx context.Context, args gateway.Args) (interface{}, error) {
	subnetID, err := args.String("subnet_id")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
		SubnetId: aws.String(subnetID),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Subnet %s deletion initiated", subnetID)}, nil
}

func (t *ToolSet) createTags(ctx context.Context, args gateway.Args) (interface{}, error) {
	resourceIDs, err := args.StringSlice("resource_ids")
	if err != nil {
		return nil, err
	}
	tags, err := args.StringMap("tags")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: resourceIDs,
		Tags:      awsutil.TagList(tags),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": "Tags applied", "resources": resourceIDs}, nil
}
