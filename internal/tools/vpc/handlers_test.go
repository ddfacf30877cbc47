package vpc

import (
	"context"
	"encoding/json"
	"testing"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	calls int

	describeVpcsOut *ec2.DescribeVpcsOutput

	createVpcInput    *ec2.CreateVpcInput
	associateInput    *ec2.AssociateVpcCidrBlockInput
	associateErr      error
	modifyInputs      []*ec2.ModifyVpcAttributeInput
	describeSubnetsIn *ec2.DescribeSubnetsInput
	createSubnetInput *ec2.CreateSubnetInput
}

func (f *fakeAPI) DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	f.calls++
	if f.describeVpcsOut != nil {
		return f.describeVpcsOut, nil
	}
	return &ec2.DescribeVpcsOutput{}, nil
}

func (f *fakeAPI) CreateVpc(ctx context.Context, params *ec2.CreateVpcInput, optFns ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error) {
	f.calls++
	f.createVpcInput = params
	return &ec2.CreateVpcOutput{
		Vpc: &types.Vpc{VpcId: aws.String("vpc-new"), CidrBlock: params.CidrBlock},
	}, nil
}

func (f *fakeAPI) AssociateVpcCidrBlock(ctx context.Context, params *ec2.AssociateVpcCidrBlockInput, optFns ...func(*ec2.Options)) (*ec2.AssociateVpcCidrBlockOutput, error) {
	f.calls++
	f.associateInput = params
	if f.associateErr != nil {
		return nil, f.associateErr
	}
	return &ec2.AssociateVpcCidrBlockOutput{}, nil
}

func (f *fakeAPI) DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error) {
	f.calls++
	return &ec2.DeleteVpcOutput{}, nil
}

func (f *fakeAPI) ModifyVpcAttribute(ctx context.Context, params *ec2.ModifyVpcAttributeInput, optFns ...func(*ec2.Options)) (*ec2.ModifyVpcAttributeOutput, error) {
	f.calls++
	f.modifyInputs = append(f.modifyInputs, params)
	return &ec2.ModifyVpcAttributeOutput{}, nil
}

func (f *fakeAPI) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	f.calls++
	f.describeSubnetsIn = params
	return &ec2.DescribeSubnetsOutput{}, nil
}

func (f *fakeAPI) CreateSubnet(ctx context.Context, params *ec2.CreateSubnetInput, optFns ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error) {
	f.calls++
	f.createSubnetInput = params
	return &ec2.CreateSubnetOutput{
		Subnet: &types.Subnet{SubnetId: aws.String("subnet-new")},
	}, nil
}

func (f *fakeAPI) DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error) {
	f.calls++
	return &ec2.DeleteSubnetOutput{}, nil
}

func (f *fakeAPI) CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error) {
	f.calls++
	return &ec2.CreateTagsOutput{}, nil
}

func newTestRegistry(t *testing.T, api API) *gateway.Registry {
	t.Helper()
	reg := gateway.NewRegistry()
	require.NoError(t, NewToolSet(api).RegisterTools(reg))
	return reg
}

func TestDescribeVpc_NotFound(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "describe_vpc", map[string]interface{}{"vpc_id": "vpc-missing"})
	require.Error(t, err)
	assert.True(t, gateway.IsNotFound(err))
	assert.Equal(t, "VPC vpc-missing not found", err.Error())
}

func TestCreateVpc_WithoutIpv6SkipsAssociation(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	env, err := reg.Invoke(context.Background(), "create_vpc", map[string]interface{}{
		"cidr_block": "10.0.0.0/16",
	})
	require.NoError(t, err)

	assert.Equal(t, types.TenancyDefault, api.createVpcInput.InstanceTenancy)
	assert.Nil(t, api.associateInput)
	assert.Equal(t, "vpc-new", *env.Data.(*types.Vpc).VpcId)
}

func TestCreateVpc_Ipv6TriggersAssociation(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_vpc", map[string]interface{}{
		"cidr_block":   "10.0.0.0/16",
		"ipv6_support": true,
	})
	require.NoError(t, err)

	require.NotNil(t, api.associateInput)
	assert.Equal(t, "vpc-new", *api.associateInput.VpcId)
	assert.True(t, *api.associateInput.AmazonProvidedIpv6CidrBlock)
}

func TestCreateVpc_AssociationFailureReportsVpcID(t *testing.T) {
	api := &fakeAPI{associateErr: &smithy.GenericAPIError{
		Code:    "InvalidVpcID.NotFound",
		Message: "association rejected",
		Fault:   smithy.FaultClient,
	}}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_vpc", map[string]interface{}{
		"cidr_block":   "10.0.0.0/16",
		"ipv6_support": true,
	})
	require.Error(t, err)

	var provErr gateway.ProviderError
	require.NoError(t, json.Unmarshal([]byte(err.Error()), &provErr))
	assert.Equal(t, "InvalidVpcID.NotFound", provErr.Code)
	assert.Contains(t, provErr.Message, "vpc-new")
	assert.Contains(t, provErr.Message, "association rejected")
}

func TestModifyVpcAttribute(t *testing.T) {
	t.Run("no attributes means no modify calls", func(t *testing.T) {
		api := &fakeAPI{}
		reg := newTestRegistry(t, api)

		env, err := reg.Invoke(context.Background(), "modify_vpc_attribute", map[string]interface{}{"vpc_id": "vpc-1"})
		require.NoError(t, err)
		assert.Empty(t, api.modifyInputs)
		assert.Equal(t, "VPC attributes updated", env.Data.(map[string]interface{})["message"])
	})

	t.Run("supplied false still issues a call", func(t *testing.T) {
		api := &fakeAPI{}
		reg := newTestRegistry(t, api)

		_, err := reg.Invoke(context.Background(), "modify_vpc_attribute", map[string]interface{}{
			"vpc_id":             "vpc-1",
			"enable_dns_support": false,
		})
		require.NoError(t, err)

		require.Len(t, api.modifyInputs, 1)
		require.NotNil(t, api.modifyInputs[0].EnableDnsSupport)
		assert.False(t, *api.modifyInputs[0].EnableDnsSupport.Value)
		assert.Nil(t, api.modifyInputs[0].EnableDnsHostnames)
	})

	t.Run("both attributes issue two sequential calls", func(t *testing.T) {
		api := &fakeAPI{}
		reg := newTestRegistry(t, api)

		_, err := reg.Invoke(context.Background(), "modify_vpc_attribute", map[string]interface{}{
			"vpc_id":               "vpc-1",
			"enable_dns_support":   true,
			"enable_dns_hostnames": true,
		})
		require.NoError(t, err)

		require.Len(t, api.modifyInputs, 2)
		assert.NotNil(t, api.modifyInputs[0].EnableDnsSupport)
		assert.NotNil(t, api.modifyInputs[1].EnableDnsHostnames)
	})
}

func TestListSubnets_VpcFilter(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "list_subnets", map[string]interface{}{"vpc_id": "vpc-1"})
	require.NoError(t, err)

	require.Len(t, api.describeSubnetsIn.Filters, 1)
	assert.Equal(t, "vpc-id", *api.describeSubnetsIn.Filters[0].Name)
	assert.Equal(t, []string{"vpc-1"}, api.describeSubnetsIn.Filters[0].Values)
}

func TestCreateSubnet_OptionalZoneOmitted(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_subnet", map[string]interface{}{
		"vpc_id":     "vpc-1",
		"cidr_block": "10.0.1.0/24",
	})
	require.NoError(t, err)
	assert.Nil(t, api.createSubnetInput.AvailabilityZone)
}

func TestDeleteSubnet_StatusMessage(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	env, err := reg.Invoke(context.Background(), "delete_subnet", map[string]interface{}{"subnet_id": "subnet-9"})
	require.NoError(t, err)
	assert.Equal(t, "Subnet subnet-9 deletion initiated", env.Data.(map[string]interface{})["message"])
}

func TestCreateVpc_MissingCidrSkipsProviderCall(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_vpc", nil)
	require.Error(t, err)
	assert.True(t, gateway.IsValidation(err))
	assert.Zero(t, api.calls)
}
