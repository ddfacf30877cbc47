package nlb

import (
	"context"
	"testing"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	calls int

	describeLBsOut *elbv2.DescribeLoadBalancersOutput
	describeTGsOut *elbv2.DescribeTargetGroupsOutput

	createLBInput    *elbv2.CreateLoadBalancerInput
	modifyAttrsInput *elbv2.ModifyLoadBalancerAttributesInput
	createTGInput    *elbv2.CreateTargetGroupInput
	registerInput    *elbv2.RegisterTargetsInput
	modifyListenerIn *elbv2.ModifyListenerInput
	createListenerIn *elbv2.CreateListenerInput
}

func (f *fakeAPI) DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error) {
	f.calls++
	if f.describeLBsOut != nil {
		return f.describeLBsOut, nil
	}
	return &elbv2.DescribeLoadBalancersOutput{}, nil
}

func (f *fakeAPI) CreateLoadBalancer(ctx context.Context, params *elbv2.CreateLoadBalancerInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateLoadBalancerOutput, error) {
	f.calls++
	f.createLBInput = params
	return &elbv2.CreateLoadBalancerOutput{
		LoadBalancers: []types.LoadBalancer{{LoadBalancerName: params.Name}},
	}, nil
}

func (f *fakeAPI) DeleteLoadBalancer(ctx context.Context, params *elbv2.DeleteLoadBalancerInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteLoadBalancerOutput, error) {
	f.calls++
	return &elbv2.DeleteLoadBalancerOutput{}, nil
}

func (f *fakeAPI) ModifyLoadBalancerAttributes(ctx context.Context, params *elbv2.ModifyLoadBalancerAttributesInput, optFns ...func(*elbv2.Options)) (*elbv2.ModifyLoadBalancerAttributesOutput, error) {
	f.calls++
	f.modifyAttrsInput = params
	return &elbv2.ModifyLoadBalancerAttributesOutput{Attributes: params.Attributes}, nil
}

func (f *fakeAPI) DescribeTargetGroups(ctx context.Context, params *elbv2.DescribeTargetGroupsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error) {
	f.calls++
	if f.describeTGsOut != nil {
		return f.describeTGsOut, nil
	}
	return &elbv2.DescribeTargetGroupsOutput{}, nil
}

func (f *fakeAPI) CreateTargetGroup(ctx context.Context, params *elbv2.CreateTargetGroupInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateTargetGroupOutput, error) {
	f.calls++
	f.createTGInput = params
	return &elbv2.CreateTargetGroupOutput{
		TargetGroups: []types.TargetGroup{{TargetGroupName: params.Name}},
	}, nil
}

func (f *fakeAPI) DeleteTargetGroup(ctx context.Context, params *elbv2.DeleteTargetGroupInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteTargetGroupOutput, error) {
	f.calls++
	return &elbv2.DeleteTargetGroupOutput{}, nil
}

func (f *fakeAPI) RegisterTargets(ctx context.Context, params *elbv2.RegisterTargetsInput, optFns ...func(*elbv2.Options)) (*elbv2.RegisterTargetsOutput, error) {
	f.calls++
	f.registerInput = params
	return &elbv2.RegisterTargetsOutput{}, nil
}

func (f *fakeAPI) DeregisterTargets(ctx context.Context, params *elbv2.DeregisterTargetsInput, optFns ...func(*elbv2.Options)) (*elbv2.DeregisterTargetsOutput, error) {
	f.calls++
	return &elbv2.DeregisterTargetsOutput{}, nil
}

func (f *fakeAPI) DescribeListeners(ctx context.Context, params *elbv2.DescribeListenersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeListenersOutput, error) {
	f.calls++
	return &elbv2.DescribeListenersOutput{}, nil
}

func (f *fakeAPI) CreateListener(ctx context.Context, params *elbv2.CreateListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateListenerOutput, error) {
	f.calls++
	f.createListenerIn = params
	return &elbv2.CreateListenerOutput{
		Listeners: []types.Listener{{LoadBalancerArn: params.LoadBalancerArn}},
	}, nil
}

func (f *fakeAPI) DeleteListener(ctx context.Context, params *elbv2.DeleteListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteListenerOutput, error) {
	f.calls++
	return &elbv2.DeleteListenerOutput{}, nil
}

func (f *fakeAPI) ModifyListener(ctx context.Context, params *elbv2.ModifyListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.ModifyListenerOutput, error) {
	f.calls++
	f.modifyListenerIn = params
	return &elbv2.ModifyListenerOutput{
		Listeners: []types.Listener{{ListenerArn: params.ListenerArn}},
	}, nil
}

func newTestRegistry(t *testing.T, api API) *gateway.Registry {
	t.Helper()
	reg := gateway.NewRegistry()
	require.NoError(t, NewToolSet(api).RegisterTools(reg))
	return reg
}

func TestListLoadBalancers_FiltersNonNetworkTypes(t *testing.T) {
	api := &fakeAPI{describeLBsOut: &elbv2.DescribeLoadBalancersOutput{
		LoadBalancers: []types.LoadBalancer{
			{LoadBalancerName: aws.String("app-lb"), Type: types.LoadBalancerTypeEnumApplication},
			{LoadBalancerName: aws.String("net-lb"), Type: types.LoadBalancerTypeEnumNetwork},
			{LoadBalancerName: aws.String("gw-lb"), Type: types.LoadBalancerTypeEnumGateway},
		},
	}}
	reg := newTestRegistry(t, api)

	env, err := reg.Invoke(context.Background(), "list_load_balancers", nil)
	require.NoError(t, err)

	nlbs := env.Data.([]types.LoadBalancer)
	require.Len(t, nlbs, 1)
	assert.Equal(t, "net-lb", *nlbs[0].LoadBalancerName)
}

func TestDescribeLoadBalancer_NotFound(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "describe_load_balancer", map[string]interface{}{
		"load_balancer_arn": "arn:lb/missing",
	})
	require.Error(t, err)
	assert.True(t, gateway.IsNotFound(err))
}

func TestCreateLoadBalancer_Defaults(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_load_balancer", map[string]interface{}{
		"name":    "edge",
		"subnets": []interface{}{"subnet-1", "subnet-2"},
	})
	require.NoError(t, err)

	in := api.createLBInput
	assert.Equal(t, types.LoadBalancerSchemeEnumInternetFacing, in.Scheme)
	assert.Equal(t, types.LoadBalancerTypeEnumNetwork, in.Type)
	assert.Equal(t, types.IpAddressTypeIpv4, in.IpAddressType)
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, in.Subnets)
}

func TestModifyLoadBalancerAttributes_SortedList(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "modify_load_balancer_attributes", map[string]interface{}{
		"load_balancer_arn": "arn:lb/edge",
		"attributes": map[string]interface{}{
			"load_balancing.cross_zone.enabled": "true",
			"deletion_protection.enabled":       "false",
		},
	})
	require.NoError(t, err)

	attrs := api.modifyAttrsInput.Attributes
	require.Len(t, attrs, 2)
	assert.Equal(t, "deletion_protection.enabled", *attrs[0].Key)
	assert.Equal(t, "load_balancing.cross_zone.enabled", *attrs[1].Key)
}

func TestListTargetGroups_FiltersAlbProtocols(t *testing.T) {
	api := &fakeAPI{describeTGsOut: &elbv2.DescribeTargetGroupsOutput{
		TargetGroups: []types.TargetGroup{
			{TargetGroupName: aws.String("web"), Protocol: types.ProtocolEnumHttp},
			{TargetGroupName: aws.String("tcp"), Protocol: types.ProtocolEnumTcp},
			{TargetGroupName: aws.String("dns"), Protocol: types.ProtocolEnumUdp},
			{TargetGroupName: aws.String("secure-web"), Protocol: types.ProtocolEnumHttps},
			{TargetGroupName: aws.String("mixed"), Protocol: types.ProtocolEnumTcpUdp},
		},
	}}
	reg := newTestRegistry(t, api)

	env, err := reg.Invoke(context.Background(), "list_target_groups", nil)
	require.NoError(t, err)

	groups := env.Data.([]types.TargetGroup)
	require.Len(t, groups, 3)
	assert.Equal(t, "tcp", *groups[0].TargetGroupName)
	assert.Equal(t, "dns", *groups[1].TargetGroupName)
	assert.Equal(t, "mixed", *groups[2].TargetGroupName)
}

func TestCreateTargetGroup_HealthCheckOptional(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_target_group", map[string]interface{}{
		"name":     "tcp-80",
		"protocol": "TCP",
		"port":     float64(80),
		"vpc_id":   "vpc-1",
	})
	require.NoError(t, err)

	in := api.createTGInput
	assert.Equal(t, types.ProtocolEnumTcp, in.Protocol)
	assert.Equal(t, int32(80), *in.Port)
	assert.Equal(t, types.TargetTypeEnumInstance, in.TargetType)
	assert.Empty(t, in.HealthCheckProtocol)
	assert.Nil(t, in.HealthCheckPort)
}

func TestRegisterTargets_ObjectConversion(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	env, err := reg.Invoke(context.Background(), "register_targets", map[string]interface{}{
		"target_group_arn": "arn:tg/tcp-80",
		"targets": []interface{}{
			map[string]interface{}{"Id": "i-1", "Port": float64(8080)},
			map[string]interface{}{"Id": "i-2"},
		},
	})
	require.NoError(t, err)

	targets := api.registerInput.Targets
	require.Len(t, targets, 2)
	assert.Equal(t, "i-1", *targets[0].Id)
	assert.Equal(t, int32(8080), *targets[0].Port)
	assert.Nil(t, targets[1].Port)

	assert.Equal(t, "Targets registration initiated", env.Data.(map[string]interface{})["message"])
}

func TestRegisterTargets_MissingIdRejected(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "register_targets", map[string]interface{}{
		"target_group_arn": "arn:tg/tcp-80",
		"targets": []interface{}{
			map[string]interface{}{"Port": float64(8080)},
		},
	})
	require.Error(t, err)
	assert.True(t, gateway.IsValidation(err))
	assert.Zero(t, api.calls)
}

func TestCreateListener_ActionConversion(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "create_listener", map[string]interface{}{
		"load_balancer_arn": "arn:lb/edge",
		"protocol":          "TCP",
		"port":              float64(443),
		"default_actions": []interface{}{
			map[string]interface{}{"Type": "forward", "TargetGroupArn": "arn:tg/tcp-80"},
		},
	})
	require.NoError(t, err)

	in := api.createListenerIn
	require.Len(t, in.DefaultActions, 1)
	assert.Equal(t, types.ActionTypeEnumForward, in.DefaultActions[0].Type)
	assert.Equal(t, "arn:tg/tcp-80", *in.DefaultActions[0].TargetGroupArn)
}

func TestModifyListener_PartialUpdate(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	_, err := reg.Invoke(context.Background(), "modify_listener", map[string]interface{}{
		"listener_arn": "arn:listener/1",
		"port":         float64(8443),
	})
	require.NoError(t, err)

	in := api.modifyListenerIn
	assert.Equal(t, int32(8443), *in.Port)
	assert.Empty(t, in.Protocol)
	assert.Nil(t, in.DefaultActions)
}
