// Package nlb exposes Network Load Balancer management as gateway tools.
package nlb

import (
	"context"

	"awsmcp/internal/gateway"

	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// API is the slice of the ELBv2 control plane this tool set consumes.
type API interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	CreateLoadBalancer(ctx context.Context, params *elbv2.CreateLoadBalancerInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateLoadBalancerOutput, error)
	DeleteLoadBalancer(ctx context.Context, params *elbv2.DeleteLoadBalancerInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteLoadBalancerOutput, error)
	ModifyLoadBalancerAttributes(ctx context.Context, params *elbv2.ModifyLoadBalancerAttributesInput, optFns ...func(*elbv2.Options)) (*elbv2.ModifyLoadBalancerAttributesOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elbv2.DescribeTargetGroupsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error)
	CreateTargetGroup(ctx context.Context, params *elbv2.CreateTargetGroupInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateTargetGroupOutput, error)
	DeleteTargetGroup(ctx context.Context, params *elbv2.DeleteTargetGroupInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteTargetGroupOutput, error)
	RegisterTargets(ctx context.Context, params *elbv2.RegisterTargetsInput, optFns ...func(*elbv2.Options)) (*elbv2.RegisterTargetsOutput, error)
	DeregisterTargets(ctx context.Context, params *elbv2.DeregisterTargetsInput, optFns ...func(*elbv2.Options)) (*elbv2.DeregisterTargetsOutput, error)
	DescribeListeners(ctx context.Context, params *elbv2.DescribeListenersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeListenersOutput, error)
	CreateListener(ctx context.Context, params *elbv2.CreateListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.CreateListenerOutput, error)
	DeleteListener(ctx context.Context, params *elbv2.DeleteListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.DeleteListenerOutput, error)
	ModifyListener(ctx context.Context, params *elbv2.ModifyListenerInput, optFns ...func(*elbv2.Options)) (*elbv2.ModifyListenerOutput, error)
}

// ToolSet binds the Network Load Balancer tools to a client.
type ToolSet struct {
	client API
}

// NewToolSet creates the Network Load Balancer tool set.
func NewToolSet(client API) *ToolSet {
	return &ToolSet{client: client}
}

// RegisterTools registers all Network Load Balancer tools with the gateway
// registry.
func (t *ToolSet) RegisterTools(reg *gateway.Registry) error {
	tools := []gateway.Tool{
		{
			Name:        "list_load_balancers",
			Description: "List Network Load Balancers",
			Handler:     t.listLoadBalancers,
		},
		{
			Name:        "describe_load_balancer",
			Description: "Describe a Network Load Balancer",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the load balancer to describe"},
			},
			Handler: t.describeLoadBalancer,
		},
		{
			Name:        "create_load_balancer",
			Description: "Create a Network Load Balancer",
			Args: []gateway.ArgSpec{
				{Name: "name", Type: gateway.TypeString, Required: true, Description: "Name of the load balancer"},
				{Name: "subnets", Type: gateway.TypeArray, Required: true, Description: "Subnets to attach, one per availability zone"},
				{Name: "scheme", Type: gateway.TypeString, Description: "internet-facing or internal", Default: "internet-facing"},
				{Name: "ip_address_type", Type: gateway.TypeString, Description: "ipv4 or dualstack", Default: "ipv4"},
				{Name: "type", Type: gateway.TypeString, Description: "Load balancer type", Default: "network"},
			},
			Handler: t.createLoadBalancer,
		},
		{
			Name:        "delete_load_balancer",
			Description: "Delete a Network Load Balancer",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the load balancer to delete"},
			},
			Handler: t.deleteLoadBalancer,
		},
		{
			Name:        "modify_load_balancer_attributes",
			Description: "Update load balancer attributes",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the load balancer to update"},
				{Name: "attributes", Type: gateway.TypeObject, Required: true, Description: "Attributes as key/value pairs"},
			},
			Handler: t.modifyLoadBalancerAttributes,
		},
		{
			Name:        "list_target_groups",
			Description: "List NLB target groups",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Description: "Limit results to target groups of this load balancer"},
			},
			Handler: t.listTargetGroups,
		},
		{
			Name:        "create_target_group",
			Description: "Create a target group",
			Args: []gateway.ArgSpec{
				{Name: "name", Type: gateway.TypeString, Required: true, Description: "Name of the target group"},
				{Name: "protocol", Type: gateway.TypeString, Required: true, Description: "TCP, TLS, UDP or TCP_UDP"},
				{Name: "port", Type: gateway.TypeInteger, Required: true, Description: "Port the targets receive traffic on"},
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "VPC the targets live in"},
				{Name: "target_type", Type: gateway.TypeString, Description: "instance, ip or alb", Default: "instance"},
				{Name: "health_check_protocol", Type: gateway.TypeString, Description: "Protocol for health checks"},
				{Name: "health_check_port", Type: gateway.TypeString, Description: "Port for health checks"},
			},
			Handler: t.createTargetGroup,
		},
		{
			Name:        "delete_target_group",
			Description: "Delete a target group",
			Args: []gateway.ArgSpec{
				{Name: "target_group_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the target group to delete"},
			},
			Handler: t.deleteTargetGroup,
		},
		{
			Name:        "register_targets",
			Description: "Register targets with a target group",
			Args: []gateway.ArgSpec{
				{Name: "target_group_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the target group"},
				{Name: "targets", Type: gateway.TypeArray, Required: true, ItemType: gateway.TypeObject, Description: "Targets as objects with Id and optional Port and AvailabilityZone"},
			},
			Handler: t.registerTargets,
		},
		{
			Name:        "deregister_targets",
			Description: "Deregister targets from a target group",
			Args: []gateway.ArgSpec{
				{Name: "target_group_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the target group"},
				{Name: "targets", Type: gateway.TypeArray, Required: true, ItemType: gateway.TypeObject, Description: "Targets as objects with Id and optional Port and AvailabilityZone"},
			},
			Handler: t.deregisterTargets,
		},
		{
			Name:        "list_listeners",
			Description: "List listeners of a load balancer",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the load balancer"},
			},
			Handler: t.listListeners,
		},
		{
			Name:        "create_listener",
			Description: "Create a listener",
			Args: []gateway.ArgSpec{
				{Name: "load_balancer_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the load balancer"},
				{Name: "protocol", Type: gateway.TypeString, Required: true, Description: "TCP, TLS, UDP or TCP_UDP"},
				{Name: "port", Type: gateway.TypeInteger, Required: true, Description: "Port the listener accepts traffic on"},
				{Name: "default_actions", Type: gateway.TypeArray, Required: true, ItemType: gateway.TypeObject, Description: "Actions as objects with Type and TargetGroupArn"},
			},
			Handler: t.createListener,
		},
		{
			Name:        "delete_listener",
			Description: "Delete a listener",
			Args: []gateway.ArgSpec{
				{Name: "listener_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the listener to delete"},
			},
			Handler: t.deleteListener,
		},
		{
			Name:        "modify_listener",
			Description: "Modify a listener",
			Args: []gateway.ArgSpec{
				{Name: "listener_arn", Type: gateway.TypeString, Required: true, Description: "ARN of the listener to modify"},
				{Name: "default_actions", Type: gateway.TypeArray, ItemType: gateway.TypeObject, Description: "Replacement default actions"},
				{Name: "port", Type: gateway.TypeInteger, Description: "New listener port"},
				{Name: "protocol", Type: gateway.TypeString, Description: "New listener protocol"},
			},
			Handler: t.modifyListener,
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
