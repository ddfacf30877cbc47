package nlb

import (
	"context"
	"fmt"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// nlbProtocols are the protocols a network load balancer target group can
// carry. Target groups outside this set belong to ALBs and are filtered out.
var nlbProtocols = map[types.ProtocolEnum]struct{}{
	types.ProtocolEnumTcp:    {},
	types.ProtocolEnumTls:    {},
	types.ProtocolEnumUdp:    {},
	types.ProtocolEnumTcpUdp: {},
}

func (t *ToolSet) listLoadBalancers(ctx context.Context, args gateway.Args) (interface{}, error) {
	out, err := t.client.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, err
	}

	// The describe call has no type filter, so network load balancers are
	// selected client side.
	nlbs := []types.LoadBalancer{}
	for _, lb := range out.LoadBalancers {
		if lb.Type == types.LoadBalancerTypeEnumNetwork {
			nlbs = append(nlbs, lb)
		}
	}
	return nlbs, nil
}

func (t *ToolSet) describeLoadBalancer(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("load_balancer_arn")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeLoadBalancers(ctx, &elbv2.DescribeLoadBalancersInput{
		LoadBalancerArns: []string{arn},
	})
	if err != nil {
		return nil, err
	}
	if len(out.LoadBalancers) == 0 {
		return nil, gateway.NewNotFoundError("load balancer", arn)
	}
	return out.LoadBalancers[0], nil
}

func (t *ToolSet) createLoadBalancer(ctx context.Context, args gateway.Args) (interface{}, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}
	subnets, err := args.StringSlice("subnets")
	if err != nil {
		return nil, err
	}
	scheme, err := args.StringOr("scheme", "internet-facing")
	if err != nil {
		return nil, err
	}
	ipAddressType, err := args.StringOr("ip_address_type", "ipv4")
	if err != nil {
		return nil, err
	}
	lbType, err := args.StringOr("type", "network")
	if err != nil {
		return nil, err
	}

	out, err := t.client.CreateLoadBalancer(ctx, &elbv2.CreateLoadBalancerInput{
		Name:          aws.String(name),
		Subnets:       subnets,
		Scheme:        types.LoadBalancerSchemeEnum(scheme),
		Type:          types.LoadBalancerTypeEnum(lbType),
		IpAddressType: types.IpAddressType(ipAddressType),
	})
	if err != nil {
		return nil, err
	}
	return out.LoadBalancers, nil
}

func (t *ToolSet) deleteLoadBalancer(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("load_balancer_arn")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteLoadBalancer(ctx, &elbv2.DeleteLoadBalancerInput{
		LoadBalancerArn: aws.String(arn),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Load balancer %s deletion initiated", arn)}, nil
}

func (t *ToolSet) modifyLoadBalancerAttributes(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("load_balancer_arn")
	if err != nil {
		return nil, err
	}
	attributes, err := args.StringMap("attributes")
	if err != nil {
		return nil, err
	}

	attrList := make([]types.LoadBalancerAttribute, 0, len(attributes))
	for _, key := range gateway.SortedKeys(attributes) {
		attrList = append(attrList, types.LoadBalancerAttribute{
			Key:   aws.String(key),
			Value: aws.String(attributes[key]),
		})
	}

	out, err := t.client.ModifyLoadBalancerAttributes(ctx, &elbv2.ModifyLoadBalancerAttributesInput{
		LoadBalancerArn: aws.String(arn),
		Attributes:      attrList,
	})
	if err != nil {
		return nil, err
	}
	return out.Attributes, nil
}

func (t *ToolSet) listTargetGroups(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.OptionalString("load_balancer_arn")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeTargetGroups(ctx, &elbv2.DescribeTargetGroupsInput{
		LoadBalancerArn: arn,
	})
	if err != nil {
		return nil, err
	}

	targetGroups := []types.TargetGroup{}
	for _, tg := range out.TargetGroups {
		if _, ok := nlbProtocols[tg.Protocol]; ok {
			targetGroups = append(targetGroups, tg)
		}
	}
	return targetGroups, nil
}

func (t *ToolSet) createTargetGroup(ctx context.Context, args gateway.Args) (interface{}, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}
	protocol, err := args.String("protocol")
	if err != nil {
		return nil, err
	}
	port, err := args.Int32("port")
	if err != nil {
		return nil, err
	}
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}
	targetType, err := args.StringOr("target_type", "instance")
	if err != nil {
		return nil, err
	}

	input := &elbv2.CreateTargetGroupInput{
		Name:       aws.String(name),
		Protocol:   types.ProtocolEnum(protocol),
		Port:       aws.Int32(port),
		VpcId:      aws.String(vpcID),
		TargetType: types.TargetTypeEnum(targetType),
	}

	healthCheckProtocol, err := args.OptionalString("health_check_protocol")
	if err != nil {
		return nil, err
	}
	if healthCheckProtocol != nil {
		input.HealthCheckProtocol = types.ProtocolEnum(*healthCheckProtocol)
	}
	if input.HealthCheckPort, err = args.OptionalString("health_check_port"); err != nil {
		return nil, err
	}

	out, err := t.client.CreateTargetGroup(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TargetGroups, nil
}

func (t *ToolSet) deleteTargetGroup(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("target_group_arn")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteTargetGroup(ctx, &elbv2.DeleteTargetGroupInput{
		TargetGroupArn: aws.String(arn),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Target group %s deletion initiated", arn)}, nil
}

// targetDescriptions converts caller-supplied target objects into the typed
// target list. Keys mirror the provider's field names.
func targetDescriptions(objs []map[string]interface{}) ([]types.TargetDescription, error) {
	targets := make([]types.TargetDescription, 0, len(objs))
	for i, obj := range objs {
		target := types.TargetDescription{}
		for key, value := range obj {
			switch key {
			case "Id":
				id, ok := value.(string)
				if !ok {
					return nil, &gateway.InvalidArgumentError{Arg: "targets", Reason: fmt.Sprintf("target %d: Id must be a string", i)}
				}
				target.Id = aws.String(id)
			case "Port":
				port, ok := value.(float64)
				if !ok || port != float64(int32(port)) {
					return nil, &gateway.InvalidArgumentError{Arg: "targets", Reason: fmt.Sprintf("target %d: Port must be an integer", i)}
				}
				target.Port = aws.Int32(int32(port))
			case "AvailabilityZone":
				zone, ok := value.(string)
				if !ok {
					return nil, &gateway.InvalidArgumentError{Arg: "targets", Reason: fmt.Sprintf("target %d: AvailabilityZone must be a string", i)}
				}
				target.AvailabilityZone = aws.String(zone)
			default:
				return nil, &gateway.InvalidArgumentError{Arg: "targets", Reason: fmt.Sprintf("target %d: unknown field %s", i, key)}
			}
		}
		if target.Id == nil {
			return nil, &gateway.InvalidArgumentError{Arg: "targets", Reason: fmt.Sprintf("target %d: Id is required", i)}
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (t *ToolSet) registerTargets(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("target_group_arn")
	if err != nil {
		return nil, err
	}
	objs, err := args.ObjectSlice("targets")
	if err != nil {
		return nil, err
	}
	targets, err := targetDescriptions(objs)
	if err != nil {
		return nil, err
	}

	if _, err := t.client.RegisterTargets(ctx, &elbv2.RegisterTargetsInput{
		TargetGroupArn: aws.String(arn),
		Targets:        targets,
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": "Targets registration initiated"}, nil
}

func (t *ToolSet) deregisterTargets(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("target_group_arn")
	if err != nil {
		return nil, err
	}
	objs, err := args.ObjectSlice("targets")
	if err != nil {
		return nil, err
	}
	targets, err := targetDescriptions(objs)
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeregisterTargets(ctx, &elbv2.DeregisterTargetsInput{
		TargetGroupArn: aws.String(arn),
		Targets:        targets,
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": "Targets deregistration initiated"}, nil
}

func (t *ToolSet) listListeners(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("load_balancer_arn")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
		LoadBalancerArn: aws.String(arn),
	})
	if err != nil {
		return nil, err
	}
	return out.Listeners, nil
}

// listenerActions converts caller-supplied action objects into the typed
// default action list.
func listenerActions(objs []map[string]interface{}) ([]types.Action, error) {
	actions := make([]types.Action, 0, len(objs))
	for i, obj := range objs {
		action := types.Action{}
		for key, value := range obj {
			text, ok := value.(string)
			if !ok {
				return nil, &gateway.InvalidArgumentError{Arg: "default_actions", Reason: fmt.Sprintf("action %d: %s must be a string", i, key)}
			}
			switch key {
			case "Type":
				action.Type = types.ActionTypeEnum(text)
			case "TargetGroupArn":
				action.TargetGroupArn = aws.String(text)
			default:
				return nil, &gateway.InvalidArgumentError{Arg: "default_actions", Reason: fmt.Sprintf("action %d: unknown field %s", i, key)}
			}
		}
		if action.Type == "" {
			return nil, &gateway.InvalidArgumentError{Arg: "default_actions", Reason: fmt.Sprintf("action %d: Type is required", i)}
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func (t *ToolSet) createListener(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("load_balancer_arn")
	if err != nil {
		return nil, err
	}
	protocol, err := args.String("protocol")
	if err != nil {
		return nil, err
	}
	port, err := args.Int32("port")
	if err != nil {
		return nil, err
	}
	objs, err := args.ObjectSlice("default_actions")
	if err != nil {
		return nil, err
	}
	actions, err := listenerActions(objs)
	if err != nil {
		return nil, err
	}

	out, err := t.client.CreateListener(ctx, &elbv2.CreateListenerInput{
		LoadBalancerArn: aws.String(arn),
		Protocol:        types.ProtocolEnum(protocol),
		Port:            aws.Int32(port),
		DefaultActions:  actions,
	})
	if err != nil {
		return nil, err
	}
	return out.Listeners, nil
}

func (t *ToolSet) deleteListener(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("listener_arn")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteListener(ctx, &elbv2.DeleteListenerInput{
		ListenerArn: aws.String(arn),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Listener %s deletion initiated", arn)}, nil
}

func (t *ToolSet) modifyListener(ctx context.Context, args gateway.Args) (interface{}, error) {
	arn, err := args.String("listener_arn")
	if err != nil {
		return nil, err
	}

	// Partial update: absent fields are left untouched on the listener.
	input := &elbv2.ModifyListenerInput{
		ListenerArn: aws.String(arn),
	}

	objs, err := args.OptionalObjectSlice("default_actions")
	if err != nil {
		return nil, err
	}
	if objs != nil {
		if input.DefaultActions, err = listenerActions(objs); err != nil {
			return nil, err
		}
	}
	if input.Port, err = args.OptionalInt32("port"); err != nil {
		return nil, err
	}
	protocol, err := args.OptionalString("protocol")
	if err != nil {
		return nil, err
	}
	if protocol != nil {
		input.Protocol = types.ProtocolEnum(*protocol)
	}

	out, err := t.client.ModifyListener(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Listeners, nil
}
