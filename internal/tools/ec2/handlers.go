package ec2

import (
	"context"
	"fmt"

	"awsmcp/internal/awsutil"
	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// flattenReservations collapses the reservation grouping DescribeInstances
// returns into a flat instance list.
func flattenReservations(reservations []types.Reservation) []types.Instance {
	instances := []types.Instance{}
	for _, reservation := range reservations {
		instances = append(instances, reservation.Instances...)
	}
	return instances
}

func (t *ToolSet) listInstances(ctx context.Context, args gateway.Args) (interface{}, error) {
	state, err := args.OptionalString("state")
	if err != nil {
		return nil, err
	}

	input := &ec2.DescribeInstancesInput{}
	if state != nil {
		input.Filters = []types.Filter{
			{Name: aws.String("instance-state-name"), Values: []string{*state}},
		}
	}

	out, err := t.client.DescribeInstances(ctx, input)
	if err != nil {
		return nil, err
	}
	return flattenReservations(out.Reservations), nil
}

func (t *ToolSet) describeInstance(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}

	instances := flattenReservations(out.Reservations)
	if len(instances) == 0 {
		return nil, gateway.NewNotFoundError("instance", instanceID)
	}
	return instances[0], nil
}

func (t *ToolSet) startInstance(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}
	return out.StartingInstances, nil
}

func (t *ToolSet) stopInstance(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}
	force, err := args.OptionalBool("force")
	if err != nil {
		return nil, err
	}

	out, err := t.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
		Force:       force,
	})
	if err != nil {
		return nil, err
	}
	return out.StoppingInstances, nil
}

func (t *ToolSet) rebootInstance(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.RebootInstances(ctx, &ec2.RebootInstancesInput{
		InstanceIds: []string{instanceID},
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Instance %s rebooted", instanceID)}, nil
}

func (t *ToolSet) terminateInstance(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}
	return out.TerminatingInstances, nil
}

func (t *ToolSet) runInstances(ctx context.Context, args gateway.Args) (interface{}, error) {
	imageID, err := args.String("image_id")
	if err != nil {
		return nil, err
	}
	instanceType, err := args.String("instance_type")
	if err != nil {
		return nil, err
	}
	minCount, err := args.Int32Or("min_count", 1)
	if err != nil {
		return nil, err
	}
	maxCount, err := args.Int32Or("max_count", 1)
	if err != nil {
		return nil, err
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(imageID),
		InstanceType: types.InstanceType(instanceType),
		MinCount:     aws.Int32(minCount),
		MaxCount:     aws.Int32(maxCount),
	}

	if input.KeyName, err = args.OptionalString("key_name"); err != nil {
		return nil, err
	}
	if input.SubnetId, err = args.OptionalString("subnet_id"); err != nil {
		return nil, err
	}
	if input.SecurityGroupIds, err = args.OptionalStringSlice("security_group_ids"); err != nil {
		return nil, err
	}
	if input.UserData, err = args.OptionalString("user_data"); err != nil {
		return nil, err
	}

	profile, err := args.OptionalString("iam_instance_profile")
	if err != nil {
		return nil, err
	}
	if profile != nil {
		input.IamInstanceProfile = &types.IamInstanceProfileSpecification{Name: profile}
	}

	out, err := t.client.RunInstances(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Instances, nil
}

func (t *ToolSet) createImage(ctx context.Context, args gateway.Args) (interface{}, error) {
	instanceID, err := args.String("instance_id")
	if err != nil {
		return nil, err
	}
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}

	input := &ec2.CreateImageInput{
		InstanceId: aws.String(instanceID),
		Name:       aws.String(name),
	}
	if input.Description, err = args.OptionalString("description"); err != nil {
		return nil, err
	}
	if input.NoReboot, err = args.OptionalBool("no_reboot"); err != nil {
		return nil, err
	}

	out, err := t.client.CreateImage(ctx, input)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"ImageId": aws.ToString(out.ImageId)}, nil
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
