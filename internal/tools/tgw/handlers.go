package tgw

import (
	"context"
	"fmt"

	"awsmcp/internal/awsutil"
	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func (t *ToolSet) listTransitGateways(ctx context.Context, args gateway.Args) (interface{}, error) {
	out, err := t.client.DescribeTransitGateways(ctx, &ec2.DescribeTransitGatewaysInput{})
	if err != nil {
		return nil, err
	}
	return out.TransitGateways, nil
}

func (t *ToolSet) describeTransitGateway(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.String("transit_gateway_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DescribeTransitGateways(ctx, &ec2.DescribeTransitGatewaysInput{
		TransitGatewayIds: []string{tgwID},
	})
	if err != nil {
		return nil, err
	}
	if len(out.TransitGateways) == 0 {
		return nil, gateway.NewNotFoundError("transit gateway", tgwID)
	}
	return out.TransitGateways[0], nil
}

func (t *ToolSet) createTransitGateway(ctx context.Context, args gateway.Args) (interface{}, error) {
	input := &ec2.CreateTransitGatewayInput{}

	var err error
	if input.Description, err = args.OptionalString("description"); err != nil {
		return nil, err
	}
	asn, err := args.OptionalInt64("amazon_side_asn")
	if err != nil {
		return nil, err
	}
	autoAccept, err := args.OptionalString("auto_accept_shared_attachments")
	if err != nil {
		return nil, err
	}
	rtAssociation, err := args.OptionalString("default_route_table_association")
	if err != nil {
		return nil, err
	}
	rtPropagation, err := args.OptionalString("default_route_table_propagation")
	if err != nil {
		return nil, err
	}
	dnsSupport, err := args.OptionalString("dns_support")
	if err != nil {
		return nil, err
	}
	vpnEcmp, err := args.OptionalString("vpn_ecmp_support")
	if err != nil {
		return nil, err
	}

	// Options goes on the wire only when at least one option was supplied.
	options := &types.TransitGatewayRequestOptions{}
	present := false
	if asn != nil {
		options.AmazonSideAsn = asn
		present = true
	}
	if autoAccept != nil {
		options.AutoAcceptSharedAttachments = types.AutoAcceptSharedAttachmentsValue(*autoAccept)
		present = true
	}
	if rtAssociation != nil {
		options.DefaultRouteTableAssociation = types.DefaultRouteTableAssociationValue(*rtAssociation)
		present = true
	}
	if rtPropagation != nil {
		options.DefaultRouteTablePropagation = types.DefaultRouteTablePropagationValue(*rtPropagation)
		present = true
	}
	if dnsSupport != nil {
		options.DnsSupport = types.DnsSupportValue(*dnsSupport)
		present = true
	}
	if vpnEcmp != nil {
		options.VpnEcmpSupport = types.VpnEcmpSupportValue(*vpnEcmp)
		present = true
	}
	if present {
		input.Options = options
	}

	out, err := t.client.CreateTransitGateway(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TransitGateway, nil
}

func (t *ToolSet) deleteTransitGateway(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.String("transit_gateway_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DeleteTransitGateway(ctx, &ec2.DeleteTransitGatewayInput{
		TransitGatewayId: aws.String(tgwID),
	})
	if err != nil {
		return nil, err
	}
	return out.TransitGateway, nil
}

func (t *ToolSet) modifyTransitGateway(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.String("transit_gateway_id")
	if err != nil {
		return nil, err
	}

	input := &ec2.ModifyTransitGatewayInput{
		TransitGatewayId: aws.String(tgwID),
	}
	if input.Description, err = args.OptionalString("description"); err != nil {
		return nil, err
	}

	autoAccept, err := args.OptionalString("auto_accept_shared_attachments")
	if err != nil {
		return nil, err
	}
	rtAssociation, err := args.OptionalString("default_route_table_association")
	if err != nil {
		return nil, err
	}
	rtPropagation, err := args.OptionalString("default_route_table_propagation")
	if err != nil {
		return nil, err
	}
	dnsSupport, err := args.OptionalString("dns_support")
	if err != nil {
		return nil, err
	}
	vpnEcmp, err := args.OptionalString("vpn_ecmp_support")
	if err != nil {
		return nil, err
	}

	options := &types.ModifyTransitGatewayOptions{}
	present := false
	if autoAccept != nil {
		options.AutoAcceptSharedAttachments = types.AutoAcceptSharedAttachmentsValue(*autoAccept)
		present = true
	}
	if rtAssociation != nil {
		options.DefaultRouteTableAssociation = types.DefaultRouteTableAssociationValue(*rtAssociation)
		present = true
	}
	if rtPropagation != nil {
		options.DefaultRouteTablePropagation = types.DefaultRouteTablePropagationValue(*rtPropagation)
		present = true
	}
	if dnsSupport != nil {
		options.DnsSupport = types.DnsSupportValue(*dnsSupport)
		present = true
	}
	if vpnEcmp != nil {
		options.VpnEcmpSupport = types.VpnEcmpSupportValue(*vpnEcmp)
		present = true
	}
	if present {
		input.Options = options
	}

	out, err := t.client.ModifyTransitGateway(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TransitGateway, nil
}

func (t *ToolSet) listAttachments(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.OptionalString("transit_gateway_id")
	if err != nil {
		return nil, err
	}
	attachmentIDs, err := args.OptionalStringSlice("attachment_ids")
	if err != nil {
		return nil, err
	}

	input := &ec2.DescribeTransitGatewayAttachmentsInput{}
	if tgwID != nil {
		input.Filters = []types.Filter{
			{Name: aws.String("transit-gateway-id"), Values: []string{*tgwID}},
		}
	}
	input.TransitGatewayAttachmentIds = attachmentIDs

	out, err := t.client.DescribeTransitGatewayAttachments(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayAttachments, nil
}

// attachmentOptions converts a caller-supplied options object into the typed
// attachment options. Keys mirror the provider's field names; anything else is
// rejected before a round trip is spent on it.
func attachmentOptions(raw map[string]interface{}) (*types.CreateTransitGatewayVpcAttachmentRequestOptions, error) {
	options := &types.CreateTransitGatewayVpcAttachmentRequestOptions{}
	for key, value := range raw {
		text, ok := value.(string)
		if !ok {
			return nil, &gateway.InvalidArgumentError{Arg: "options", Reason: fmt.Sprintf("value for %s must be a string", key)}
		}
		switch key {
		case "DnsSupport":
			options.DnsSupport = types.DnsSupportValue(text)
		case "Ipv6Support":
			options.Ipv6Support = types.Ipv6SupportValue(text)
		case "ApplianceModeSupport":
			options.ApplianceModeSupport = types.ApplianceModeSupportValue(text)
		default:
			return nil, &gateway.InvalidArgumentError{Arg: "options", Reason: fmt.Sprintf("unknown option %s", key)}
		}
	}
	return options, nil
}

func (t *ToolSet) createVpcAttachment(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.String("transit_gateway_id")
	if err != nil {
		return nil, err
	}
	vpcID, err := args.String("vpc_id")
	if err != nil {
		return nil, err
	}
	subnetIDs, err := args.StringSlice("subnet_ids")
	if err != nil {
		return nil, err
	}
	rawOptions, err := args.OptionalObject("options")
	if err != nil {
		return nil, err
	}
	tags, err := args.OptionalStringMap("tags")
	if err != nil {
		return nil, err
	}

	input := &ec2.CreateTransitGatewayVpcAttachmentInput{
		TransitGatewayId:  aws.String(tgwID),
		VpcId:             aws.String(vpcID),
		SubnetIds:         subnetIDs,
		TagSpecifications: awsutil.TagSpecifications(types.ResourceTypeTransitGatewayAttachment, tags),
	}
	if rawOptions != nil {
		if input.Options, err = attachmentOptions(rawOptions); err != nil {
			return nil, err
		}
	}

	out, err := t.client.CreateTransitGatewayVpcAttachment(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayVpcAttachment, nil
}

func (t *ToolSet) deleteVpcAttachment(ctx context.Context, args gateway.Args) (interface{}, error) {
	attachmentID, err := args.String("transit_gateway_attachment_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DeleteTransitGatewayVpcAttachment(ctx, &ec2.DeleteTransitGatewayVpcAttachmentInput{
		TransitGatewayAttachmentId: aws.String(attachmentID),
	})
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayVpcAttachment, nil
}

func (t *ToolSet) acceptVpcAttachment(ctx context.Context, args gateway.Args) (interface{}, error) {
	attachmentID, err := args.String("transit_gateway_attachment_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.AcceptTransitGatewayVpcAttachment(ctx, &ec2.AcceptTransitGatewayVpcAttachmentInput{
		TransitGatewayAttachmentId: aws.String(attachmentID),
	})
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayVpcAttachment, nil
}

func (t *ToolSet) listRouteTables(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.OptionalString("transit_gateway_id")
	if err != nil {
		return nil, err
	}

	input := &ec2.DescribeTransitGatewayRouteTablesInput{}
	if tgwID != nil {
		input.Filters = []types.Filter{
			{Name: aws.String("transit-gateway-id"), Values: []string{*tgwID}},
		}
	}

	out, err := t.client.DescribeTransitGatewayRouteTables(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayRouteTables, nil
}

func (t *ToolSet) createRouteTable(ctx context.Context, args gateway.Args) (interface{}, error) {
	tgwID, err := args.String("transit_gateway_id")
	if err != nil {
		return nil, err
	}
	tags, err := args.OptionalStringMap("tags")
	if err != nil {
		return nil, err
	}

	out, err := t.client.CreateTransitGatewayRouteTable(ctx, &ec2.CreateTransitGatewayRouteTableInput{
		TransitGatewayId:  aws.String(tgwID),
		TagSpecifications: awsutil.TagSpecifications(types.ResourceTypeTransitGatewayRouteTable, tags),
	})
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayRouteTable, nil
}

func (t *ToolSet) deleteRouteTable(ctx context.Context, args gateway.Args) (interface{}, error) {
	routeTableID, err := args.String("transit_gateway_route_table_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DeleteTransitGatewayRouteTable(ctx, &ec2.DeleteTransitGatewayRouteTableInput{
		TransitGatewayRouteTableId: aws.String(routeTableID),
	})
	if err != nil {
		return nil, err
	}
	return out.TransitGatewayRouteTable, nil
}

func (t *ToolSet) associateRouteTable(ctx context.Context, args gateway.Args) (interface{}, error) {
	routeTableID, err := args.String("transit_gateway_route_table_id")
	if err != nil {
		return nil, err
	}
	attachmentID, err := args.String("transit_gateway_attachment_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.AssociateTransitGatewayRouteTable(ctx, &ec2.AssociateTransitGatewayRouteTableInput{
		TransitGatewayRouteTableId: aws.String(routeTableID),
		TransitGatewayAttachmentId: aws.String(attachmentID),
	})
	if err != nil {
		return nil, err
	}
	return out.Association, nil
}

func (t *ToolSet) disassociateRouteTable(ctx context.Context, args gateway.Args) (interface{}, error) {
	routeTableID, err := args.String("transit_gateway_route_table_id")
	if err != nil {
		return nil, err
	}
	attachmentID, err := args.String("transit_gateway_attachment_id")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DisassociateTransitGatewayRouteTable(ctx, &ec2.DisassociateTransitGatewayRouteTableInput{
		TransitGatewayRouteTableId: aws.String(routeTableID),
		TransitGatewayAttachmentId: aws.String(attachmentID),
	})
	if err != nil {
		return nil, err
	}
	return out.Association, nil
}

func (t *ToolSet) createRoute(ctx context.Context, args gateway.Args) (interface{}, error) {
	routeTableID, err := args.String("transit_gateway_route_table_id")
	if err != nil {
		return nil, err
	}
	destination, err := args.String("destination_cidr_block")
	if err != nil {
		return nil, err
	}
	blackhole, err := args.BoolOr("blackhole", false)
	if err != nil {
		return nil, err
	}

	input := &ec2.CreateTransitGatewayRouteInput{
		TransitGatewayRouteTableId: aws.String(routeTableID),
		DestinationCidrBlock:       aws.String(destination),
	}
	if input.TransitGatewayAttachmentId, err = args.OptionalString("transit_gateway_attachment_id"); err != nil {
		return nil, err
	}
	if blackhole {
		input.Blackhole = aws.Bool(true)
	}

	out, err := t.client.CreateTransitGatewayRoute(ctx, input)
	if err != nil {
		return nil, err
	}
	return out.Route, nil
}

func (t *ToolSet) deleteRoute(ctx context.Context, args gateway.Args) (interface{}, error) {
	routeTableID, err := args.String("transit_gateway_route_table_id")
	if err != nil {
		return nil, err
	}
	destination, err := args.String("destination_cidr_block")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DeleteTransitGatewayRoute(ctx, &ec2.DeleteTransitGatewayRouteInput{
		TransitGatewayRouteTableId: aws.String(routeTableID),
		DestinationCidrBlock:       aws.String(destination),
	})
	if err != nil {
		return nil, err
	}
	return out.Route, nil
}
