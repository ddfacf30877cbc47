// Package tgw exposes Transit Gateway management as gateway tools.
package tgw

import (
	"context"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// API is the slice of the EC2 control plane this tool set consumes.
type API interface {
	DescribeTransitGateways(ctx context.Context, params *ec2.DescribeTransitGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeTransitGatewaysOutput, error)
	CreateTransitGateway(ctx context.Context, params *ec2.CreateTransitGatewayInput, optFns ...func(*ec2.Options)) (*ec2.CreateTransitGatewayOutput, error)
	DeleteTransitGateway(ctx context.Context, params *ec2.DeleteTransitGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteTransitGatewayOutput, error)
	ModifyTransitGateway(ctx context.Context, params *ec2.ModifyTransitGatewayInput, optFns ...func(*ec2.Options)) (*ec2.ModifyTransitGatewayOutput, error)
	DescribeTransitGatewayAttachments(ctx context.Context, params *ec2.DescribeTransitGatewayAttachmentsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeTransitGatewayAttachmentsOutput, error)
	CreateTransitGatewayVpcAttachment(ctx context.Context, params *ec2.CreateTransitGatewayVpcAttachmentInput, optFns ...func(*ec2.Options)) (*ec2.CreateTransitGatewayVpcAttachmentOutput, error)
	DeleteTransitGatewayVpcAttachment(ctx context.Context, params *ec2.DeleteTransitGatewayVpcAttachmentInput, optFns ...func(*ec2.Options)) (*ec2.DeleteTransitGatewayVpcAttachmentOutput, error)
	AcceptTransitGatewayVpcAttachment(ctx context.Context, params *ec2.AcceptTransitGatewayVpcAttachmentInput, optFns ...func(*ec2.Options)) (*ec2.AcceptTransitGatewayVpcAttachmentOutput, error)
	DescribeTransitGatewayRouteTables(ctx context.Context, params *ec2.DescribeTransitGatewayRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeTransitGatewayRouteTablesOutput, error)
	CreateTransitGatewayRouteTable(ctx context.Context, params *ec2.CreateTransitGatewayRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.CreateTransitGatewayRouteTableOutput, error)
	DeleteTransitGatewayRouteTable(ctx context.Context, params *ec2.DeleteTransitGatewayRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DeleteTransitGatewayRouteTableOutput, error)
	AssociateTransitGatewayRouteTable(ctx context.Context, params *ec2.AssociateTransitGatewayRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.AssociateTransitGatewayRouteTableOutput, error)
	DisassociateTransitGatewayRouteTable(ctx context.Context, params *ec2.DisassociateTransitGatewayRouteTableInput, optFns ...func(*ec2.Options)) (*ec2.DisassociateTransitGatewayRouteTableOutput, error)
	CreateTransitGatewayRoute(ctx context.Context, params *ec2.CreateTransitGatewayRouteInput, optFns ...func(*ec2.Options)) (*ec2.CreateTransitGatewayRouteOutput, error)
	DeleteTransitGatewayRoute(ctx context.Context, params *ec2.DeleteTransitGatewayRouteInput, optFns ...func(*ec2.Options)) (*ec2.DeleteTransitGatewayRouteOutput, error)
}

// ToolSet binds the Transit Gateway tools to a client.
type ToolSet struct {
	client API
}

// NewToolSet creates the Transit Gateway tool set.
func NewToolSet(client API) *ToolSet {
	return &ToolSet{client: client}
}

// RegisterTools registers all Transit Gateway tools with the gateway registry.
func (t *ToolSet) RegisterTools(reg *gateway.Registry) error {
	tools := []gateway.Tool{
		{
			Name:        "list_transit_gateways",
			Description: "List Transit Gateways",
			Handler:     t.listTransitGateways,
		},
		{
			Name:        "describe_transit_gateway",
			Description: "Describe a Transit Gateway",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Required: true, Description: "ID of the transit gateway to describe"},
			},
			Handler: t.describeTransitGateway,
		},
		{
			Name:        "create_transit_gateway",
			Description: "Create a Transit Gateway",
			Args: []gateway.ArgSpec{
				{Name: "description", Type: gateway.TypeString, Description: "Description for the transit gateway"},
				{Name: "amazon_side_asn", Type: gateway.TypeInteger, Description: "Private ASN for the Amazon side of BGP sessions"},
				{Name: "auto_accept_shared_attachments", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "default_route_table_association", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "default_route_table_propagation", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "dns_support", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "vpn_ecmp_support", Type: gateway.TypeString, Description: "enable or disable"},
			},
			Handler: t.createTransitGateway,
		},
		{
			Name:        "delete_transit_gateway",
			Description: "Delete a Transit Gateway",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Required: true, Description: "ID of the transit gateway to delete"},
			},
			Handler: t.deleteTransitGateway,
		},
		{
			Name:        "modify_transit_gateway",
			Description: "Modify Transit Gateway options",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Required: true, Description: "ID of the transit gateway to modify"},
				{Name: "auto_accept_shared_attachments", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "default_route_table_association", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "default_route_table_propagation", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "dns_support", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "vpn_ecmp_support", Type: gateway.TypeString, Description: "enable or disable"},
				{Name: "description", Type: gateway.TypeString, Description: "New description"},
			},
			Handler: t.modifyTransitGateway,
		},
		{
			Name:        "list_transit_gateway_attachments",
			Description: "List Transit Gateway attachments",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Description: "Limit results to attachments of this transit gateway"},
				{Name: "attachment_ids", Type: gateway.TypeArray, Description: "Specific attachment IDs to describe"},
			},
			Handler: t.listAttachments,
		},
		{
			Name:        "create_vpc_attachment",
			Description: "Create a VPC attachment",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Required: true, Description: "Transit gateway to attach to"},
				{Name: "vpc_id", Type: gateway.TypeString, Required: true, Description: "VPC to attach"},
				{Name: "subnet_ids", Type: gateway.TypeArray, Required: true, Description: "Subnets for the attachment, one per availability zone"},
				{Name: "options", Type: gateway.TypeObject, Description: "Attachment options (DnsSupport, Ipv6Support, ApplianceModeSupport)"},
				{Name: "tags", Type: gateway.TypeObject, Description: "Tags as key/value pairs"},
			},
			Handler: t.createVpcAttachment,
		},
		{
			Name:        "delete_vpc_attachment",
			Description: "Delete a VPC attachment",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_attachment_id", Type: gateway.TypeString, Required: true, Description: "ID of the attachment to delete"},
			},
			Handler: t.deleteVpcAttachment,
		},
		{
			Name:        "accept_vpc_attachment",
			Description: "Accept a shared VPC attachment",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_attachment_id", Type: gateway.TypeString, Required: true, Description: "ID of the attachment to accept"},
			},
			Handler: t.acceptVpcAttachment,
		},
		{
			Name:        "list_route_tables",
			Description: "List Transit Gateway route tables",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Description: "Limit results to route tables of this transit gateway"},
			},
			Handler: t.listRouteTables,
		},
		{
			Name:        "create_route_table",
			Description: "Create a Transit Gateway route table",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_id", Type: gateway.TypeString, Required: true, Description: "Transit gateway to create the route table for"},
				{Name: "tags", Type: gateway.TypeObject, Description: "Tags as key/value pairs"},
			},
			Handler: t.createRouteTable,
		},
		{
			Name:        "delete_route_table",
			Description: "Delete a Transit Gateway route table",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_route_table_id", Type: gateway.TypeString, Required: true, Description: "ID of the route table to delete"},
			},
			Handler: t.deleteRouteTable,
		},
		{
			Name:        "associate_route_table",
			Description: "Associate an attachment with a route table",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_route_table_id", Type: gateway.TypeString, Required: true, Description: "Route table to associate with"},
				{Name: "transit_gateway_attachment_id", Type: gateway.TypeString, Required: true, Description: "Attachment to associate"},
			},
			Handler: t.associateRouteTable,
		},
		{
			Name:        "disassociate_route_table",
			Description: "Disassociate an attachment from a route table",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_route_table_id", Type: gateway.TypeString, Required: true, Description: "Route table to disassociate from"},
				{Name: "transit_gateway_attachment_id", Type: gateway.TypeString, Required: true, Description: "Attachment to disassociate"},
			},
			Handler: t.disassociateRouteTable,
		},
		{
			Name:        "create_route",
			Description: "Create a Transit Gateway route",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_route_table_id", Type: gateway.TypeString, Required: true, Description: "Route table to add the route to"},
				{Name: "destination_cidr_block", Type: gateway.TypeString, Required: true, Description: "CIDR block the route matches"},
				{Name: "transit_gateway_attachment_id", Type: gateway.TypeString, Description: "Attachment the route points at"},
				{Name: "blackhole", Type: gateway.TypeBoolean, Description: "Drop matching traffic instead of routing it", Default: false},
			},
			Handler: t.createRoute,
		},
		{
			Name:        "delete_route",
			Description: "Delete a Transit Gateway route",
			Args: []gateway.ArgSpec{
				{Name: "transit_gateway_route_table_id", Type: gateway.TypeString, Required: true, Description: "Route table to delete the route from"},
				{Name: "destination_cidr_block", Type: gateway.TypeString, Required: true, Description: "CIDR block of the route to delete"},
			},
			Handler: t.deleteRoute,
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
