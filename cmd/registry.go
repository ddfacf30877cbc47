package cmd

import (
	"fmt"

	"awsmcp/internal/awsclient"
	"awsmcp/internal/config"
	"awsmcp/internal/gateway"
	ec2tools "awsmcp/internal/tools/ec2"
	nlbtools "awsmcp/internal/tools/nlb"
	s3tools "awsmcp/internal/tools/s3"
	tgwtools "awsmcp/internal/tools/tgw"
	vpctools "awsmcp/internal/tools/vpc"
)

// buildRegistry populates a registry with the tools of the named sets, bound
// to the given client bundle. Sets register in the order given, so tool
// ordering in listings follows the configuration.
func buildRegistry(clients *awsclient.Clients, sets []string) (*gateway.Registry, error) {
	reg := gateway.NewRegistry()
	for _, set := range sets {
		var err error
		switch set {
		case config.ToolSetEC2:
			err = ec2tools.NewToolSet(clients.EC2).RegisterTools(reg)
		case config.ToolSetVPC:
			err = vpctools.NewToolSet(clients.EC2).RegisterTools(reg)
		case config.ToolSetTGW:
			err = tgwtools.NewToolSet(clients.EC2).RegisterTools(reg)
		case config.ToolSetNLB:
			err = nlbtools.NewToolSet(clients.ELBV2).RegisterTools(reg)
		case config.ToolSetS3:
			err = s3tools.NewToolSet(clients.S3, clients.Uploader, clients.Downloader, clients.Region).RegisterTools(reg)
		default:
			return nil, fmt.Errorf("unknown tool set %q", set)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to register %s tools: %w", set, err)
		}
	}
	return reg, nil
}
