// Package awsclient constructs the shared AWS service clients from gateway
// configuration. Construction happens exactly once at startup; the clients
// are stateless and shared by all concurrent invocations.
package awsclient

import (
	"context"
	"fmt"

	"awsmcp/internal/config"
	"awsmcp/pkg/logging"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Clients bundles the per-service AWS clients used by the tool sets.
// EC2, VPC and Transit Gateway tools all go through the EC2 control plane.
type Clients struct {
	EC2        *ec2.Client
	ELBV2      *elbv2.Client
	S3         *s3.Client
	Uploader   *manager.Uploader
	Downloader *manager.Downloader

	// Region the clients were constructed for. S3 bucket creation needs it
	// to decide whether a location constraint applies.
	Region string
}

// New resolves credentials and constructs the client bundle. Credential and
// session resolution follow the SDK's default chain, narrowed by the
// configured region and optional named profile.
func New(ctx context.Context, cfg config.AWSConfig) (*Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	if cfg.Profile != "" {
		logging.Info("AWSClient", "Constructed AWS clients for region %s (profile %s)", cfg.Region, cfg.Profile)
	} else {
		logging.Info("AWSClient", "Constructed AWS clients for region %s", cfg.Region)
	}

	s3Client := s3.NewFromConfig(awsCfg)
	return &Clients{
		EC2:        ec2.NewFromConfig(awsCfg),
		ELBV2:      elbv2.NewFromConfig(awsCfg),
		S3:         s3Client,
		Uploader:   manager.NewUploader(s3Client),
		Downloader: manager.NewDownloader(s3Client),
		Region:     cfg.Region,
	}, nil
}
