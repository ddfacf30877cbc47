// Package s3 exposes S3 bucket and object management as gateway tools.
package s3

import (
	"context"
	"io"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the slice of the S3 control plane this tool set consumes.
type API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	GetBucketPolicy(ctx context.Context, params *s3.GetBucketPolicyInput, optFns ...func(*s3.Options)) (*s3.GetBucketPolicyOutput, error)
	PutBucketPolicy(ctx context.Context, params *s3.PutBucketPolicyInput, optFns ...func(*s3.Options)) (*s3.PutBucketPolicyOutput, error)
}

// ObjectUploader streams file uploads, the transfer manager handles
// multipart splitting.
type ObjectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// ObjectDownloader streams object downloads into a WriterAt.
type ObjectDownloader interface {
	Download(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, opts ...func(*manager.Downloader)) (int64, error)
}

// ToolSet binds the S3 tools to a client and the transfer managers.
type ToolSet struct {
	client     API
	uploader   ObjectUploader
	downloader ObjectDownloader

	// region is the fallback bucket region when the caller does not name one.
	region string
}

// NewToolSet creates the S3 tool set.
func NewToolSet(client API, uploader ObjectUploader, downloader ObjectDownloader, region string) *ToolSet {
	return &ToolSet{
		client:     client,
		uploader:   uploader,
		downloader: downloader,
		region:     region,
	}
}

// RegisterTools registers all S3 tools with the gateway registry.
func (t *ToolSet) RegisterTools(reg *gateway.Registry) error {
	tools := []gateway.Tool{
		{
			Name:        "list_buckets",
			Description: "List all S3 buckets in the account",
			Handler:     t.listBuckets,
		},
		{
			Name:        "create_bucket",
			Description: "Create a new S3 bucket",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Name of the bucket to create"},
				{Name: "region", Type: gateway.TypeString, Description: "Region for the bucket, defaults to the configured region"},
			},
			Handler: t.createBucket,
		},
		{
			Name:        "delete_bucket",
			Description: "Delete an S3 bucket",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Name of the bucket to delete"},
			},
			Handler: t.deleteBucket,
		},
		{
			Name:        "list_objects",
			Description: "List objects within an S3 bucket",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Bucket to list"},
				{Name: "prefix", Type: gateway.TypeString, Description: "Limit results to keys with this prefix"},
			},
			Handler: t.listObjects,
		},
		{
			Name:        "upload_object",
			Description: "Upload an object to S3 from a file or inline content",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Destination bucket"},
				{Name: "object_key", Type: gateway.TypeString, Required: true, Description: "Destination key"},
				{Name: "file_path", Type: gateway.TypeString, Description: "Local file to upload"},
				{Name: "content", Type: gateway.TypeString, Description: "Inline content to upload"},
				{Name: "is_base64", Type: gateway.TypeBoolean, Description: "Decode inline content from base64 before uploading", Default: false},
			},
			Handler: t.uploadObject,
		},
		{
			Name:        "download_object",
			Description: "Download an object from S3 to the local filesystem",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Source bucket"},
				{Name: "object_key", Type: gateway.TypeString, Required: true, Description: "Source key"},
				{Name: "destination_path", Type: gateway.TypeString, Required: true, Description: "Local path to save the object to"},
			},
			Handler: t.downloadObject,
		},
		{
			Name:        "delete_object",
			Description: "Delete an object from S3",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Bucket holding the object"},
				{Name: "object_key", Type: gateway.TypeString, Required: true, Description: "Key of the object to delete"},
			},
			Handler: t.deleteObject,
		},
		{
			Name:        "get_bucket_policy",
			Description: "Retrieve the policy for an S3 bucket",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Bucket to read the policy of"},
			},
			Handler: t.getBucketPolicy,
		},
		{
			Name:        "set_bucket_policy",
			Description: "Set the policy for an S3 bucket",
			Args: []gateway.ArgSpec{
				{Name: "bucket_name", Type: gateway.TypeString, Required: true, Description: "Bucket to set the policy on"},
				{Name: "policy_json", Type: gateway.TypeString, Required: true, Description: "Policy document as a JSON string"},
			},
			Handler: t.setBucketPolicy,
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}
