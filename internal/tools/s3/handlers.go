package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"awsmcp/internal/gateway"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

func (t *ToolSet) listBuckets(ctx context.Context, args gateway.Args) (interface{}, error) {
	out, err := t.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}
	return out.Buckets, nil
}

func (t *ToolSet) createBucket(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	region, err := args.StringOr("region", t.region)
	if err != nil {
		return nil, err
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	// us-east-1 is the provider default and must not be named explicitly:
	// the API rejects it as a location constraint.
	if region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	out, err := t.client.CreateBucket(ctx, input)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"Location": aws.ToString(out.Location)}, nil
}

func (t *ToolSet) deleteBucket(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}

	if _, err := t.client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": "Bucket deletion initiated."}, nil
}

func (t *ToolSet) listObjects(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	prefix, err := args.OptionalString("prefix")
	if err != nil {
		return nil, err
	}

	return gateway.DrainPages(ctx,
		func(ctx context.Context, token *string) (*s3.ListObjectsV2Output, error) {
			return t.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
				Bucket:            aws.String(bucket),
				Prefix:            prefix,
				ContinuationToken: token,
			})
		},
		func(page *s3.ListObjectsV2Output) ([]types.Object, *string) {
			return page.Contents, page.NextContinuationToken
		},
	)
}

// expandUser resolves a leading ~ to the current user's home directory.
func expandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func (t *ToolSet) uploadObject(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	key, err := args.String("object_key")
	if err != nil {
		return nil, err
	}
	filePath, err := args.OptionalString("file_path")
	if err != nil {
		return nil, err
	}
	content, err := args.OptionalString("content")
	if err != nil {
		return nil, err
	}
	isBase64, err := args.BoolOr("is_base64", false)
	if err != nil {
		return nil, err
	}

	if filePath == nil && content == nil {
		return nil, &gateway.MissingArgumentError{Arg: "file_path or content"}
	}
	if filePath != nil && content != nil {
		return nil, &gateway.InvalidArgumentError{Arg: "content", Reason: "only one of file_path and content may be set"}
	}

	if filePath != nil {
		path, err := expandUser(*filePath)
		if err != nil {
			return nil, err
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		if _, err := t.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   file,
		}); err != nil {
			return nil, err
		}
	} else {
		data := []byte(*content)
		if isBase64 {
			if data, err = base64.StdEncoding.DecodeString(*content); err != nil {
				return nil, &gateway.InvalidArgumentError{Arg: "content", Reason: "not valid base64"}
			}
		}
		if _, err := t.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(data),
		}); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"bucket": bucket, "key": key}, nil
}

func (t *ToolSet) downloadObject(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	key, err := args.String("object_key")
	if err != nil {
		return nil, err
	}
	destination, err := args.String("destination_path")
	if err != nil {
		return nil, err
	}

	dest, err := expandUser(destination)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, err
	}

	file, err := os.Create(dest)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if _, err := t.downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": fmt.Sprintf("Object saved to %s", dest)}, nil
}

func (t *ToolSet) deleteObject(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	key, err := args.String("object_key")
	if err != nil {
		return nil, err
	}

	out, err := t.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"DeleteMarker": aws.ToBool(out.DeleteMarker),
		"VersionId":    aws.ToString(out.VersionId),
	}, nil
}

func (t *ToolSet) getBucketPolicy(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}

	out, err := t.client.GetBucketPolicy(ctx, &s3.GetBucketPolicyInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		// A bucket without a policy is an answer, not a failure.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucketPolicy" {
			return map[string]interface{}{"message": "Bucket policy not found"}, nil
		}
		return nil, err
	}

	var policy interface{}
	if err := json.Unmarshal([]byte(aws.ToString(out.Policy)), &policy); err != nil {
		return nil, fmt.Errorf("bucket policy is not valid JSON: %w", err)
	}
	return policy, nil
}

func (t *ToolSet) setBucketPolicy(ctx context.Context, args gateway.Args) (interface{}, error) {
	bucket, err := args.String("bucket_name")
	if err != nil {
		return nil, err
	}
	policyJSON, err := args.String("policy_json")
	if err != nil {
		return nil, err
	}

	// Reject malformed documents before spending a round trip on them.
	var policy map[string]interface{}
	if err := json.Unmarshal([]byte(policyJSON), &policy); err != nil {
		return nil, &gateway.InvalidArgumentError{Arg: "policy_json", Reason: "not a valid JSON object"}
	}

	if _, err := t.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(policyJSON),
	}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"message": "Bucket policy updated"}, nil
}
