package database

import (
	"context"
	"fmt"

	appconfig "home_estimate/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the DynamoDB config section.
// Endpoint is optional and points the client at DynamoDB Local
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, c appconfig.DynamoDB) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("database.ConnectDynamoDB: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, c appconfig.DynamoDB) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(creds),
	)
}
