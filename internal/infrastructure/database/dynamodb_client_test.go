package database

import (
	"context"
	"testing"

	appconfig "home_estimate/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDynamoDB_LocalEndpoint(t *testing.T) {
	c := appconfig.DynamoDB{
		Region:          "us-west-2",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	}

	cfg, err := NewDynamoDBConfig(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)

	client, err := ConnectDynamoDB(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
