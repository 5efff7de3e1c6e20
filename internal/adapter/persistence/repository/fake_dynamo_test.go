package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table that understands the handful of
// expressions the repositories emit.
type fakeDynamo struct {
	mu      sync.Mutex
	key     string
	items   map[string]map[string]types.AttributeValue
	failErr error
	puts    int
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(av map[string]types.AttributeValue, key string) string {
	if s, ok := av[key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.puts++

	k := keyOf(in.Item, f.key)
	existing, exists := f.items[k]
	cond := aws.ToString(in.ConditionExpression)
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists"):
		if exists {
			return nil, conditionFailed()
		}
	case strings.HasPrefix(cond, "#version = :expected"):
		want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		got, _ := existing["version"].(*types.AttributeValueMemberN)
		if !exists || got == nil || got.Value != want {
			return nil, conditionFailed()
		}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key, f.key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}

	k := keyOf(in.Key, f.key)
	item, exists := f.items[k]
	if !exists {
		return nil, conditionFailed()
	}

	next := make(map[string]types.AttributeValue, len(item))
	for name, v := range item {
		next[name] = v
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(expr, ",") {
		parts := strings.SplitN(strings.TrimSpace(assignment), " = ", 2)
		if len(parts) != 2 {
			return nil, errors.New("unsupported update expression")
		}
		next[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	f.items[k] = next
	return &dynamodb.UpdateItemOutput{Attributes: next}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return nil, f.failErr
	}

	// Only "<attr> = :<placeholder>" key conditions are emitted.
	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), " = ", 2)
	attr := parts[0]
	want := in.ExpressionAttributeValues[parts[1]].(*types.AttributeValueMemberS).Value

	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if keyOf(item, attr) == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}
