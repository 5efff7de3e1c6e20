package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrSessionExists = errors.New("session already exists")

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Version   int64  `dynamodbav:"version"`
	Data      string `dynamodbav:"data"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists the estimate session as one JSON snapshot.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is conditional on the version attribute so concurrent steps of
// the flow cannot overwrite each other silently.
type SessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoAPI, tableName string) *SessionDynamoRepository {
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	s.Version = 1
	av, err := toSessionAttributes(s)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, ErrSessionExists
		}
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.Session) (entities.Session, error) {
	expected := s.Version
	s.Version = expected + 1
	av, err := toSessionAttributes(s)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Session{}, interfaces.ErrVersionConflict
		}
		return entities.Session{}, err
	}
	return s, nil
}

func toSessionAttributes(s entities.Session) (map[string]types.AttributeValue, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return attributevalue.MarshalMap(sessionItem{
		ID:        s.ID,
		Version:   s.Version,
		Data:      string(data),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	})
}

func fromSessionItem(it sessionItem) (entities.Session, error) {
	var s entities.Session
	if err := json.Unmarshal([]byte(it.Data), &s); err != nil {
		return entities.Session{}, fmt.Errorf("decode session %s: %w", it.ID, err)
	}
	s.ID = it.ID
	s.Version = it.Version
	s.EnsureMaps()
	return s, nil
}
