package snapshot

import (
	"context"
	"fmt"
	"time"

	"mercado_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCollectionsTable = "erp_collections"

// dynamoAPI is the slice of *dynamodb.Client the store needs.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type collectionItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStore persists collection snapshots in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// One item per collection; the JSON array lives in the "value" attribute.
type DynamoStore struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISnapshotStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb dynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultCollectionsTable
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoStore) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return []byte(it.Value), nil
}

func (s *DynamoStore) Save(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *DynamoStore) Close() error { return nil }
