package store

import (
	"context"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

//go:generate mockgen -destination mock_dynamodb_test.go -package store github.com/asecurityteam/todolist/pkg/store DynamoDBAPI

const keyAttribute = "id"

// DynamoDBAPI is the subset of the DynamoDB client used by the store. The
// *dynamodb.Client satisfies this interface.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDB is a domain.Store backed by a single DynamoDB table keyed by
// the string attribute "id".
type DynamoDB struct {
	Client    DynamoDBAPI
	TableName string
}

// itemProjection limits reads to the persisted TodoItem attributes.
func itemProjection() (expression.Expression, error) {
	proj := expression.NamesList(
		expression.Name("id"),
		expression.Name("title"),
		expression.Name("description"),
		expression.Name("updated_at"),
	)
	return expression.NewBuilder().WithProjection(proj).Build()
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

// Get fetches a single item by key. A missing item is not an error.
func (s *DynamoDB) Get(ctx context.Context, id string) (domain.TodoItem, bool, error) {
	expr, err := itemProjection()
	if err != nil {
		return domain.TodoItem{}, false, domain.StoreUnavailableError{Op: "get", Reason: err}
	}
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(s.TableName),
		Key:                      itemKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return domain.TodoItem{}, false, domain.StoreUnavailableError{Op: "get", Reason: err}
	}
	if out.Item == nil {
		return domain.TodoItem{}, false, nil
	}
	var item domain.TodoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return domain.TodoItem{}, false, domain.StoreUnavailableError{Op: "get", Reason: err}
	}
	return item, true, nil
}

// Put writes the item, replacing every attribute of any existing item with
// the same key.
func (s *DynamoDB) Put(ctx context.Context, item domain.TodoItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return domain.StoreUnavailableError{Op: "put", Reason: err}
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      av,
	})
	if err != nil {
		return domain.StoreUnavailableError{Op: "put", Reason: err}
	}
	return nil
}

// Delete removes the item by key. DynamoDB treats deletes of missing keys as
// successful so this does as well.
func (s *DynamoDB) Delete(ctx context.Context, id string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TableName),
		Key:       itemKey(id),
	})
	if err != nil {
		return domain.StoreUnavailableError{Op: "delete", Reason: err}
	}
	return nil
}

// Scan reads the whole table, following every page of results. The result
// size is unbounded.
func (s *DynamoDB) Scan(ctx context.Context) ([]domain.TodoItem, error) {
	expr, err := itemProjection()
	if err != nil {
		return nil, domain.StoreUnavailableError{Op: "scan", Reason: err}
	}
	paginator := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{
		TableName:                aws.String(s.TableName),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	items := make([]domain.TodoItem, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, domain.StoreUnavailableError{Op: "scan", Reason: err}
		}
		var batch []domain.TodoItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, domain.StoreUnavailableError{Op: "scan", Reason: err}
		}
		items = append(items, batch...)
	}
	return items, nil
}
