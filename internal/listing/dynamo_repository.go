package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoRepository persists listings as DynamoDB items keyed by id.
type DynamoRepository struct {
	client dynamoAPI
	table  string
	now    func() time.Time
}

// NewDynamoRepository constructs a repository writing to table.
func NewDynamoRepository(client dynamoAPI, table string) *DynamoRepository {
	if table == "" {
		table = DefaultTable
	}
	return &DynamoRepository{client: client, table: table, now: time.Now}
}

// Insert stamps both timestamps with the current time and puts the item.
// An existing item with the same id is never overwritten.
func (r *DynamoRepository) Insert(ctx context.Context, l Listing) (Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, repositoryTimeout)
	defer cancel()

	now := r.now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	item, err := attributevalue.MarshalMap(l)
	if err != nil {
		return Listing{}, fmt.Errorf("marshal listing: %w", err)
	}
	item[idColumn] = &types.AttributeValueMemberS{Value: l.ID.String()}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return Listing{}, fmt.Errorf("put listing %s: duplicate id: %w", l.ID, err)
		}
		return Listing{}, fmt.Errorf("put listing: %w", err)
	}
	return l, nil
}

// ExistsByFileName scans the table for an item with fileName. Scans are
// paginated until a match is found or the table is exhausted.
func (r *DynamoRepository) ExistsByFileName(ctx context.Context, fileName string) (bool, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		Select:                   types.SelectCount,
		FilterExpression:         aws.String("#fn = :fn"),
		ExpressionAttributeNames: map[string]string{"#fn": "fileName"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fn": &types.AttributeValueMemberS{Value: fileName},
		},
	}

	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return false, fmt.Errorf("scan listings by file name: %w", err)
		}
		if page.Count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Ping checks that the table is reachable.
func (r *DynamoRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.table)})
	return err
}
