package repository

import (
	"context"
	"time"

	"printstudio/internal/domain/entities"
	"printstudio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	CustomerName   string `dynamodbav:"customer_name"`
	CustomerEmail  string `dynamodbav:"customer_email"`
	ServiceKey     string `dynamodbav:"service_key"`
	Quantity       int    `dynamodbav:"quantity"`
	Colors         int    `dynamodbav:"colors"`
	PrintArea      string `dynamodbav:"print_area"`
	Notes          string `dynamodbav:"notes"`
	EstimatedTotal string `dynamodbav:"estimated_total"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists quote requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quotes are append-only; the conditional put guards against id collisions.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, storeError(err)
	}
	return q, nil
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	return quoteItem{
		ID:             q.ID,
		CustomerName:   q.CustomerName,
		CustomerEmail:  q.CustomerEmail,
		ServiceKey:     q.ServiceKey,
		Quantity:       q.Quantity,
		Colors:         q.Colors,
		PrintArea:      string(q.PrintArea),
		Notes:          q.Notes,
		EstimatedTotal: floatToString(q.EstimatedTotal),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
