package repository

import (
	"context"

	"printstudio/internal/domain/entities"
	"printstudio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceItem struct {
	Key                 string   `dynamodbav:"key"`
	Name                string   `dynamodbav:"name"`
	Description         string   `dynamodbav:"description"`
	BasePrice           string   `dynamodbav:"base_price"`
	Categories          []string `dynamodbav:"categories"`
	ColorPricePerColor  string   `dynamodbav:"color_price_per_color"`
	PrintAreaMultiplier string   `dynamodbav:"print_area_multiplier"`
	MinimumQuantity     int      `dynamodbav:"minimum_quantity"`
}

// ServiceDynamoRepository persists catalog services in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// The machine-readable service key is the partition key, so duplicates cannot
// exist and GetByKey is an exact single-item lookup.
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) GetByKey(ctx context.Context, key string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, storeError(err)
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	services := []entities.Service{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeError(err)
		}

		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromServiceItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Count(ctx context.Context) (int, error) {
	count := 0

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, storeError(err)
		}
		count += int(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, svc entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(svc))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "key",
		},
	})
	if err != nil {
		return entities.Service{}, storeError(err)
	}
	return svc, nil
}

func toServiceItem(svc entities.Service) serviceItem {
	return serviceItem{
		Key:                 svc.Key,
		Name:                svc.Name,
		Description:         svc.Description,
		BasePrice:           floatToString(svc.BasePrice),
		Categories:          svc.Categories,
		ColorPricePerColor:  floatToString(svc.ColorPricePerColor),
		PrintAreaMultiplier: floatToString(svc.PrintAreaMultiplier),
		MinimumQuantity:     svc.MinimumQuantity,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		Key:                 it.Key,
		Name:                it.Name,
		Description:         it.Description,
		BasePrice:           stringToFloat(it.BasePrice),
		Categories:          it.Categories,
		ColorPricePerColor:  stringToFloat(it.ColorPricePerColor),
		PrintAreaMultiplier: stringToFloat(it.PrintAreaMultiplier),
		MinimumQuantity:     it.MinimumQuantity,
	}
}
