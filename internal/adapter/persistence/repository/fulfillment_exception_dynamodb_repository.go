package repository

import (
	"context"
	"errors"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFulfillmentExceptionsTableName = "fulfillment_exceptions"

type fulfillmentExceptionItem struct {
	ID          string `dynamodbav:"id"`
	EntityID    string `dynamodbav:"entity_id"`
	Reason      string `dynamodbav:"reason"`
	Detail      string `dynamodbav:"detail,omitempty"`
	OverdueDays int    `dynamodbav:"overdue_days"`
	LateDays    int    `dynamodbav:"late_days"`
	AutoCreated bool   `dynamodbav:"auto_created"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// FulfillmentExceptionDynamoRepository persists breach records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The deterministic id (one per entity+reason) plus the conditional put is
// what makes the breach scan idempotent across reruns.
type FulfillmentExceptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFulfillmentExceptionRepository = (*FulfillmentExceptionDynamoRepository)(nil)

func NewFulfillmentExceptionDynamoRepository(ddb *dynamodb.Client) *FulfillmentExceptionDynamoRepository {
	return &FulfillmentExceptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FULFILLMENT_EXCEPTIONS_TABLE", defaultFulfillmentExceptionsTableName),
	}
}

func (r *FulfillmentExceptionDynamoRepository) CreateIfAbsent(ctx context.Context, fe entities.FulfillmentException) (bool, error) {
	av, err := attributevalue.MarshalMap(fulfillmentExceptionItem{
		ID:          fe.ID,
		EntityID:    fe.EntityID,
		Reason:      fe.Reason,
		Detail:      fe.Detail,
		OverdueDays: fe.OverdueDays,
		LateDays:    fe.LateDays,
		AutoCreated: fe.AutoCreated,
		CreatedAt:   timeToString(fe.CreatedAt),
	})
	if err != nil {
		return false, err
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
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FulfillmentExceptionDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.FulfillmentException, error) {
	var (
		result  []entities.FulfillmentException
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#entity_id = :entity_id"),
			ExpressionAttributeNames: map[string]string{
				"#entity_id": "entity_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity_id": &types.AttributeValueMemberS{Value: entityID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var page []fulfillmentExceptionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			result = append(result, entities.FulfillmentException{
				ID:          it.ID,
				EntityID:    it.EntityID,
				Reason:      it.Reason,
				Detail:      it.Detail,
				OverdueDays: it.OverdueDays,
				LateDays:    it.LateDays,
				AutoCreated: it.AutoCreated,
				CreatedAt:   stringToTime(it.CreatedAt),
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return result, nil
}
