package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDisputesTableName = "disputes"

type disputeItem struct {
	ID            string `dynamodbav:"id"`
	EntityID      string `dynamodbav:"entity_id"`
	Status        string `dynamodbav:"status"`
	Reason        string `dynamodbav:"reason"`
	Detail        string `dynamodbav:"detail,omitempty"`
	AutoTriggered bool   `dynamodbav:"auto_triggered"`
	PenaltyAmount int64  `dynamodbav:"penalty_amount"`
	Currency      string `dynamodbav:"currency,omitempty"`
	ResolvedBy    string `dynamodbav:"resolved_by,omitempty"`
	ResolvedAt    string `dynamodbav:"resolved_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// DisputeDynamoRepository persists Dispute entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type DisputeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDisputeRepository = (*DisputeDynamoRepository)(nil)

func NewDisputeDynamoRepository(ddb *dynamodb.Client) *DisputeDynamoRepository {
	return &DisputeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DISPUTES_TABLE", defaultDisputesTableName),
	}
}

func (r *DisputeDynamoRepository) Create(ctx context.Context, d entities.Dispute) (entities.Dispute, error) {
	created, err := r.CreateIfAbsent(ctx, d)
	if err != nil {
		return entities.Dispute{}, err
	}
	if !created {
		return entities.Dispute{}, errors.New("dispute already exists: " + d.ID)
	}
	return d, nil
}

func (r *DisputeDynamoRepository) CreateIfAbsent(ctx context.Context, d entities.Dispute) (bool, error) {
	av, err := attributevalue.MarshalMap(toDisputeItem(d))
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

func (r *DisputeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Dispute, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Dispute{}, err
	}
	if len(out.Item) == 0 {
		return entities.Dispute{}, nil
	}

	var it disputeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Dispute{}, err
	}
	return fromDisputeItem(it), nil
}

func (r *DisputeDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.Dispute, error) {
	var (
		result  []entities.Dispute
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

		var page []disputeItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			result = append(result, fromDisputeItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *DisputeDynamoRepository) Resolve(ctx context.Context, id, resolvedBy string, penalty int64, currency string, at time.Time) (entities.Dispute, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #status = :status, #resolved_by = :resolved_by, " +
			"#resolved_at = :resolved_at, #penalty_amount = :penalty_amount, #currency = :currency, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.DisputeStatusResolved)},
			":resolved_by":    &types.AttributeValueMemberS{Value: resolvedBy},
			":resolved_at":    &types.AttributeValueMemberS{Value: timeToString(at)},
			":penalty_amount": &types.AttributeValueMemberN{Value: strconv.FormatInt(penalty, 10)},
			":currency":       &types.AttributeValueMemberS{Value: currency},
			":updated_at":     &types.AttributeValueMemberS{Value: timeToString(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#status":         "status",
			"#resolved_by":    "resolved_by",
			"#resolved_at":    "resolved_at",
			"#penalty_amount": "penalty_amount",
			"#currency":       "currency",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Dispute{}, nil
		}
		return entities.Dispute{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Dispute{}, nil
	}
	var it disputeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Dispute{}, err
	}
	return fromDisputeItem(it), nil
}

func toDisputeItem(d entities.Dispute) disputeItem {
	return disputeItem{
		ID:            d.ID,
		EntityID:      d.EntityID,
		Status:        string(d.Status),
		Reason:        d.Reason,
		Detail:        d.Detail,
		AutoTriggered: d.AutoTriggered,
		PenaltyAmount: d.PenaltyAmount,
		Currency:      d.Currency,
		ResolvedBy:    d.ResolvedBy,
		ResolvedAt:    optTimeToString(d.ResolvedAt),
		CreatedAt:     timeToString(d.CreatedAt),
		UpdatedAt:     timeToString(d.UpdatedAt),
	}
}

func fromDisputeItem(it disputeItem) entities.Dispute {
	return entities.Dispute{
		ID:            it.ID,
		EntityID:      it.EntityID,
		Status:        entities.DisputeStatus(it.Status),
		Reason:        it.Reason,
		Detail:        it.Detail,
		AutoTriggered: it.AutoTriggered,
		PenaltyAmount: it.PenaltyAmount,
		Currency:      it.Currency,
		ResolvedBy:    it.ResolvedBy,
		ResolvedAt:    stringToOptTime(it.ResolvedAt),
		CreatedAt:     stringToTime(it.CreatedAt),
		UpdatedAt:     stringToTime(it.UpdatedAt),
	}
}
