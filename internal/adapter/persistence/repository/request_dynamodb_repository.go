package repository

import (
	"context"
	"errors"
	"time"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestsTableName = "approval_requests"

type requestItem struct {
	ID             string   `dynamodbav:"id"`
	RequesterID    string   `dynamodbav:"requester_id"`
	SubjectID      string   `dynamodbav:"subject_id,omitempty"`
	Scope          string   `dynamodbav:"scope"`
	Amount         int64    `dynamodbav:"amount"`
	Currency       string   `dynamodbav:"currency"`
	Quantity       int      `dynamodbav:"quantity"`
	Category       string   `dynamodbav:"category,omitempty"`
	CounterpartyID string   `dynamodbav:"counterparty_id,omitempty"`
	Purpose        string   `dynamodbav:"purpose,omitempty"`
	CostCenter     string   `dynamodbav:"cost_center,omitempty"`
	OccurredAt     string   `dynamodbav:"occurred_at"`
	Status         string   `dynamodbav:"status"`
	Flags          []string `dynamodbav:"flags,omitempty"`
	ChainID        string   `dynamodbav:"chain_id,omitempty"`
	DueAt          string   `dynamodbav:"due_at,omitempty"`
	CompletedAt    string   `dynamodbav:"completed_at,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists ApprovalRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ListDue uses a filtered scan on the presence of due_at; the fulfillment
// population is small enough that a dedicated GSI is not worth its cost yet.
type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.ApprovalRequest) (entities.ApprovalRequest, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.ApprovalRequest{}, err
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
		return entities.ApprovalRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ApprovalRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ApprovalRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RequestDynamoRepository) SetCompleted(ctx context.Context, id string, at time.Time) (entities.ApprovalRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #completed_at = :completed_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":completed_at": &types.AttributeValueMemberS{Value: timeToString(at)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#completed_at": "completed_at",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RequestDynamoRepository) ListDue(ctx context.Context) ([]entities.ApprovalRequest, error) {
	var (
		reqs    []entities.ApprovalRequest
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("attribute_exists(#due_at)"),
			ExpressionAttributeNames: map[string]string{
				"#due_at": "due_at",
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []requestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			reqs = append(reqs, fromRequestItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return reqs, nil
}

func (r *RequestDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ApprovalRequest, error) {
	now := timeToString(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ApprovalRequest{}, nil
		}
		return entities.ApprovalRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ApprovalRequest{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApprovalRequest{}, err
	}
	return fromRequestItem(it), nil
}

func toRequestItem(r entities.ApprovalRequest) requestItem {
	flags := make([]string, 0, len(r.Flags))
	for _, f := range r.Flags {
		flags = append(flags, string(f))
	}
	return requestItem{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		SubjectID:      r.SubjectID,
		Scope:          string(r.Scope),
		Amount:         r.Amount,
		Currency:       r.Currency,
		Quantity:       r.Quantity,
		Category:       r.Category,
		CounterpartyID: r.CounterpartyID,
		Purpose:        r.Purpose,
		CostCenter:     r.CostCenter,
		OccurredAt:     timeToString(r.OccurredAt),
		Status:         string(r.Status),
		Flags:          flags,
		ChainID:        r.ChainID,
		DueAt:          optTimeToString(r.DueAt),
		CompletedAt:    optTimeToString(r.CompletedAt),
		CreatedAt:      timeToString(r.CreatedAt),
		UpdatedAt:      timeToString(r.UpdatedAt),
	}
}

func fromRequestItem(it requestItem) entities.ApprovalRequest {
	flags := make([]entities.Flag, 0, len(it.Flags))
	for _, f := range it.Flags {
		flags = append(flags, entities.Flag(f))
	}
	if len(flags) == 0 {
		flags = nil
	}
	return entities.ApprovalRequest{
		ID:             it.ID,
		RequesterID:    it.RequesterID,
		SubjectID:      it.SubjectID,
		Scope:          entities.Scope(it.Scope),
		Amount:         it.Amount,
		Currency:       it.Currency,
		Quantity:       it.Quantity,
		Category:       it.Category,
		CounterpartyID: it.CounterpartyID,
		Purpose:        it.Purpose,
		CostCenter:     it.CostCenter,
		OccurredAt:     stringToTime(it.OccurredAt),
		Status:         entities.RequestStatus(it.Status),
		Flags:          flags,
		ChainID:        it.ChainID,
		DueAt:          stringToOptTime(it.DueAt),
		CompletedAt:    stringToOptTime(it.CompletedAt),
		CreatedAt:      stringToTime(it.CreatedAt),
		UpdatedAt:      stringToTime(it.UpdatedAt),
	}
}
