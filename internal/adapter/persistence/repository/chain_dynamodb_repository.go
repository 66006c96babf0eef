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

const defaultChainsTableName = "approval_chains"

type chainStepItem struct {
	Role        string `dynamodbav:"role"`
	Assignee    string `dynamodbav:"assignee,omitempty"`
	Status      string `dynamodbav:"status"`
	SLAHours    int    `dynamodbav:"sla_hours"`
	RequestedAt string `dynamodbav:"requested_at"`
	DecidedAt   string `dynamodbav:"decided_at,omitempty"`
	DecidedBy   string `dynamodbav:"decided_by,omitempty"`
	Note        string `dynamodbav:"note,omitempty"`
}

type chainItem struct {
	ID        string          `dynamodbav:"id"`
	RequestID string          `dynamodbav:"request_id"`
	Scope     string          `dynamodbav:"scope"`
	Status    string          `dynamodbav:"status"`
	Steps     []chainStepItem `dynamodbav:"steps"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

// ChainDynamoRepository persists ApprovalChain entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Steps are stored inline: a chain is small, structurally immutable and
// always read/written whole. Save replaces the item but only while the stored
// status is still pending, so concurrent writers cannot both complete the
// same chain; a lost conditional write surfaces as a zero-value result, the
// shared not-found convention.
type ChainDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChainRepository = (*ChainDynamoRepository)(nil)

func NewChainDynamoRepository(ddb *dynamodb.Client) *ChainDynamoRepository {
	return &ChainDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHAINS_TABLE", defaultChainsTableName),
	}
}

func (r *ChainDynamoRepository) Create(ctx context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error) {
	av, err := attributevalue.MarshalMap(toChainItem(c))
	if err != nil {
		return entities.ApprovalChain{}, err
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
		return entities.ApprovalChain{}, err
	}
	return c, nil
}

func (r *ChainDynamoRepository) GetByID(ctx context.Context, id string) (entities.ApprovalChain, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalChain{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalChain{}, nil
	}

	var it chainItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalChain{}, err
	}
	return fromChainItem(it), nil
}

func (r *ChainDynamoRepository) Save(ctx context.Context, c entities.ApprovalChain) (entities.ApprovalChain, error) {
	av, err := attributevalue.MarshalMap(toChainItem(c))
	if err != nil {
		return entities.ApprovalChain{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ChainStatusPending)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ApprovalChain{}, nil
		}
		return entities.ApprovalChain{}, err
	}
	return c, nil
}

func toChainItem(c entities.ApprovalChain) chainItem {
	steps := make([]chainStepItem, 0, len(c.Steps))
	for _, s := range c.Steps {
		steps = append(steps, chainStepItem{
			Role:        s.Role,
			Assignee:    s.Assignee,
			Status:      string(s.Status),
			SLAHours:    s.SLAHours,
			RequestedAt: timeToString(s.RequestedAt),
			DecidedAt:   optTimeToString(s.DecidedAt),
			DecidedBy:   s.DecidedBy,
			Note:        s.Note,
		})
	}
	return chainItem{
		ID:        c.ID,
		RequestID: c.RequestID,
		Scope:     string(c.Scope),
		Status:    string(c.Status),
		Steps:     steps,
		CreatedAt: timeToString(c.CreatedAt),
		UpdatedAt: timeToString(c.UpdatedAt),
	}
}

func fromChainItem(it chainItem) entities.ApprovalChain {
	steps := make([]entities.ApprovalStep, 0, len(it.Steps))
	for _, s := range it.Steps {
		steps = append(steps, entities.ApprovalStep{
			Role:        s.Role,
			Assignee:    s.Assignee,
			Status:      entities.StepStatus(s.Status),
			SLAHours:    s.SLAHours,
			RequestedAt: stringToTime(s.RequestedAt),
			DecidedAt:   stringToOptTime(s.DecidedAt),
			DecidedBy:   s.DecidedBy,
			Note:        s.Note,
		})
	}
	return entities.ApprovalChain{
		ID:        it.ID,
		RequestID: it.RequestID,
		Scope:     entities.Scope(it.Scope),
		Status:    entities.ChainStatus(it.Status),
		Steps:     steps,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
