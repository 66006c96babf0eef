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

const defaultExceptionsTableName = "policy_exceptions"

type exceptionItem struct {
	ID        string `dynamodbav:"id"`
	RequestID string `dynamodbav:"request_id"`
	SubjectID string `dynamodbav:"subject_id"`
	Flag      string `dynamodbav:"flag"`
	ValidFrom string `dynamodbav:"valid_from"`
	ValidTo   string `dynamodbav:"valid_to"`
	Status    string `dynamodbav:"status"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ExceptionDynamoRepository persists policy exemptions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// FindCovering filters by subject/flag/status in DynamoDB and checks the
// validity interval in code: timestamps are stored at nanosecond precision,
// which does not compare lexicographically.
type ExceptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExceptionRepository = (*ExceptionDynamoRepository)(nil)

func NewExceptionDynamoRepository(ddb *dynamodb.Client) *ExceptionDynamoRepository {
	return &ExceptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXCEPTIONS_TABLE", defaultExceptionsTableName),
	}
}

func (r *ExceptionDynamoRepository) Create(ctx context.Context, e entities.Exception) (entities.Exception, error) {
	av, err := attributevalue.MarshalMap(toExceptionItem(e))
	if err != nil {
		return entities.Exception{}, err
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
		return entities.Exception{}, err
	}
	return e, nil
}

func (r *ExceptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Exception, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Exception{}, err
	}
	if len(out.Item) == 0 {
		return entities.Exception{}, nil
	}

	var it exceptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Exception{}, err
	}
	return fromExceptionItem(it), nil
}

func (r *ExceptionDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Exception, error) {
	items, err := r.scan(ctx, "#request_id = :request_id",
		map[string]string{"#request_id": "request_id"},
		map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		})
	if err != nil {
		return entities.Exception{}, err
	}
	if len(items) == 0 {
		return entities.Exception{}, nil
	}
	return fromExceptionItem(items[0]), nil
}

func (r *ExceptionDynamoRepository) FindCovering(ctx context.Context, subjectID string, flag entities.Flag, at time.Time) (entities.Exception, error) {
	items, err := r.scan(ctx, "#subject_id = :subject_id AND #flag = :flag AND #status = :status",
		map[string]string{
			"#subject_id": "subject_id",
			"#flag":       "flag",
			"#status":     "status",
		},
		map[string]types.AttributeValue{
			":subject_id": &types.AttributeValueMemberS{Value: subjectID},
			":flag":       &types.AttributeValueMemberS{Value: string(flag)},
			":status":     &types.AttributeValueMemberS{Value: string(entities.ExceptionStatusApproved)},
		})
	if err != nil {
		return entities.Exception{}, err
	}
	for _, it := range items {
		e := fromExceptionItem(it)
		if e.Covers(subjectID, flag, at) {
			return e, nil
		}
	}
	return entities.Exception{}, nil
}

func (r *ExceptionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ExceptionStatus) (entities.Exception, error) {
	now := timeToString(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Exception{}, nil
		}
		return entities.Exception{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Exception{}, nil
	}
	var it exceptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Exception{}, err
	}
	return fromExceptionItem(it), nil
}

func (r *ExceptionDynamoRepository) scan(
	ctx context.Context,
	filter string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]exceptionItem, error) {
	var (
		items   []exceptionItem
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, err
		}

		var page []exceptionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toExceptionItem(e entities.Exception) exceptionItem {
	return exceptionItem{
		ID:        e.ID,
		RequestID: e.RequestID,
		SubjectID: e.SubjectID,
		Flag:      string(e.Flag),
		ValidFrom: timeToString(e.ValidFrom),
		ValidTo:   timeToString(e.ValidTo),
		Status:    string(e.Status),
		Reason:    e.Reason,
		CreatedAt: timeToString(e.CreatedAt),
		UpdatedAt: timeToString(e.UpdatedAt),
	}
}

func fromExceptionItem(it exceptionItem) entities.Exception {
	return entities.Exception{
		ID:        it.ID,
		RequestID: it.RequestID,
		SubjectID: it.SubjectID,
		Flag:      entities.Flag(it.Flag),
		ValidFrom: stringToTime(it.ValidFrom),
		ValidTo:   stringToTime(it.ValidTo),
		Status:    entities.ExceptionStatus(it.Status),
		Reason:    it.Reason,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}
}
