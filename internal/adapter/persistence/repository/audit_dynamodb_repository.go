package repository

import (
	"context"
	"sort"

	"corporatepay/internal/domain/entities"
	"corporatepay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "approval_audit"

type auditItem struct {
	ID           string `dynamodbav:"id"`
	EntityID     string `dynamodbav:"entity_id"`
	ChainID      string `dynamodbav:"chain_id,omitempty"`
	Action       string `dynamodbav:"action"`
	Actor        string `dynamodbav:"actor"`
	StatusBefore string `dynamodbav:"status_before,omitempty"`
	StatusAfter  string `dynamodbav:"status_after,omitempty"`
	Note         string `dynamodbav:"note,omitempty"`
	At           string `dynamodbav:"at"`
}

// AuditDynamoRepository is an append-only log of state transitions.
//
// Table requirements:
//   - PK: id (string)
//
// Records are never updated or deleted.
type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, rec entities.AuditRecord) error {
	av, err := attributevalue.MarshalMap(auditItem{
		ID:           rec.ID,
		EntityID:     rec.EntityID,
		ChainID:      rec.ChainID,
		Action:       rec.Action,
		Actor:        rec.Actor,
		StatusBefore: rec.StatusBefore,
		StatusAfter:  rec.StatusAfter,
		Note:         rec.Note,
		At:           timeToString(rec.At),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AuditDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.AuditRecord, error) {
	var (
		result  []entities.AuditRecord
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

		var page []auditItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			result = append(result, entities.AuditRecord{
				ID:           it.ID,
				EntityID:     it.EntityID,
				ChainID:      it.ChainID,
				Action:       it.Action,
				Actor:        it.Actor,
				StatusBefore: it.StatusBefore,
				StatusAfter:  it.StatusAfter,
				Note:         it.Note,
				At:           stringToTime(it.At),
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.Slice(result, func(i, j int) bool { return result[i].At.Before(result[j].At) })
	return result, nil
}
