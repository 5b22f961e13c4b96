package repository

import (
	"context"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMessagesTableName = "messages"
	messagesOrderIDIndex     = "order_id-index"
)

type messageItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	SenderID   string `dynamodbav:"sender_id"`
	SenderName string `dynamodbav:"sender_name"`
	SenderRole string `dynamodbav:"sender_role"`
	Body       string `dynamodbav:"message"`
	FileURL    string `dynamodbav:"file_url,omitempty"`
	FileName   string `dynamodbav:"file_name,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	Read       bool   `dynamodbav:"read"`
}

// MessageDynamoRepository persists chat messages in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, SK: created_at)
type MessageDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb DynamoAPI) *MessageDynamoRepository {
	return &MessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *MessageDynamoRepository) Create(ctx context.Context, m entities.Message) (entities.Message, error) {
	av, err := attributevalue.MarshalMap(toMessageItem(m))
	if err != nil {
		return entities.Message{}, err
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
		return entities.Message{}, err
	}
	return m, nil
}

// ListByOrderID returns the thread oldest first.
func (r *MessageDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Message, error) {
	items, err := queryAll[messageItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	msgs := make([]entities.Message, 0, len(items))
	for _, it := range items {
		msgs = append(msgs, fromMessageItem(it))
	}
	return msgs, nil
}

func (r *MessageDynamoRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #read = :read"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#read": "read",
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func toMessageItem(m entities.Message) messageItem {
	return messageItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		SenderRole: string(m.SenderRole),
		Body:       m.Body,
		FileURL:    m.FileURL,
		FileName:   m.FileName,
		CreatedAt:  formatTime(m.CreatedAt),
		Read:       m.Read,
	}
}

func fromMessageItem(it messageItem) entities.Message {
	return entities.Message{
		ID:         it.ID,
		OrderID:    it.OrderID,
		SenderID:   it.SenderID,
		SenderName: it.SenderName,
		SenderRole: entities.SenderRole(it.SenderRole),
		Body:       it.Body,
		FileURL:    it.FileURL,
		FileName:   it.FileName,
		CreatedAt:  parseTime(it.CreatedAt),
		Read:       it.Read,
	}
}
