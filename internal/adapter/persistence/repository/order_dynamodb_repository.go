package repository

import (
	"context"
	"sort"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"
)

type statusHistoryItem struct {
	Status        string `dynamodbav:"status"`
	Timestamp     string `dynamodbav:"timestamp"`
	UpdatedBy     string `dynamodbav:"updated_by,omitempty"`
	UpdatedByName string `dynamodbav:"updated_by_name,omitempty"`
	Note          string `dynamodbav:"note,omitempty"`
}

type orderItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id,omitempty"`
	UserName     string `dynamodbav:"user_name"`
	UserEmail    string `dynamodbav:"user_email"`
	UserWhatsapp string `dynamodbav:"user_whatsapp"`

	ServiceType string `dynamodbav:"service_type"`
	Description string `dynamodbav:"description"`
	Deadline    string `dynamodbav:"deadline,omitempty"`
	Budget      string `dynamodbav:"budget"`
	Price       string `dynamodbav:"price,omitempty"`
	RawFileLink string `dynamodbav:"raw_file_link,omitempty"`

	Status        string              `dynamodbav:"status"`
	StatusHistory []statusHistoryItem `dynamodbav:"status_history"`
	FileURLs      []string            `dynamodbav:"file_urls,omitempty"`
	DownloadURLs  []string            `dynamodbav:"download_urls,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	DeliveredAt string `dynamodbav:"delivered_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Guest orders carry no user_id and are therefore absent from the index.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ListByUserID returns the user's orders newest first.
func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	items, err := queryAll[orderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	return fromOrderItems(items), nil
}

// ListAll scans the table and returns every order newest first.
func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll[orderItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	orders := fromOrderItems(items)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// AppendStatus moves the order from one status to the entry's status and
// appends the entry to status_history in a single conditional write.
// It returns interfaces.ErrConditionFailed when the order is missing or its
// status is no longer from.
func (r *OrderDynamoRepository) AppendStatus(ctx context.Context, id string, from entities.OrderStatus, entry entities.StatusHistoryEntry) (entities.Order, error) {
	entryAV, err := attributevalue.Marshal(toStatusHistoryItem(entry))
	if err != nil {
		return entities.Order{}, err
	}

	ts := formatTime(entry.Timestamp)
	expr := "SET #status = :to, #updated_at = :ts, #history = list_append(if_not_exists(#history, :empty), :entry)"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
		"#history":    "status_history",
	}
	if entry.Status == entities.OrderStatusDelivered {
		expr += ", #delivered_at = :ts"
		names["#delivered_at"] = "delivered_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":    &types.AttributeValueMemberS{Value: string(entry.Status)},
			":from":  &types.AttributeValueMemberS{Value: string(from)},
			":ts":    &types.AttributeValueMemberS{Value: ts},
			":entry": &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAV}},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
		ExpressionAttributeNames: mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, interfaces.ErrConditionFailed
		}
		return entities.Order{}, err
	}
	return decodeOrder(out.Attributes)
}

func (r *OrderDynamoRepository) AppendDownloadURLs(ctx context.Context, id string, urls []string) (entities.Order, error) {
	return r.appendList(ctx, id, "download_urls", urls)
}

func (r *OrderDynamoRepository) AppendFileURLs(ctx context.Context, id string, urls []string) (entities.Order, error) {
	return r.appendList(ctx, id, "file_urls", urls)
}

func (r *OrderDynamoRepository) appendList(ctx context.Context, id, attr string, values []string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #list = list_append(if_not_exists(#list, :empty), :values), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":values":     stringList(values),
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#list":       attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePrice(ctx context.Context, id string, price string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #price = :price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":price":      &types.AttributeValueMemberS{Value: price},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#price":      "price",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// update applies a non-status change. A missing order yields a zero Order.
func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return decodeOrder(out.Attributes)
}

func decodeOrder(attrs map[string]types.AttributeValue) (entities.Order, error) {
	if len(attrs) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toStatusHistoryItem(e entities.StatusHistoryEntry) statusHistoryItem {
	return statusHistoryItem{
		Status:        string(e.Status),
		Timestamp:     formatTime(e.Timestamp),
		UpdatedBy:     e.UpdatedBy,
		UpdatedByName: e.UpdatedByName,
		Note:          e.Note,
	}
}

func toOrderItem(o entities.Order) orderItem {
	history := make([]statusHistoryItem, 0, len(o.StatusHistory))
	for _, e := range o.StatusHistory {
		history = append(history, toStatusHistoryItem(e))
	}
	it := orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		UserName:      o.UserName,
		UserEmail:     o.UserEmail,
		UserWhatsapp:  o.UserWhatsapp,
		ServiceType:   o.ServiceType,
		Description:   o.Description,
		Deadline:      o.Deadline,
		Budget:        o.Budget,
		Price:         o.Price,
		RawFileLink:   o.RawFileLink,
		Status:        string(o.Status),
		StatusHistory: history,
		FileURLs:      o.FileURLs,
		DownloadURLs:  o.DownloadURLs,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
	if o.DeliveredAt != nil {
		it.DeliveredAt = formatTime(*o.DeliveredAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	history := make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		history = append(history, entities.StatusHistoryEntry{
			Status:        entities.OrderStatus(h.Status),
			Timestamp:     parseTime(h.Timestamp),
			UpdatedBy:     h.UpdatedBy,
			UpdatedByName: h.UpdatedByName,
			Note:          h.Note,
		})
	}
	o := entities.Order{
		ID:            it.ID,
		UserID:        it.UserID,
		UserName:      it.UserName,
		UserEmail:     it.UserEmail,
		UserWhatsapp:  it.UserWhatsapp,
		ServiceType:   it.ServiceType,
		Description:   it.Description,
		Deadline:      it.Deadline,
		Budget:        it.Budget,
		Price:         it.Price,
		RawFileLink:   it.RawFileLink,
		Status:        entities.OrderStatus(it.Status),
		StatusHistory: history,
		FileURLs:      it.FileURLs,
		DownloadURLs:  it.DownloadURLs,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.DeliveredAt != "" {
		d := parseTime(it.DeliveredAt)
		o.DeliveredAt = &d
	}
	return o
}

func fromOrderItems(items []orderItem) []entities.Order {
	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	return orders
}
