package repository

import (
	"context"
	"sort"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	OrderID     string `dynamodbav:"order_id"`
	UserID      string `dynamodbav:"user_id"`
	UserName    string `dynamodbav:"user_name"`
	UserEmail   string `dynamodbav:"user_email"`
	Rating      int    `dynamodbav:"rating"`
	Text        string `dynamodbav:"review"`
	ServiceType string `dynamodbav:"service_type"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists reviews in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// Keying by order id makes "one review per order" a conditional put.
type ReviewDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb DynamoAPI) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rv))
	if err != nil {
		return entities.Review{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Review{}, interfaces.ErrConditionFailed
		}
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey("order_id", orderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}
	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

// ListRecent returns up to limit reviews, newest first.
func (r *ReviewDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Review, error) {
	items, err := scanAll[reviewItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	reviews := make([]entities.Review, 0, len(items))
	for _, it := range items {
		reviews = append(reviews, fromReviewItem(it))
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		OrderID:     r.OrderID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		Rating:      r.Rating,
		Text:        r.Text,
		ServiceType: r.ServiceType,
		CreatedAt:   formatTime(r.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		OrderID:     it.OrderID,
		UserID:      it.UserID,
		UserName:    it.UserName,
		UserEmail:   it.UserEmail,
		Rating:      it.Rating,
		Text:        it.Text,
		ServiceType: it.ServiceType,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
