package repository

import (
	"context"
	"strconv"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPromotionsTableName = "promotions"

type promotionItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Active      bool   `dynamodbav:"active"`
}

// PromotionDynamoRepository persists Promotion entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PromotionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPromotionRepository = (*PromotionDynamoRepository)(nil)

func NewPromotionDynamoRepository(ddb *dynamodb.Client) *PromotionDynamoRepository {
	return &PromotionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROMOTIONS_TABLE", defaultPromotionsTableName),
	}
}

func (r *PromotionDynamoRepository) Create(ctx context.Context, p entities.Promotion) (entities.Promotion, error) {
	av, err := attributevalue.MarshalMap(promotionItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       floatToString(p.Price),
		Active:      p.Active,
	})
	if err != nil {
		return entities.Promotion{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Promotion{}, err
	}
	return p, nil
}

func (r *PromotionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PromotionDynamoRepository) List(ctx context.Context, onlyActive bool) ([]entities.Promotion, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if onlyActive {
		input.FilterExpression = aws.String("#active = :active")
		input.ExpressionAttributeNames = map[string]string{"#active": "active"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, input)
	if err != nil {
		return nil, err
	}

	var items []promotionItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	promotions := make([]entities.Promotion, 0, len(items))
	for _, it := range items {
		price, _ := strconv.ParseFloat(it.Price, 64)
		promotions = append(promotions, entities.Promotion{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Price:       price,
			Active:      it.Active,
		})
	}
	return promotions, nil
}
