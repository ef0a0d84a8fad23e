package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID            string `dynamodbav:"id"`
	CustomerName  string `dynamodbav:"customer_name,omitempty"`
	CustomerPhone string `dynamodbav:"customer_phone"`
	ItemsJSON     string `dynamodbav:"items"`
	Subtotal      string `dynamodbav:"subtotal"`
	DeliveryFee   string `dynamodbav:"delivery_fee"`
	Total         string `dynamodbav:"total"`
	Address       string `dynamodbav:"address,omitempty"`
	DeliveryType  string `dynamodbav:"delivery_type"`
	PaymentMethod string `dynamodbav:"payment_method"`
	CashAmount    string `dynamodbav:"cash_amount,omitempty"`
	Change        string `dynamodbav:"change,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists finalized orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Item lines are stored as a JSON blob: they are written once at finalize
// time and only ever read back whole.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
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
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
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
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o, err := fromOrderItem(it)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return orderItem{}, err
	}
	it := orderItem{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		ItemsJSON:     string(itemsJSON),
		Subtotal:      floatToString(o.Subtotal),
		DeliveryFee:   floatToString(o.DeliveryFee),
		Total:         floatToString(o.Total),
		Address:       o.Address,
		DeliveryType:  string(o.DeliveryType),
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.PaymentMethod == entities.PaymentMethodDinheiro {
		it.CashAmount = floatToString(o.CashAmount)
		it.Change = floatToString(o.Change)
	}
	return it, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var items []entities.OrderItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.Order{}, err
		}
	}
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	fee, _ := strconv.ParseFloat(it.DeliveryFee, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	cash := 0.0
	change := 0.0
	if it.CashAmount != "" {
		cash, _ = strconv.ParseFloat(it.CashAmount, 64)
	}
	if it.Change != "" {
		change, _ = strconv.ParseFloat(it.Change, 64)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Order{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		Address:       it.Address,
		DeliveryType:  entities.DeliveryType(it.DeliveryType),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		CashAmount:    cash,
		Change:        change,
		Status:        entities.OrderStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
