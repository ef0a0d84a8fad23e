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

const (
	defaultStoreConfigTableName = "store_config"
	// storeConfigKey is the fixed PK: one store, one config record.
	storeConfigKey = "config"
)

type storeConfigItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Greeting     string `dynamodbav:"greeting,omitempty"`
	DeliveryFee  string `dynamodbav:"delivery_fee"`
	PixKey       string `dynamodbav:"pix_key,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
	MenuImageURL string `dynamodbav:"menu_image_url,omitempty"`
}

// StoreConfigDynamoRepository persists the single StoreConfig record in
// DynamoDB under a fixed key.

type StoreConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStoreConfigRepository = (*StoreConfigDynamoRepository)(nil)

func NewStoreConfigDynamoRepository(ddb *dynamodb.Client) *StoreConfigDynamoRepository {
	return &StoreConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STORE_CONFIG_TABLE", defaultStoreConfigTableName),
	}
}

func (r *StoreConfigDynamoRepository) Get(ctx context.Context) (entities.StoreConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: storeConfigKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoreConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoreConfig{}, nil
	}

	var it storeConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoreConfig{}, err
	}

	fee, _ := strconv.ParseFloat(it.DeliveryFee, 64)
	return entities.StoreConfig{
		Name:         it.Name,
		Greeting:     it.Greeting,
		DeliveryFee:  fee,
		PixKey:       it.PixKey,
		Address:      it.Address,
		MenuImageURL: it.MenuImageURL,
	}, nil
}

func (r *StoreConfigDynamoRepository) Save(ctx context.Context, cfg entities.StoreConfig) (entities.StoreConfig, error) {
	av, err := attributevalue.MarshalMap(storeConfigItem{
		ID:           storeConfigKey,
		Name:         cfg.Name,
		Greeting:     cfg.Greeting,
		DeliveryFee:  floatToString(cfg.DeliveryFee),
		PixKey:       cfg.PixKey,
		Address:      cfg.Address,
		MenuImageURL: cfg.MenuImageURL,
	})
	if err != nil {
		return entities.StoreConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StoreConfig{}, err
	}
	return cfg, nil
}
