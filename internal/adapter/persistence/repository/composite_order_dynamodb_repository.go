package repository

import (
	"context"
	"errors"
	"time"

	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrOrderExists = errors.New("order already exists")

// Money columns are kept as decimal strings so the stored text matches what
// was confirmed.
type orderItem struct {
	Code                  string               `json:"code"`
	Subtotal              string               `json:"subtotal"`
	TaxAmount             string               `json:"tax_amount"`
	ServiceFeeOnLabor     string               `json:"service_fee_on_labor"`
	ServiceFeeOnMaterials string               `json:"service_fee_on_materials"`
	Common                entities.OrderCommon `json:"common"`
	Works                 []entities.OrderWork `json:"works"`
	CreatedAt             string               `json:"created_at"`
	UpdatedAt             string               `json:"updated_at"`
}

// CompositeOrderDynamoRepository persists confirmed orders in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
type CompositeOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICompositeOrderRepository = (*CompositeOrderDynamoRepository)(nil)

func NewCompositeOrderDynamoRepository(ddb DynamoAPI, tableName string) *CompositeOrderDynamoRepository {
	return &CompositeOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CompositeOrderDynamoRepository) Create(ctx context.Context, o entities.CompositeOrder) (entities.CompositeOrder, error) {
	av, err := attributevalue.MarshalMapWithOptions(toOrderItem(o), jsonTags)
	if err != nil {
		return entities.CompositeOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CompositeOrder{}, ErrOrderExists
		}
		return entities.CompositeOrder{}, err
	}
	return o, nil
}

func (r *CompositeOrderDynamoRepository) GetByCode(ctx context.Context, code string) (entities.CompositeOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CompositeOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.CompositeOrder{}, nil
	}
	return decodeOrder(out.Item)
}

// Update replaces every mutable attribute of an existing order. Missing
// orders yield the zero value.
func (r *CompositeOrderDynamoRepository) Update(ctx context.Context, o entities.CompositeOrder) (entities.CompositeOrder, error) {
	common, err := attributevalue.MarshalWithOptions(o.Common, jsonTags)
	if err != nil {
		return entities.CompositeOrder{}, err
	}
	works, err := attributevalue.MarshalWithOptions(o.Works, jsonTags)
	if err != nil {
		return entities.CompositeOrder{}, err
	}

	return r.update(ctx, o.Code, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subtotal = :subtotal, #tax = :tax, #fee_labor = :fee_labor, #fee_materials = :fee_materials, " +
			"#common = :common, #works = :works, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":subtotal":      &types.AttributeValueMemberS{Value: floatToString(o.Subtotal)},
			":tax":           &types.AttributeValueMemberS{Value: floatToString(o.TaxAmount)},
			":fee_labor":     &types.AttributeValueMemberS{Value: floatToString(o.ServiceFeeOnLabor)},
			":fee_materials": &types.AttributeValueMemberS{Value: floatToString(o.ServiceFeeOnMaterials)},
			":common":        common,
			":works":         works,
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#subtotal":      "subtotal",
			"#tax":           "tax_amount",
			"#fee_labor":     "service_fee_on_labor",
			"#fee_materials": "service_fee_on_materials",
			"#common":        "common",
			"#works":         "works",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *CompositeOrderDynamoRepository) update(
	ctx context.Context,
	code string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.CompositeOrder, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression:       aws.String("attribute_exists(#code)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#code": "code"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CompositeOrder{}, nil
		}
		return entities.CompositeOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CompositeOrder{}, nil
	}
	return decodeOrder(out.Attributes)
}

func decodeOrder(av map[string]types.AttributeValue) (entities.CompositeOrder, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMapWithOptions(av, &it, jsonTagsDecode); err != nil {
		return entities.CompositeOrder{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.CompositeOrder) orderItem {
	return orderItem{
		Code:                  o.Code,
		Subtotal:              floatToString(o.Subtotal),
		TaxAmount:             floatToString(o.TaxAmount),
		ServiceFeeOnLabor:     floatToString(o.ServiceFeeOnLabor),
		ServiceFeeOnMaterials: floatToString(o.ServiceFeeOnMaterials),
		Common:                o.Common,
		Works:                 o.Works,
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.CompositeOrder {
	return entities.CompositeOrder{
		Code:                  it.Code,
		Subtotal:              stringToFloat(it.Subtotal),
		TaxAmount:             stringToFloat(it.TaxAmount),
		ServiceFeeOnLabor:     stringToFloat(it.ServiceFeeOnLabor),
		ServiceFeeOnMaterials: stringToFloat(it.ServiceFeeOnMaterials),
		Common:                it.Common,
		Works:                 it.Works,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
