package repository

import (
	"context"
	"errors"
	"time"

	"vetpoint/internal/domain/entities"
	"vetpoint/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAppointmentsTableName = "appointments"
	appointmentsDetailIDIndex    = "appointment_detail_id-index"
)

type appointmentItem struct {
	ID                  string `dynamodbav:"id"`
	AppointmentDetailID string `dynamodbav:"appointment_detail_id"`
	Status              int    `dynamodbav:"status"`

	PetID             string `dynamodbav:"pet_id,omitempty"`
	HealthConditionID string `dynamodbav:"health_condition_id,omitempty"`
	MicrochipItemID   string `dynamodbav:"microchip_item_id,omitempty"`
	Note              string `dynamodbav:"note,omitempty"`

	VetID           string `dynamodbav:"vet_id,omitempty"`
	AppointmentDate string `dynamodbav:"appointment_date,omitempty"`

	HeartRate     string `dynamodbav:"heart_rate,omitempty"`
	BreathingRate string `dynamodbav:"breathing_rate,omitempty"`
	Weight        string `dynamodbav:"weight,omitempty"`
	Temperature   string `dynamodbav:"temperature,omitempty"`

	SkinAndCoat     string `dynamodbav:"skin_and_coat,omitempty"`
	EyesAndEars     string `dynamodbav:"eyes_and_ears,omitempty"`
	OralCavity      string `dynamodbav:"oral_cavity,omitempty"`
	Respiratory     string `dynamodbav:"respiratory,omitempty"`
	Cardiovascular  string `dynamodbav:"cardiovascular,omitempty"`
	Digestive       string `dynamodbav:"digestive,omitempty"`
	Musculoskeletal string `dynamodbav:"musculoskeletal,omitempty"`
	NervousSystem   string `dynamodbav:"nervous_system,omitempty"`
	Conclusion      string `dynamodbav:"conclusion,omitempty"`

	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	PaymentStatus string `dynamodbav:"payment_status,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists AppointmentWorkflow entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: appointment_detail_id-index (PK: appointment_detail_id)

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.AppointmentWorkflow) (entities.AppointmentWorkflow, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
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
		return entities.AppointmentWorkflow{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AppointmentWorkflow, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if len(out.Item) == 0 {
		return entities.AppointmentWorkflow{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) GetByAppointmentDetailID(ctx context.Context, detailID string) (entities.AppointmentWorkflow, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(appointmentsDetailIDIndex),
		KeyConditionExpression: aws.String("#detail_id = :detail_id"),
		ExpressionAttributeNames: map[string]string{
			"#detail_id": "appointment_detail_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":detail_id": &types.AttributeValueMemberS{Value: detailID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	if len(out.Items) == 0 {
		return entities.AppointmentWorkflow{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	return fromAppointmentItem(it), nil
}

// Replace writes the full record. The transition contract is a
// full-snapshot write on every step, so a plain PutItem guarded by
// existence is exactly the storage-level semantics.
func (r *AppointmentDynamoRepository) Replace(ctx context.Context, a entities.AppointmentWorkflow) (entities.AppointmentWorkflow, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AppointmentWorkflow{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AppointmentWorkflow{}, nil
		}
		return entities.AppointmentWorkflow{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) UpdateVetAssignment(ctx context.Context, id string, vetID string, status entities.AppointmentStatus) (entities.AppointmentWorkflow, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #vet_id = :vet_id, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":vet_id":     &types.AttributeValueMemberS{Value: vetID},
			":status":     &types.AttributeValueMemberN{Value: intToString(int(status))},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#vet_id":     "vet_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AppointmentDynamoRepository) UpdatePaymentRef(ctx context.Context, id string, ref entities.PaymentRef) (entities.AppointmentWorkflow, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_id = :payment_id, #payment_method = :payment_method, #payment_status = :payment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_id":     &types.AttributeValueMemberS{Value: ref.PaymentID},
			":payment_method": &types.AttributeValueMemberS{Value: string(ref.PaymentMethod)},
			":payment_status": &types.AttributeValueMemberS{Value: string(ref.PaymentStatus)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_id":     "payment_id",
			"#payment_method": "payment_method",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *AppointmentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.AppointmentWorkflow, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AppointmentWorkflow{}, nil
		}
		return entities.AppointmentWorkflow{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AppointmentWorkflow{}, nil
	}
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AppointmentWorkflow{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.AppointmentWorkflow) appointmentItem {
	return appointmentItem{
		ID:                  a.ID,
		AppointmentDetailID: a.AppointmentDetailID,
		Status:              int(a.Status),
		PetID:               a.PetID,
		HealthConditionID:   a.HealthConditionID,
		MicrochipItemID:     a.MicrochipItemID,
		Note:                a.Note,
		VetID:               a.VetAssignment.VetID,
		AppointmentDate:     timeToString(a.VetAssignment.AppointmentDate),
		HeartRate:           floatToString(a.VitalSigns.HeartRate),
		BreathingRate:       floatToString(a.VitalSigns.BreathingRate),
		Weight:              floatToString(a.VitalSigns.Weight),
		Temperature:         floatToString(a.VitalSigns.Temperature),
		SkinAndCoat:         a.HealthCheck.SkinAndCoat,
		EyesAndEars:         a.HealthCheck.EyesAndEars,
		OralCavity:          a.HealthCheck.OralCavity,
		Respiratory:         a.HealthCheck.Respiratory,
		Cardiovascular:      a.HealthCheck.Cardiovascular,
		Digestive:           a.HealthCheck.Digestive,
		Musculoskeletal:     a.HealthCheck.Musculoskeletal,
		NervousSystem:       a.HealthCheck.NervousSystem,
		Conclusion:          a.HealthCheck.Conclusion,
		PaymentID:           a.Payment.PaymentID,
		PaymentMethod:       string(a.Payment.PaymentMethod),
		PaymentStatus:       string(a.Payment.PaymentStatus),
		CreatedAt:           a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.AppointmentWorkflow {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.AppointmentWorkflow{
		ID:                  it.ID,
		AppointmentDetailID: it.AppointmentDetailID,
		Status:              entities.AppointmentStatus(it.Status),
		PetID:               it.PetID,
		HealthConditionID:   it.HealthConditionID,
		MicrochipItemID:     it.MicrochipItemID,
		Note:                it.Note,
		VetAssignment: entities.VetAssignment{
			VetID:           it.VetID,
			AppointmentDate: stringToTime(it.AppointmentDate),
		},
		VitalSigns: entities.VitalSigns{
			HeartRate:     stringToFloat(it.HeartRate),
			BreathingRate: stringToFloat(it.BreathingRate),
			Weight:        stringToFloat(it.Weight),
			Temperature:   stringToFloat(it.Temperature),
		},
		HealthCheck: entities.HealthCheck{
			SkinAndCoat:     it.SkinAndCoat,
			EyesAndEars:     it.EyesAndEars,
			OralCavity:      it.OralCavity,
			Respiratory:     it.Respiratory,
			Cardiovascular:  it.Cardiovascular,
			Digestive:       it.Digestive,
			Musculoskeletal: it.Musculoskeletal,
			NervousSystem:   it.NervousSystem,
			Conclusion:      it.Conclusion,
		},
		Payment: entities.PaymentRef{
			PaymentID:     it.PaymentID,
			PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
			PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
