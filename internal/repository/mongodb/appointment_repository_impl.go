package mongodb

import (
	"context"
	"errors"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentRepository struct {
	collection *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database, collection string) domainRepo.AppointmentRepository {
	return &appointmentRepository{collection: db.Collection(collection)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	_, err := r.collection.InsertOne(ctx, toAppointmentDocument(appointment))
	return err
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var doc appointmentDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *appointmentRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID, role string) ([]entity.Appointment, error) {
	field := "patient_id"
	if role == entity.RoleDoctor {
		field = "doctor_id"
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{field: participantID.String()}, opts)
	if err != nil {
		return nil, err
	}

	var docs []appointmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(docs))
	for i := range docs {
		appointments = append(appointments, *docs[i].toEntity())
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, changes entity.AppointmentChanges) (int64, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": changes.Fields()},
	)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
