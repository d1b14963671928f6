package notes

import (
	"context"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/app/models"
	"rinova-service/internal/pkg/constvars"
	"rinova-service/internal/pkg/dto/requests"
	"rinova-service/internal/pkg/dto/responses"
	"rinova-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewNoteMongoRepository(db *mongo.Client, dbName string) contracts.NoteRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionMedicalNotes)

	// Best effort, matching the indexes the original deployment relies on.
	// Index creation failures must not prevent startup.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "text", Value: "text"}}},
	})

	return &NoteMongoRepository{
		Collection: collection,
	}
}

func (r *NoteMongoRepository) CreateNote(ctx context.Context, note *models.MedicalNote) (string, error) {
	result, err := r.Collection.InsertOne(ctx, note)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NoteMongoRepository) UpdateExtraction(ctx context.Context, noteID string, extraction *models.ExtractionData) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"extraction": extraction,
			"status":     constvars.NoteStatusCompleted,
			"updated_at": time.Now().UTC(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

func (r *NoteMongoRepository) UpdateStatus(ctx context.Context, noteID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NoteMongoRepository) FindByID(ctx context.Context, noteID string) (*models.MedicalNote, error) {
	objectID, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var note models.MedicalNote
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &note, nil
}

func (r *NoteMongoRepository) FindRecent(ctx context.Context, limit int) ([]models.MedicalNote, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notes := make([]models.MedicalNote, 0, limit)
	err = cursor.All(ctx, &notes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notes, nil
}

func (r *NoteMongoRepository) Search(ctx context.Context, request *requests.SearchNotes) ([]models.MedicalNote, int64, error) {
	filter := bson.M{}
	if request.Query != "" {
		filter["$text"] = bson.M{"$search": request.Query}
	}
	if request.Status != "" {
		filter["status"] = request.Status
	}
	if !request.StartDate.IsZero() && !request.EndDate.IsZero() {
		filter["created_at"] = bson.M{
			"$gte": request.StartDate,
			"$lte": request.EndDate,
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((request.Page - 1) * request.PageSize)).
		SetLimit(int64(request.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notes := make([]models.MedicalNote, 0, request.PageSize)
	err = cursor.All(ctx, &notes)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notes, total, nil
}

func (r *NoteMongoRepository) ExtractionStats(ctx context.Context, since time.Time) (*responses.ExtractionStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", constvars.NoteStatusCompleted}}, 1, 0},
			}},
			"avg_processing_time_ms": bson.M{"$avg": "$extraction.metadata.processing_time_ms"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total               int64   `bson:"total"`
		Completed           int64   `bson:"completed"`
		AvgProcessingTimeMs float64 `bson:"avg_processing_time_ms"`
	}
	err = cursor.All(ctx, &rows)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	stats := &responses.ExtractionStats{}
	if len(rows) == 0 {
		return stats, nil
	}

	stats.TotalExtractions = rows[0].Total
	stats.AvgProcessingTimeMs = rows[0].AvgProcessingTimeMs
	if rows[0].Total > 0 {
		stats.SuccessRate = float64(rows[0].Completed) / float64(rows[0].Total) * 100
	}
	return stats, nil
}

func (r *NoteMongoRepository) CommonCodes(ctx context.Context, since time.Time, limit int) ([]responses.CommonCode, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": since},
			"status":     constvars.NoteStatusCompleted,
		}}},
		{{Key: "$unwind", Value: "$extraction.icd10_codes"}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$extraction.icd10_codes.code",
			"count":       bson.M{"$sum": 1},
			"description": bson.M{"$first": "$extraction.icd10_codes.description"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	codes := make([]responses.CommonCode, 0, limit)
	err = cursor.All(ctx, &codes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return codes, nil
}
