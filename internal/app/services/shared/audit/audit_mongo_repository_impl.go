package audit

import (
	"context"
	"hospital-web-service/internal/app/contracts"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Database, collectionName string) contracts.AuditRepository {
	return &AuditMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *AuditMongoRepository) Record(ctx context.Context, entry *models.AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.SetCreatedAt()
	}
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
