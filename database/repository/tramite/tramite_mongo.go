package tramiteRepo

import (
	"context"
	"fmt"
	"time"

	"uniportal/database"
	"uniportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTramiteRepo implements TramiteRepository using MongoDB. It covers the
// read-only catalog collection and the filed-trámite collection.
type MongoTramiteRepo struct {
	catalog *mongo.Collection
	filings *mongo.Collection
}

// NewMongoTramiteRepo creates a new instance of TramiteRepository using MongoDB.
func NewMongoTramiteRepo() TramiteRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoTramiteRepo{
		catalog: db.Collection("tramites"),
		filings: db.Collection("tramitesRealizados"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetTipos returns the distinct trámite types present in the catalog.
func (r *MongoTramiteRepo) GetTipos() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	values, err := r.catalog.Distinct(ctx, "tipo", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tramite types: %w", err)
	}

	tipos := make([]string, 0, len(values))
	for _, v := range values {
		if tipo, ok := v.(string); ok {
			tipos = append(tipos, tipo)
		}
	}
	return tipos, nil
}

// GetByTipo returns all catalog entries of the given type.
func (r *MongoTramiteRepo) GetByTipo(tipo string) ([]models.Tramite, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.catalog.Find(ctx, bson.M{"tipo": tipo})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tramites of type %s: %w", tipo, err)
	}
	defer cursor.Close(ctx)

	var tramites []models.Tramite
	for cursor.Next(ctx) {
		var t models.Tramite
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tramite: %w", err)
		}
		tramites = append(tramites, t)
	}
	return tramites, nil
}

// GetByID retrieves a catalog entry by its id.
func (r *MongoTramiteRepo) GetByID(id string) (*models.Tramite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tramite models.Tramite
	if err := r.catalog.FindOne(ctx, bson.M{"id": id}).Decode(&tramite); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tramite with id %s: %w", id, err)
	}
	return &tramite, nil
}

// CreateRealizado inserts a filed trámite record.
func (r *MongoTramiteRepo) CreateRealizado(tr *models.TramiteRealizado) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.filings.InsertOne(ctx, tr)
	if err != nil {
		return fmt.Errorf("failed to create filed tramite: %w", err)
	}
	return nil
}
