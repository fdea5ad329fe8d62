package export

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resumecraft/go-services/internal/database"
)

// PersistedExport is the Mongo representation of one finished (or failed)
// export: who exported what, how many pages, and where the artifact lives
// in object storage.
type PersistedExport struct {
	ExportID  string    `bson:"exportId" json:"exportId"`
	ResumeID  string    `bson:"resumeId" json:"resumeId"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Filename  string    `bson:"filename" json:"filename"`
	Pages     int       `bson:"pages" json:"pages"`
	PDFKey    string    `bson:"pdfKey,omitempty" json:"pdfKey,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SaveMetadata persists (upsert) export metadata. A no-op when mongoURI is
// empty; exports work without a metadata store.
func SaveMetadata(ctx context.Context, mongoURI, databaseName string, pe *PersistedExport) error {
	if mongoURI == "" {
		return nil
	}
	client, err := database.ConnectMongo(ctx, mongoURI, 5*time.Second)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Disconnect(ctx)

	pe.UpdatedAt = time.Now().UTC()
	if pe.CreatedAt.IsZero() {
		pe.CreatedAt = pe.UpdatedAt
	}

	col := client.Database(databaseName).Collection("exports")
	filter := bson.M{"exportId": pe.ExportID}
	opts := options.Update().SetUpsert(true)
	if _, err := col.UpdateOne(ctx, filter, bson.M{"$set": pe}, opts); err != nil {
		return fmt.Errorf("save export metadata: %w", err)
	}
	return nil
}

// LoadMetadata fetches export metadata by exportId. Returns nil when not
// found or when no store is configured.
func LoadMetadata(ctx context.Context, mongoURI, databaseName, exportID string) (*PersistedExport, error) {
	if mongoURI == "" {
		return nil, nil
	}
	client, err := database.ConnectMongo(ctx, mongoURI, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Disconnect(ctx)

	col := client.Database(databaseName).Collection("exports")
	var pe PersistedExport
	if err := col.FindOne(ctx, bson.M{"exportId": exportID}).Decode(&pe); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &pe, nil
}
