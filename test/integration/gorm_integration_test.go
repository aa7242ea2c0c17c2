package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"zaman-assistant-be/internal/entity"
	"zaman-assistant-be/internal/repository/implementation"
	"zaman-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	repo := implementation.NewKnowledgeRepository(gormDB)

	t.Run("Check Knowledge Repository", func(t *testing.T) {
		count, err := repo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Knowledge document count: %d", count)
	})

	t.Run("Store And Search Round Trip", func(t *testing.T) {
		vec := make([]float32, 1536)
		vec[0] = 1

		doc := &entity.KnowledgeDocument{
			Id:      uuid.New(),
			Content: "integration-test-" + uuid.New().String(),
			Metadata: map[string]interface{}{
				"source": "integration_test",
			},
			Embedding: vec,
			CreatedAt: time.Now(),
		}
		err := repo.CreateBulk(context.Background(), []*entity.KnowledgeDocument{doc})
		assert.NoError(t, err)

		docs, err := repo.SearchSimilar(context.Background(), vec, 3)
		assert.NoError(t, err)
		assert.NotEmpty(t, docs)

		// Cleanup
		err = gormDB.Exec("DELETE FROM knowledge_documents WHERE id = ?", doc.Id).Error
		assert.NoError(t, err)
	})
}
