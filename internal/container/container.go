package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/config"
	"github.com/oksasatya/lightbnb-api/internal/infrastructure/queue"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
)

// Container holds the process-wide components built in main.
// Optional backends (ES, GCS, RabbitPub) are nil when not configured.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PGPool *pgxpool.Pool
	Redis  *redis.Client
	Tokens *helpers.SessionTokens

	ES        *elasticsearch.Client
	GCS       *storage.Client
	RabbitPub *queue.EmailPublisher
}

// Close releases the optional clients. The pool and Redis are closed by main.
func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
}
