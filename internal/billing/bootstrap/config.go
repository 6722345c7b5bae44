package bootstrap

import "github.com/murugannagaraja781/billingsoftware/internal/pkg/database"

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HttpPort       string
	StorageBackend string
	DbSettings     database.PostgresSettings
	DefaultStoreId string
}
