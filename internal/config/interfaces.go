package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type DMS interface {
	BaseURL() string
	Cookie() string
	Location() string
	LocationCookies() map[string]string
	CompanyID() string
	RequestTimeout() time.Duration
	RequestRPS() float64
	BrowserFallback() bool
	BrowserTimeout() time.Duration
	OrderSearchPath() string
	OrderJSONPath() string
	InboundPath() string
	ReceivingReportPath() string
	ASISLoadsPath() string
	ASISLoadDetailPath() string
	InventoryReportPath() string
}

type Sync interface {
	WindowDays() int
	MaxDaysPerRequest() int
	MaxCSOsPerChunk() int
	BatchSize() int
	Interval() time.Duration
	InventoryTypes() []string
}

type Kafka interface {
	Brokers() []string
	SyncRequestTopic() string
	SyncRequestConsumerGroupID() string
	SyncResultTopic() string
	SyncRequestConsumerConfig() *sarama.Config
	SyncResultProducerConfig() *sarama.Config
}

type Telegram interface {
	BotToken() string
	ChatID() int64
	Enabled() bool
}

type Artifacts interface {
	Enabled() bool
	DSN() string
	DatabaseName() string
	Collection() string
}
