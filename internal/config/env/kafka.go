package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                []string `env:"KAFKA_BROKERS,required"`
	SyncRequestTopic       string   `env:"SYNC_REQUEST_TOPIC" envDefault:"ge-sync.requested"`
	SyncRequestConsumerGID string   `env:"SYNC_REQUEST_CONSUMER_GROUP_ID" envDefault:"ge-sync"`
	SyncResultTopic        string   `env:"SYNC_RESULT_TOPIC" envDefault:"ge-sync.completed"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string        { return cfg.raw.Brokers }
func (cfg *kafka) SyncRequestTopic() string { return cfg.raw.SyncRequestTopic }
func (cfg *kafka) SyncResultTopic() string  { return cfg.raw.SyncResultTopic }
func (cfg *kafka) SyncRequestConsumerGroupID() string {
	return cfg.raw.SyncRequestConsumerGID
}

func (cfg *kafka) SyncRequestConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) SyncResultProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}
