//go:build integration

package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	kafkaTc "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/you-humble/ge-sync/internal/converter"
	"github.com/you-humble/ge-sync/internal/model"
	reqconsumer "github.com/you-humble/ge-sync/internal/service/consumer/request"
	resproducer "github.com/you-humble/ge-sync/internal/service/producer/result"
	"github.com/you-humble/ge-sync/internal/service/runner"
	"github.com/you-humble/ge-sync/platform/kafka"
	"github.com/you-humble/ge-sync/platform/kafka/consumer"
	"github.com/you-humble/ge-sync/platform/kafka/middleware"
	"github.com/you-humble/ge-sync/platform/kafka/producer"
	"github.com/you-humble/ge-sync/platform/logger"
)

const (
	kafkaImage   = "confluentinc/cp-kafka:7.6.1"
	requestTopic = "ge-sync.requested"
	resultTopic  = "ge-sync.completed"
	requestGroup = "ge-sync-e2e"
	resultGroup  = "ge-sync-e2e-results"
)

// stubFlows answers every flow with a canned successful result.
type stubFlows struct {
	mu    sync.Mutex
	calls []model.SyncRequest
}

func (s *stubFlows) record(req model.SyncRequest) model.SyncResult {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	return model.SyncResult{
		RunID:   uuid.New(),
		Flow:    req.Flow,
		Success: true,
		Stats:   model.SyncStats{NewItems: 3},
		Log:     []string{"stub run"},
	}
}

func (s *stubFlows) SyncOrders(_ context.Context, _ model.SyncOptions) model.SyncResult {
	return s.record(model.SyncRequest{Flow: model.FlowOrders})
}

func (s *stubFlows) SyncInbound(_ context.Context, _ model.SyncOptions) model.SyncResult {
	return s.record(model.SyncRequest{Flow: model.FlowInbound})
}

func (s *stubFlows) SyncInventory(_ context.Context, t model.InventoryType, _ model.SyncOptions) model.SyncResult {
	return s.record(model.SyncRequest{Flow: model.FlowInventory, InventoryType: t})
}

func saramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Admin.Timeout = 10 * time.Second
	return cfg
}

func createTopics(brokers []string, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(brokers, saramaConfig())
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}

func newConsumer(brokers []string, group, topic string) kafka.Consumer {
	cg, err := sarama.NewConsumerGroup(brokers, group, saramaConfig())
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(cg.Close)

	return consumer.NewConsumer(cg, []string{topic}, logger.L(),
		middleware.Recovery(logger.L()),
		middleware.Logging(logger.L()),
	)
}

func newProducer(brokers []string, topic string) kafka.Producer {
	sp, err := sarama.NewSyncProducer(brokers, saramaConfig())
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(sp.Close)

	return producer.NewProducer(sp, topic, logger.L(), map[string]string{"source": "ge-sync-e2e"})
}

var _ = Describe("Kafka sync requests e2e", Ordered, func() {
	var (
		kafkaC  *kafkaTc.KafkaContainer
		brokers []string
		flows   *stubFlows
		events  chan converter.SyncCompletedEvent
	)

	BeforeAll(func() {
		By("starting kafka container")
		var err error
		kafkaC, err = kafkaTc.Run(suiteCtx, kafkaImage,
			kafkaTc.WithClusterID("Mk3OEYBSD34fcwNTJENDM2Qk"),
		)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			_ = tc.TerminateContainer(kafkaC)
		})

		brokers, err = kafkaC.Brokers(suiteCtx)
		Expect(err).NotTo(HaveOccurred())
		Expect(createTopics(brokers, requestTopic, resultTopic)).To(Succeed())

		ctx, cancel := context.WithCancel(suiteCtx)
		DeferCleanup(cancel)

		flows = &stubFlows{}
		conv := converter.NewKafkaConverter()
		run := runner.NewRunner(flows, flows, flows,
			func(now time.Time) model.SyncOptions { return model.SyncOptions{LocationID: location, Until: now} },
			resproducer.NewResultProducer(newProducer(brokers, resultTopic), conv),
			nil,
		)

		By("starting the sync request consumer")
		requests := reqconsumer.NewSyncRequestConsumer(newConsumer(brokers, requestGroup, requestTopic), conv, run)
		go func() {
			defer GinkgoRecover()
			_ = requests.RunSyncRequestConsume(ctx)
		}()

		By("collecting completion events")
		events = make(chan converter.SyncCompletedEvent, 16)
		results := newConsumer(brokers, resultGroup, resultTopic)
		go func() {
			defer GinkgoRecover()
			_ = results.Consume(ctx, func(_ context.Context, msg kafka.Message) error {
				var ev converter.SyncCompletedEvent
				if err := json.Unmarshal(msg.Value, &ev); err != nil {
					return nil
				}
				events <- ev
				return nil
			})
		}()
	})

	It("runs a requested inventory sync and publishes its completion", func() {
		send := newProducer(brokers, requestTopic)
		Expect(send.Send(suiteCtx, nil, []byte(`{"flow":"Inventory","inventoryType":"fg"}`))).To(Succeed())

		var ev converter.SyncCompletedEvent
		Eventually(events).WithTimeout(30 * time.Second).Should(Receive(&ev))

		Expect(ev.EventID).NotTo(BeEmpty())
		Expect(ev.Result.Flow).To(Equal("inventory"))
		Expect(ev.Result.InventoryType).To(Equal("FG"))
		Expect(ev.Result.Success).To(BeTrue())
		Expect(ev.Result.Stats.NewItems).To(Equal(3))

		flows.mu.Lock()
		defer flows.mu.Unlock()
		Expect(flows.calls).To(ContainElement(model.SyncRequest{Flow: model.FlowInventory, InventoryType: model.InventoryTypeFG}))
	})

	It("drops malformed requests and keeps consuming", func() {
		send := newProducer(brokers, requestTopic)
		Expect(send.Send(suiteCtx, nil, []byte(`not json`))).To(Succeed())
		Expect(send.Send(suiteCtx, nil, []byte(`{"flow":"orders"}`))).To(Succeed())

		var ev converter.SyncCompletedEvent
		Eventually(events).WithTimeout(30 * time.Second).Should(Receive(&ev))
		Expect(ev.Result.Flow).To(Equal("orders"))
	})
})
