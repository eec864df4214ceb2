package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/ge-sync/internal/client/browser"
	"github.com/you-humble/ge-sync/internal/client/http/dms"
	tgclient "github.com/you-humble/ge-sync/internal/client/http/telegram"
	"github.com/you-humble/ge-sync/internal/client/pdf"
	"github.com/you-humble/ge-sync/internal/client/session"
	"github.com/you-humble/ge-sync/internal/config"
	"github.com/you-humble/ge-sync/internal/converter"
	artrepo "github.com/you-humble/ge-sync/internal/repository/artifact"
	inbrepo "github.com/you-humble/ge-sync/internal/repository/inbound"
	invrepo "github.com/you-humble/ge-sync/internal/repository/inventory"
	ordrepo "github.com/you-humble/ge-sync/internal/repository/order"
	"github.com/you-humble/ge-sync/internal/repository/upsert"
	reqconsumer "github.com/you-humble/ge-sync/internal/service/consumer/request"
	inbservice "github.com/you-humble/ge-sync/internal/service/inbound"
	invservice "github.com/you-humble/ge-sync/internal/service/inventory"
	notifyservice "github.com/you-humble/ge-sync/internal/service/notify"
	ordservice "github.com/you-humble/ge-sync/internal/service/orders"
	resproducer "github.com/you-humble/ge-sync/internal/service/producer/result"
	"github.com/you-humble/ge-sync/internal/service/runner"
	thttp "github.com/you-humble/ge-sync/internal/transport/http/sync/v1"
	"github.com/you-humble/ge-sync/platform/closer"
	"github.com/you-humble/ge-sync/platform/db/migrator"
	"github.com/you-humble/ge-sync/platform/kafka"
	"github.com/you-humble/ge-sync/platform/kafka/consumer"
	"github.com/you-humble/ge-sync/platform/kafka/middleware"
	"github.com/you-humble/ge-sync/platform/kafka/producer"
	"github.com/you-humble/ge-sync/platform/logger"
)

type Converter interface {
	reqconsumer.SyncRequestConverter
	resproducer.Converter
}

type SyncRequestConsumer interface {
	RunSyncRequestConsume(ctx context.Context) error
}

type Session interface {
	ordservice.SessionProvider
	inbservice.SessionProvider
}

type SyncHandler interface {
	Routes(r chi.Router)
}

type DMSClient interface {
	ordservice.DMSClient
	inbservice.DMSClient
	invservice.DMSClient
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator
	writer   ordrepo.Writer

	orderRepository     ordservice.OrderRepository
	inboundRepository   inbservice.InboundRepository
	inventoryRepository invservice.InventoryRepository

	mongo              *mongo.Client
	artifactRepository dms.ArtifactSink

	session   Session
	dmsClient DMSClient
	browser   ordservice.BrowserClient
	pdfReader inbservice.PDFReader

	orderService     runner.OrderSyncer
	inboundService   runner.InboundSyncer
	inventoryService runner.InventorySyncer

	consumerGroup       sarama.ConsumerGroup
	syncRequestConsumer kafka.Consumer
	requestConsumer     SyncRequestConsumer

	syncProducer       sarama.SyncProducer
	syncResultProducer kafka.Producer
	resultProducer     runner.ResultPublisher

	conv Converter

	notifier runner.ResultNotifier
	runner   *runner.Runner
	handler  SyncHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		m, err := migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			os.DirFS(config.C().Postgres.MigrationDirectory()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create migrator: %v\n", err))
		}

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return m.Close()
			})

		d.migrator = m
	}

	return d.migrator
}

func (d *di) Writer(ctx context.Context) ordrepo.Writer {
	if d.writer == nil {
		d.writer = upsert.NewWriter(d.DBPool(ctx), config.C().Sync.BatchSize())
	}

	return d.writer
}

func (d *di) OrderRepository(ctx context.Context) ordservice.OrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = ordrepo.NewOrderRepository(d.DBPool(ctx), d.Writer(ctx))
	}

	return d.orderRepository
}

func (d *di) InboundRepository(ctx context.Context) inbservice.InboundRepository {
	if d.inboundRepository == nil {
		d.inboundRepository = inbrepo.NewInboundRepository(d.Writer(ctx))
	}

	return d.inboundRepository
}

func (d *di) InventoryRepository(ctx context.Context) invservice.InventoryRepository {
	if d.inventoryRepository == nil {
		d.inventoryRepository = invrepo.NewInventoryRepository(d.DBPool(ctx), d.Writer(ctx))
	}

	return d.inventoryRepository
}

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(config.C().Artifacts.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping mongodb: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

// ArtifactRepository is nil unless the archive is enabled.
func (d *di) ArtifactRepository(ctx context.Context) dms.ArtifactSink {
	if d.artifactRepository == nil && config.C().Artifacts.Enabled() {
		cfg := config.C().Artifacts

		repo := artrepo.NewArtifactRepository(
			d.MongoDB(ctx).Database(cfg.DatabaseName()).Collection(cfg.Collection()),
		)
		if err := repo.EnsureIndexes(ctx); err != nil {
			panic(fmt.Sprintf("failed to ensure artifact indexes: %v\n", err))
		}

		d.artifactRepository = repo
	}

	return d.artifactRepository
}

func (d *di) Session(_ context.Context) Session {
	if d.session == nil {
		d.session = session.NewStaticProvider(config.C().DMS.Cookie(), config.C().DMS.LocationCookies())
	}

	return d.session
}

func (d *di) DMSClient(ctx context.Context) DMSClient {
	if d.dmsClient == nil {
		cfg := config.C().DMS

		c, err := dms.NewClient(
			&http.Client{Timeout: cfg.RequestTimeout()},
			cfg.BaseURL(),
			cfg.RequestRPS(),
			dms.Paths{
				OrderSearch:     cfg.OrderSearchPath(),
				OrderJSON:       cfg.OrderJSONPath(),
				Inbound:         cfg.InboundPath(),
				ReceivingReport: cfg.ReceivingReportPath(),
				ASISLoads:       cfg.ASISLoadsPath(),
				ASISLoadDetail:  cfg.ASISLoadDetailPath(),
				InventoryReport: cfg.InventoryReportPath(),
			},
			d.ArtifactRepository(ctx),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create dms client: %v\n", err))
		}

		d.dmsClient = c
	}

	return d.dmsClient
}

func (d *di) Browser(_ context.Context) ordservice.BrowserClient {
	if d.browser == nil {
		d.browser = browser.NewClient()
	}

	return d.browser
}

func (d *di) PDFReader(_ context.Context) inbservice.PDFReader {
	if d.pdfReader == nil {
		d.pdfReader = pdf.NewReader()
	}

	return d.pdfReader
}

func (d *di) OrderService(ctx context.Context) runner.OrderSyncer {
	if d.orderService == nil {
		d.orderService = ordservice.NewOrderService(
			d.DMSClient(ctx),
			d.Session(ctx),
			d.Browser(ctx),
			d.OrderRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) InboundService(ctx context.Context) runner.InboundSyncer {
	if d.inboundService == nil {
		d.inboundService = inbservice.NewInboundService(
			d.DMSClient(ctx),
			d.Session(ctx),
			d.PDFReader(ctx),
			d.InboundRepository(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inboundService
}

func (d *di) InventoryService(ctx context.Context) runner.InventorySyncer {
	if d.inventoryService == nil {
		d.inventoryService = invservice.NewInventoryService(
			d.DMSClient(ctx),
			d.Session(ctx),
			d.InventoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.SyncRequestConsumerGroupID(),
			cfg.Kafka.SyncRequestConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) SyncRequestConsumer(ctx context.Context) kafka.Consumer {
	if d.syncRequestConsumer == nil {
		d.syncRequestConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.SyncRequestTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.syncRequestConsumer
}

func (d *di) RequestConsumer(ctx context.Context) SyncRequestConsumer {
	if d.requestConsumer == nil {
		d.requestConsumer = reqconsumer.NewSyncRequestConsumer(
			d.SyncRequestConsumer(ctx),
			d.KafkaConverter(ctx),
			d.Runner(ctx),
		)
	}

	return d.requestConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.SyncResultProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) SyncResultProducer(ctx context.Context) kafka.Producer {
	if d.syncResultProducer == nil {
		d.syncResultProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.SyncResultTopic(),
			logger.L(),
			map[string]string{"source": "ge-sync"},
		)
	}

	return d.syncResultProducer
}

func (d *di) ResultProducer(ctx context.Context) runner.ResultPublisher {
	if d.resultProducer == nil {
		d.resultProducer = resproducer.NewResultProducer(
			d.SyncResultProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.resultProducer
}

// Notifier is nil when no bot token or chat is configured.
func (d *di) Notifier(ctx context.Context) runner.ResultNotifier {
	if d.notifier == nil && config.C().Telegram.Enabled() {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %v\n", err))
		}

		d.notifier = notifyservice.NewNotifyService(tgclient.NewClient(b), config.C().Telegram.ChatID())
	}

	return d.notifier
}

func (d *di) Runner(ctx context.Context) *runner.Runner {
	if d.runner == nil {
		d.runner = runner.NewRunner(
			d.OrderService(ctx),
			d.InboundService(ctx),
			d.InventoryService(ctx),
			config.C().SyncOptions,
			d.ResultProducer(ctx),
			d.Notifier(ctx),
		)
	}

	return d.runner
}

func (d *di) SyncHandler(ctx context.Context) SyncHandler {
	if d.handler == nil {
		d.handler = thttp.NewSyncHandler(d.Runner(ctx))
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

