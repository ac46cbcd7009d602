//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"polititrack/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishReport() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-report",
		RoutingKey: "test-routing-key-report",
		QueueName:  "test-queue-report",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	report := []domain.PoliticianDataHealth{
		{
			ID:           1,
			FullName:     "Jane Doe",
			Jurisdiction: "State of Illinois",
			Issues: []domain.DataIssue{
				{Field: "biography", Message: "missing"},
				{Field: "financial_disclosures", Message: "no financial disclosures on record"},
			},
		},
		{
			ID:           2,
			FullName:     "John Roe",
			Jurisdiction: domain.NotAvailable,
			Issues: []domain.DataIssue{
				{Field: "political_positions", Message: "no recorded positions"},
			},
		},
	}

	err = pub.PublishReport(s.ctx, report)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received ReportMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(2, received.Flagged)
	s.False(received.GeneratedAt.IsZero())
	s.Require().Len(received.Report, 2)
	s.Equal("Jane Doe", received.Report[0].FullName)
	s.Len(received.Report[0].Issues, 2)
	s.Equal("biography", received.Report[0].Issues[0].Field)
	s.Equal(domain.NotAvailable, received.Report[1].Jurisdiction)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_EmptyReport() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-empty",
		RoutingKey: "test-routing-key-empty",
		QueueName:  "test-queue-empty",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	err = pub.PublishReport(s.ctx, nil)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received ReportMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(0, received.Flagged)
	s.Empty(received.Report)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	report := []domain.PoliticianDataHealth{
		{ID: 3, FullName: "Maria Alvarez", Jurisdiction: "United States"},
	}

	err = pub.PublishReport(s.ctx, report)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
