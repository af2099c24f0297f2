package kafka

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, ParseBrokers(" kafka-1:9092, ,kafka-2:9092 "))
	assert.Nil(t, ParseBrokers(""))
}

func TestConfig_SASLMechanism(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantName  string
		wantNil   bool
		wantError bool
	}{
		{name: "disabled", cfg: Config{SASLMechanism: "PLAIN"}, wantNil: true},
		{name: "plain default", cfg: Config{SASLEnabled: true, SASLUsername: "u", SASLPassword: "p"}, wantName: "PLAIN"},
		{name: "scram 256", cfg: Config{SASLEnabled: true, SASLMechanism: "scram-sha-256", SASLUsername: "u", SASLPassword: "p"}, wantName: "SCRAM-SHA-256"},
		{name: "scram 512", cfg: Config{SASLEnabled: true, SASLMechanism: "SCRAM-SHA-512", SASLUsername: "u", SASLPassword: "p"}, wantName: "SCRAM-SHA-512"},
		{name: "unknown", cfg: Config{SASLEnabled: true, SASLMechanism: "GSSAPI"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.cfg.saslMechanism()
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.wantName, m.Name())
		})
	}
}

func TestConfig_TransportCarriesAuth(t *testing.T) {
	cfg := Config{
		ClientID:     "premium-service",
		TLS:          true,
		SASLEnabled:  true,
		SASLUsername: "svc",
		SASLPassword: "secret",
	}

	tr, err := cfg.transport()
	require.NoError(t, err)
	assert.Equal(t, "premium-service", tr.ClientID)
	require.NotNil(t, tr.TLS)
	assert.Equal(t, plain.Mechanism{Username: "svc", Password: "secret"}, tr.SASL)

	d, err := cfg.dialer()
	require.NoError(t, err)
	assert.NotNil(t, d.TLS)
	assert.Equal(t, "premium-service", d.ClientID)
}

func TestNewProducer(t *testing.T) {
	_, err := NewProducer(Config{})
	require.Error(t, err)

	p, err := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
	require.NoError(t, err)
	assert.Len(t, p.brokers, 2)
	assert.Empty(t, p.writers)
}

func TestProducer_WriterPerTopic(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	w1 := p.writer("premium.predictions")
	w2 := p.writer("premium.predictions")
	w3 := p.writer("premium.flagged")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Equal(t, "premium.predictions", w1.Topic)
	assert.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestProducer_PublishNothing(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), "premium.predictions"))
	assert.Empty(t, p.writers)
}

func TestMessageConversion(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg := Message{
		Key:     []byte("42"),
		Value:   []byte(`{"result_id":42}`),
		Headers: map[string]string{"event_type": "premium.prediction.completed"},
		Time:    ts,
	}

	km := msg.toKafka()
	assert.Equal(t, []byte("42"), km.Key)
	assert.Equal(t, []kafkago.Header{{Key: "event_type", Value: []byte("premium.prediction.completed")}}, km.Headers)

	back := fromKafka(km)
	assert.Equal(t, msg, back)
}

func TestNewConsumer_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := func(context.Context, Message) error { return nil }

	_, err := NewConsumer(Config{}, "premium.predictions", ConsumerOptions{}, handler, logger)
	require.Error(t, err)

	_, err = NewConsumer(Config{Brokers: []string{"localhost:9092"}}, "premium.predictions", ConsumerOptions{}, handler, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer group")

}

func TestReaderConfig(t *testing.T) {
	cfg := Config{Brokers: []string{"localhost:9092"}, ConsumerGroup: "premiumctl", ClientID: "premiumctl"}

	rc, err := readerConfig(cfg, "premium.predictions", ConsumerOptions{FromBeginning: true})
	require.NoError(t, err)
	assert.Equal(t, kafkago.FirstOffset, rc.StartOffset)
	assert.Equal(t, "premiumctl", rc.GroupID)
	assert.Equal(t, "premium.predictions", rc.Topic)
	assert.Equal(t, "premiumctl", rc.Dialer.ClientID)

	rc, err = readerConfig(cfg, "premium.predictions", ConsumerOptions{})
	require.NoError(t, err)
	assert.Equal(t, kafkago.LastOffset, rc.StartOffset)

	_, err = readerConfig(Config{SASLEnabled: true, SASLMechanism: "OAUTHBEARER"}, "t", ConsumerOptions{})
	require.Error(t, err)
}
