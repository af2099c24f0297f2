package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/config"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
	"github.com/vishxesh10/InsureMate-LIve/pkg/kafka"
	"github.com/vishxesh10/InsureMate-LIve/pkg/observability"
)

func newTailCmd(cfg *config.Config) *cobra.Command {
	var (
		brokers       string
		topic         string
		group         string
		fromBeginning bool
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Follow prediction events on Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kcfg := cfg.Kafka("premiumctl", group)
			if brokers != "" {
				kcfg.Brokers = kafka.ParseBrokers(brokers)
			}
			if kcfg.ConsumerGroup == "" {
				kcfg.ConsumerGroup = "premiumctl-" + uuid.NewString()[:8]
			}

			logger := observability.InitLogger(observability.LogConfig{
				Level:  cfg.LogLevel,
				Format: "text",
				Output: cmd.ErrOrStderr(),
			})

			out := cmd.OutOrStdout()
			consumer, err := kafka.NewConsumer(kcfg, topic, kafka.ConsumerOptions{FromBeginning: fromBeginning},
				func(_ context.Context, msg kafka.Message) error {
					return printEvent(out, msg, logger)
				}, logger)
			if err != nil {
				return err
			}
			defer consumer.Close()

			return consumer.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&brokers, "brokers", "", "comma separated brokers (default KAFKA_BROKERS)")
	cmd.Flags().StringVar(&topic, "topic", cfg.KafkaTopic, "topic to follow")
	cmd.Flags().StringVar(&group, "group", "", "consumer group (default: a throwaway group)")
	cmd.Flags().BoolVar(&fromBeginning, "from-beginning", false, "start from the oldest retained event")
	return cmd
}

// printEvent writes one line per envelope. Undecodable messages are logged
// and skipped so the tail keeps going.
func printEvent(w io.Writer, msg kafka.Message, logger *slog.Logger) error {
	env, err := events.DecodeEnvelope(msg.Value)
	if err != nil {
		logger.Warn("skipping undecodable message", "key", string(msg.Key), "error", err)
		return nil
	}
	_, err = fmt.Fprintf(w, "%s %-30s result=%s %s\n",
		env.OccurredAt.Format(time.RFC3339),
		env.EventType,
		env.AggregateID,
		string(env.Payload),
	)
	return err
}
