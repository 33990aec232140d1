package consume

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/internal/consumer"
	"github.com/LakshyaxGupta/FlowBreak/internal/repository"
	sessionService "github.com/LakshyaxGupta/FlowBreak/internal/service/session"
	"github.com/spf13/cobra"
)

func GetConsumeCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Ingest event batches from Kafka",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repository.NewRepository(config.DB, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			sessions := sessionService.NewSessionService(repository.NewStore(db), logger)
			c, err := consumer.NewKafkaConsumer(config.Kafka, sessions, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("kafka consumer started",
				slog.Any("brokers", config.Kafka.Brokers),
				slog.String("topic", config.Kafka.Topic),
				slog.String("group_id", config.Kafka.GroupID),
			)
			err = c.Run(ctx)
			logger.Info("kafka consumer stopped")
			return err
		},
	}
}
