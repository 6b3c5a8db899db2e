package consultant

import (
	"context"

	"go.uber.org/zap"
)

func LoggingMiddleware(log *zap.Logger) ServiceMiddleware {
	log = log.With(
		zap.String("service", "consultant"),
	)

	return func(next Service) Service {
		log.Info("service initialized")

		return &loggingMiddleware{
			log:  log,
			next: next,
		}
	}
}

type loggingMiddleware struct {
	log  *zap.Logger
	next Service
}

func (mw *loggingMiddleware) Close() error {
	log := mw.log.With(
		zap.String("action", "close"),
	)

	err := mw.next.Close()
	if err != nil {
		log.Error(err.Error())
		return err
	}

	log.Info("service closed")
	return nil
}

func (mw *loggingMiddleware) Ask(ctx context.Context, question string) (*Answer, error) {
	log := mw.log.With(
		zap.String("action", "ask"),
		zap.String("question", question),
	)

	answer, err := mw.next.Ask(ctx, question)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("question answered",
		zap.String("status", string(answer.Status)),
	)

	return answer, nil
}
