package dispatch_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/apperr"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/metrics"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "dispatch.status.changed"),
	)

	return &Handler{
		dispatchService:          dispatchService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages channel closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true означает выход из
// ConsumeClaim без коммита: сообщение будет прочитано заново.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received malformed message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("dispatch", event.DispatchID),
		logger.NewField("state", event.State),
		logger.NewField("actor_role", event.ActorRole),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("processing status change")

	moved, err := h.dispatchService.TransitionDispatch(ctx, entities.DispatchTransition{
		DispatchID:     event.DispatchID,
		Target:         entities.DispatchState(strings.ToUpper(event.State)),
		ActorRole:      entities.Role(strings.ToUpper(event.ActorRole)),
		IncidentReason: event.Reason,
	})
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("processing interrupted, message will be reprocessed")
			return true

		case errors.Is(err, tx.ErrConflict):
			errLog.Warn("concurrent update conflict, message will be reprocessed")
			return true

		case errors.Is(err, apperr.InvalidTransition):
			// событие устарело: отправление уже в другом состоянии
			errLog.Warn("stale status change skipped")

		case errors.Is(err, apperr.Invalid),
			errors.Is(err, apperr.NotFound),
			errors.Is(err, apperr.Forbidden):
			errLog.Warn("status change rejected")

		default:
			errLog.Error("failed to process status change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	metrics.DispatchTransitionsTotal.WithLabelValues(moved.State.String(), metrics.SourceKafka).Inc()
	h.log.With(
		logger.NewField("dispatch", moved.ID),
		logger.NewField("event_state", event.State),
		logger.NewField("current_state", moved.State.String()),
		logger.NewField("offset", message.Offset),
	).Info("status change processed")

	sess.MarkMessage(message, "")
	return false
}
