package service

import (
	"context"
	"encoding/json"
	"errors"

	"coffeehouse/checkout-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Orders OrderServiceInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, orders OrderServiceInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Orders: orders,
		Logger: logger,
	}
}

// Start reads submitted orders until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting Checkout Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Logger.Info("checkout consumer stopped")
				return
			}
			c.Logger.Error("error reading message", zap.Error(err))
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Warn("error unmarshaling message", zap.Int64("offset", message.Offset), zap.Error(err))
			continue
		}

		c.ProcessOrder(msg)
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderMessage) {
	if msg.Type != domain.OrderSubmittedType {
		return
	}

	order := &domain.Order{
		SessionID: msg.SessionID,
		Drink:     msg.Order,
		Status:    domain.StatusReceived,
	}
	if err := c.Orders.Create(order); err != nil {
		c.Logger.Error("error storing order",
			zap.String("session_id", msg.SessionID),
			zap.String("name", msg.Order.Name),
			zap.Error(err))
		return
	}

	c.Logger.Info("order received",
		zap.Int("order_id", order.ID),
		zap.String("session_id", msg.SessionID),
		zap.Float64("price", order.Price))
}
