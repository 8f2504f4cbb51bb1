package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"coffeehouse/checkout-svc/internal/domain"
	"coffeehouse/checkout-svc/internal/mocks"
	"coffeehouse/checkout-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	submitted := domain.OrderMessage{
		Type:      domain.OrderSubmittedType,
		SessionID: "7f0c",
		Order:     domain.Drink{Name: "Latte", Size: "large", Milk: "Oat Milk", Price: 255},
		Timestamp: time.Now(),
	}

	tests := []struct {
		name            string
		inputMessage    domain.OrderMessage
		setupMockOrders func(*mocks.OrderServiceInterface)
	}{
		{
			name:         "success",
			inputMessage: submitted,
			setupMockOrders: func(orders *mocks.OrderServiceInterface) {
				orders.On("Create", mock.MatchedBy(func(order *domain.Order) bool {
					return order.SessionID == "7f0c" &&
						order.Name == "Latte" &&
						order.Price == 255 &&
						order.Status == domain.StatusReceived
				})).Return(nil).Once()
			},
		},
		{
			name:         "create error",
			inputMessage: submitted,
			setupMockOrders: func(orders *mocks.OrderServiceInterface) {
				orders.On("Create", mock.AnythingOfType("*domain.Order")).Return(errors.New("db connection failed")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.setupMockOrders(orders)

			consumer := service.NewConsumer(nil, orders, nil)
			consumer.ProcessOrder(testCase.inputMessage)
		})
	}
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	consumer := service.NewConsumer(nil, orders, nil)

	consumer.ProcessOrder(domain.OrderMessage{
		Type:  "order_cancelled",
		Order: domain.Drink{Name: "Latte", Price: 230},
	})

	orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.OrderMessage{
		Type:      domain.OrderSubmittedType,
		SessionID: "abc",
		Order:     domain.Drink{Name: "Doppio", Size: "small", Price: 205},
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte(`{broken`)}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("leader not available")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	orders := mocks.NewOrderServiceInterface(t)
	orders.On("Create", mock.MatchedBy(func(order *domain.Order) bool {
		return order.Name == "Doppio" && order.SessionID == "abc"
	})).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, orders, nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
	assert.Error(t, ctx.Err())
}
