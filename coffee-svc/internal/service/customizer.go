package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"coffeehouse/coffee-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	MissingSizeMessage = "Kindly select atleast the size option"

	CheckoutPath  = "/checkout"
	DashboardPath = "/dashboard"
)

var ErrMissingSizeSelection = errors.New("size selection is required")

type State string

const (
	StateIdle     State = "idle"
	StatePricing  State = "pricing"
	StateAccepted State = "accepted"
	StateRejected State = "rejected"
)

type SubmitResult struct {
	State    State                   `json:"state"`
	Order    *domain.OrderParameters `json:"order,omitempty"`
	Redirect string                  `json:"redirect,omitempty"`
	Reason   error                   `json:"-"`
}

type CustomizerDeps struct {
	Catalog   CatalogLookup
	Orders    OrderStateGateway
	Navigator Navigator
	Notifier  Notifier
	Logger    *zap.Logger
}

// Customizer holds the selection for one catalog item and turns it into
// OrderParameters on submit. Event handlers are serialized by mu; the catalog
// fetch runs outside of it.
type Customizer struct {
	mu        sync.Mutex
	itemID    int
	item      *domain.CatalogItem
	selection domain.Selection
	fetchSeq  uint64

	catalog   CatalogLookup
	orders    OrderStateGateway
	navigator Navigator
	notifier  Notifier
	logger    *zap.Logger
}

func NewCustomizer(itemID int, deps CustomizerDeps) *Customizer {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Customizer{
		itemID:    itemID,
		catalog:   deps.Catalog,
		orders:    deps.Orders,
		navigator: deps.Navigator,
		notifier:  deps.Notifier,
		logger:    logger.With(zap.Int("item_id", itemID)),
	}
}

// Refresh fetches the catalog item. Only the most recently issued fetch may
// install its result; the current item stays in place while it is pending.
func (c *Customizer) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	item, err := c.catalog.FetchCatalogItem(ctx, c.itemID)
	if err != nil {
		return fmt.Errorf("fetch catalog item %d: %w", c.itemID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.fetchSeq {
		c.logger.Debug("dropping superseded catalog fetch", zap.Uint64("seq", seq))
		return nil
	}

	c.item = item
	if c.selection.Size != nil {
		if price, ok := ComputePrice(item.Price, *c.selection.Size); ok {
			c.selection.TotalPrice = price
		}
	}
	return nil
}

func (c *Customizer) SelectSize(option domain.SizeOption) domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Size = &option
	if price, ok := ComputePrice(c.basePrice(), option); ok {
		c.selection.TotalPrice = price
	}
	return c.selection
}

func (c *Customizer) SelectMilk(option domain.MilkOption) domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Milk = &option
	return c.selection
}

func (c *Customizer) SelectTopping(option domain.ToppingOption) domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Topping = &option
	return c.selection
}

// Submit validates the selection and hands it to checkout. A missing size is
// reported through the notifier and yields a rejected result, not an error.
// The selection is reset whatever the outcome.
func (c *Customizer) Submit(ctx context.Context) (*SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.reset()

	if c.selection.Size == nil {
		c.logger.Info("order rejected", zap.Error(ErrMissingSizeSelection))
		if err := c.notifier.ShowNotification(ctx, MissingSizeMessage, domain.LevelWarning); err != nil {
			c.logger.Warn("failed to show notification", zap.Error(err))
		}
		return &SubmitResult{State: StateRejected, Reason: ErrMissingSizeSelection}, nil
	}

	params := c.orderParameters()
	if err := c.orders.Write(ctx, params); err != nil {
		return nil, fmt.Errorf("submit order parameters: %w", err)
	}

	c.navigator.NavigateTo(CheckoutPath)
	c.logger.Info("order accepted",
		zap.String("name", params.Name),
		zap.String("size", params.Size),
		zap.Float64("price", params.Price))

	return &SubmitResult{State: StateAccepted, Order: &params, Redirect: CheckoutPath}, nil
}

func (c *Customizer) Selection() domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

func (c *Customizer) Item() *domain.CatalogItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.item
}

func (c *Customizer) ItemID() int {
	return c.itemID
}

func (c *Customizer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.Size == nil {
		return StateIdle
	}
	return StatePricing
}

func (c *Customizer) orderParameters() domain.OrderParameters {
	params := domain.OrderParameters{
		Size:  c.selection.Size.Description,
		Price: c.selection.TotalPrice,
	}
	if c.item != nil {
		params.Name = c.item.Name
	}
	if c.selection.Milk != nil {
		params.Milk = c.selection.Milk.Type
	}
	if c.selection.Topping != nil {
		params.Topping = c.selection.Topping.Type
	}
	return params
}

func (c *Customizer) basePrice() float64 {
	if c.item == nil {
		return 0
	}
	return c.item.Price
}

func (c *Customizer) reset() {
	c.selection = domain.Selection{}
}
