package warehouse

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// CartItem is one line of a requisition: what and how much, plus the
// requester details stamped on the final request embed.
type CartItem struct {
	Category   string
	ItemName   string
	Quantity   int
	UserName   string
	UserStatic string
	Position   string
	Rank       string
	AddedAt    time.Time
}

func (i CartItem) String() string {
	return fmt.Sprintf("**%s** × %d", i.ItemName, i.Quantity)
}

// Cart accumulates a user's requisition before submission. It lives only
// in memory and disappears on restart.
type Cart struct {
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
}

// AddItem merges the item into the cart: an existing (category, item)
// line has its quantity increased, otherwise a new line is appended.
func (c *Cart) AddItem(item CartItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", item.Quantity)
	}
	for i := range c.Items {
		if c.Items[i].Category == item.Category && c.Items[i].ItemName == item.ItemName {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	item.AddedAt = time.Now()
	c.Items = append(c.Items, item)
	return nil
}

// RemoveItemByIndex removes the line at the 0-based index.
func (c *Cart) RemoveItemByIndex(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems sums the quantities of all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// CategoryTotal sums the quantities within a category.
func (c *Cart) CategoryTotal(category string) int {
	total := 0
	for _, item := range c.Items {
		if item.Category == category {
			total += item.Quantity
		}
	}
	return total
}

// ItemQuantity returns the current quantity of a specific line.
func (c *Cart) ItemQuantity(category, itemName string) int {
	for _, item := range c.Items {
		if item.Category == category && item.ItemName == itemName {
			return item.Quantity
		}
	}
	return 0
}

// Summary renders the numbered cart listing shown while editing.
func (c *Cart) Summary() string {
	if c.IsEmpty() {
		return "Корзина пуста"
	}
	lines := make([]string, 0, len(c.Items))
	for i, item := range c.Items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}

// FinalSummary renders the unnumbered listing used in the submitted
// request embed.
func (c *Cart) FinalSummary() string {
	if c.IsEmpty() {
		return "Корзина пуста"
	}
	lines := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, item.String())
	}
	return strings.Join(lines, "\n")
}

// staleCartAge is how long an untouched cart survives before the sweeper
// drops it.
const staleCartAge = 2 * time.Hour

// CartRegistry holds the per-user carts. Access is serialized because
// discordgo dispatches interaction events concurrently.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewCartRegistry creates an empty registry.
func NewCartRegistry() *CartRegistry {
	return &CartRegistry{carts: make(map[string]*Cart)}
}

// Cart returns the user's cart, creating it on first use.
func (r *CartRegistry) Cart(userID string) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		cart = &Cart{UserID: userID, CreatedAt: time.Now()}
		r.carts[userID] = cart
	}
	return cart
}

// ClearCart drops the user's cart entirely.
func (r *CartRegistry) ClearCart(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
}

// SweepStale drops carts older than staleCartAge and returns how many
// were removed.
func (r *CartRegistry) SweepStale() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for userID, cart := range r.carts {
		if time.Since(cart.CreatedAt) > staleCartAge {
			delete(r.carts, userID)
			removed++
		}
	}
	return removed
}
