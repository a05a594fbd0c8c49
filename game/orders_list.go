package game

import (
	"errors"
	"fmt"

	"warzone/utils"
)

var (
	ErrOrderNotFound   = errors.New("order not in list")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// OrdersList is a player's queue of orders, executed front to back.
type OrdersList struct {
	orders []Order
}

func NewOrdersList() *OrdersList {
	return &OrdersList{}
}

func (l *OrdersList) Add(o Order) {
	l.orders = append(l.orders, o)
}

func (l *OrdersList) Len() int { return len(l.orders) }

// All returns the queued orders in execution order.
func (l *OrdersList) All() []Order {
	orders := make([]Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

func (l *OrdersList) indexOf(o Order) int {
	return utils.FindIndex(l.orders, o)
}

// Move relocates an order so that it ends up at index to.
func (l *OrdersList) Move(o Order, to int) error {
	from := l.indexOf(o)
	if from < 0 {
		return ErrOrderNotFound
	}
	if to < 0 || to >= len(l.orders) {
		return fmt.Errorf("move to %d of %d orders: %w", to, len(l.orders), ErrIndexOutOfRange)
	}
	l.orders = append(l.orders[:from], l.orders[from+1:]...)
	l.orders = append(l.orders[:to], append([]Order{o}, l.orders[to:]...)...)
	return nil
}

// Remove drops an order from the queue. An order that never executed hands its
// card back to the issuer.
func (l *OrdersList) Remove(o Order) error {
	i := l.indexOf(o)
	if i < 0 {
		return ErrOrderNotFound
	}
	l.orders = append(l.orders[:i], l.orders[i+1:]...)
	if !o.Executed() && o.Issuer() != nil {
		o.Issuer().cancel(o)
	}
	return nil
}

// Pop removes and returns the front order without any refund; the order is
// about to be executed.
func (l *OrdersList) Pop() (Order, bool) {
	if len(l.orders) == 0 {
		return nil, false
	}
	o := l.orders[0]
	l.orders = l.orders[1:]
	return o, true
}

// Clear removes every order, refunding the ones that never executed.
func (l *OrdersList) Clear() {
	for len(l.orders) > 0 {
		l.Remove(l.orders[0])
	}
}

// Clone returns a list holding copies of every order.
func (l *OrdersList) Clone() *OrdersList {
	c := &OrdersList{orders: make([]Order, len(l.orders))}
	for i, o := range l.orders {
		c.orders[i] = o.Clone()
	}
	return c
}
