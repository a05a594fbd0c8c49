package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdersList(t *testing.T) {
	setup := func(t *testing.T) (*diamond, []Order) {
		d := newDiamond(t, 1)
		d.p1.Reinforcements = 5
		d.p1.IssueOrders(nil) // Opens the working pool
		d.p1.AddCard(BombCard)
		d.p1.AddCard(AirliftCard)
		orders := []Order{
			NewDeploy(d.p1, d.t[0], 2),
			NewBomb(d.p1, d.t[2]),
			NewAirlift(d.p1, d.t[1], d.t[0], 1),
		}
		for _, o := range orders {
			require.NoError(t, d.p1.IssueOrder(o))
		}
		return d, orders
	}

	t.Run("keeps issue order", func(t *testing.T) {
		d, orders := setup(t)
		require.Equal(t, orders, d.p1.Orders().All())
		require.Equal(t, 3, d.p1.Orders().Len())
	})

	t.Run("moving an order", func(t *testing.T) {
		d, orders := setup(t)
		list := d.p1.Orders()

		require.NoError(t, list.Move(orders[2], 0))
		require.Equal(t, []Order{orders[2], orders[0], orders[1]}, list.All())

		require.NoError(t, list.Move(orders[2], 2))
		require.Equal(t, []Order{orders[0], orders[1], orders[2]}, list.All())
	})

	t.Run("moving out of range or a foreign order", func(t *testing.T) {
		d, orders := setup(t)
		list := d.p1.Orders()

		require.ErrorIs(t, list.Move(orders[0], 3), ErrIndexOutOfRange)
		require.ErrorIs(t, list.Move(orders[0], -1), ErrIndexOutOfRange)
		require.ErrorIs(t, list.Move(NewBomb(d.p1, d.t[2]), 0), ErrOrderNotFound)
		require.Equal(t, orders, list.All(), "Failed moves leave the list untouched")
	})

	t.Run("removing refunds cards and reserved armies", func(t *testing.T) {
		d, orders := setup(t)
		list := d.p1.Orders()
		require.False(t, d.p1.HasCard(BombCard))
		require.Equal(t, 3, d.p1.Available())

		require.NoError(t, list.Remove(orders[1]))
		require.NoError(t, list.Remove(orders[0]))

		require.True(t, d.p1.HasCard(BombCard))
		require.Equal(t, 5, d.p1.Available())
		require.Equal(t, []Order{orders[2]}, list.All())
		require.ErrorIs(t, list.Remove(orders[1]), ErrOrderNotFound)
	})

	t.Run("removing an executed order does not refund", func(t *testing.T) {
		d, orders := setup(t)
		orders[1].Execute(d.turn)
		require.True(t, orders[1].Executed())

		require.NoError(t, d.p1.Orders().Remove(orders[1]))

		require.False(t, d.p1.HasCard(BombCard))
	})

	t.Run("pop returns the front order", func(t *testing.T) {
		d, orders := setup(t)
		list := d.p1.Orders()

		for _, expected := range orders {
			o, ok := list.Pop()
			require.True(t, ok)
			require.Equal(t, expected, o)
		}
		_, ok := list.Pop()
		require.False(t, ok)
	})

	t.Run("clone copies every order", func(t *testing.T) {
		d, orders := setup(t)

		clone := d.p1.Orders().Clone()

		require.Equal(t, len(orders), clone.Len())
		for i, o := range clone.All() {
			require.NotSame(t, orders[i], o)
			require.Equal(t, orders[i].String(), o.String())
			require.Equal(t, orders[i].Kind(), o.Kind())
		}
		orders[0].Execute(d.turn)
		require.False(t, clone.All()[0].Executed(), "Copies do not share state")
	})

	t.Run("clear refunds everything", func(t *testing.T) {
		d, _ := setup(t)

		d.p1.Orders().Clear()

		require.Equal(t, 0, d.p1.Orders().Len())
		require.ElementsMatch(t, []Card{BombCard, AirliftCard}, d.p1.Hand())
	})
}
