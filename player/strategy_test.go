package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"warzone/game"
)

func TestForName(t *testing.T) {
	for _, name := range Computer {
		s, err := ForName(name)
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
	}

	s, err := ForName("Aggressive")
	require.NoError(t, err)
	require.Equal(t, Aggressive{}, s, "Names are case-insensitive")

	_, err = ForName("human")
	require.Error(t, err, "Humans need a console")
}

func TestAggressive(t *testing.T) {
	t.Run("deploys to the strongest and attacks the weakest neighbor", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.p1.Reinforcements = 4

		b.p1.IssueOrders(b.deck)

		orders := b.p1.Orders().All()
		require.Len(t, orders, 2)
		deploy := orders[0].(*game.Deploy)
		require.Equal(t, b.t["B"], deploy.Target)
		require.Equal(t, 4, deploy.Armies)
		advance := orders[1].(*game.Advance)
		require.Equal(t, b.t["B"], advance.Source)
		require.Equal(t, b.t["C"], advance.Target)
		require.Equal(t, 9, advance.Armies, "Everything but one army attacks")
	})

	t.Run("bombs before attacking", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.p1.Reinforcements = 4
		b.p1.AddCard(game.BombCard)

		b.p1.IssueOrders(b.deck)

		kinds := orderKinds(b.p1)
		require.Equal(t, []game.OrderKind{game.DeployOrder, game.BombOrder, game.AdvanceOrder}, kinds)
		require.Equal(t, b.t["C"], b.p1.Orders().All()[1].(*game.Bomb).Target)
		require.False(t, b.p1.HasCard(game.BombCard))
	})

	t.Run("airlifts the weakest territory onto the strongest", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.p1.Reinforcements = 4
		b.p1.AddCard(game.AirliftCard)

		b.p1.IssueOrders(b.deck)

		orders := b.p1.Orders().All()
		require.Len(t, orders, 3)
		airlift := orders[1].(*game.Airlift)
		require.Equal(t, b.t["A"], airlift.Source)
		require.Equal(t, b.t["B"], airlift.Target)
		require.Equal(t, 2, airlift.Armies)
		require.Equal(t, 11, orders[2].(*game.Advance).Armies)
	})

	t.Run("airlifts when there is nothing to bomb", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.t["C"].SetOwner(nil)
		b.p1.Reinforcements = 4
		b.p1.AddCard(game.BombCard)
		b.p1.AddCard(game.AirliftCard)

		b.p1.IssueOrders(b.deck)

		require.Equal(t, []game.OrderKind{game.DeployOrder, game.AirliftOrder, game.AdvanceOrder}, orderKinds(b.p1))
		require.True(t, b.p1.HasCard(game.BombCard))
		require.False(t, b.p1.HasCard(game.AirliftCard))
		require.Equal(t, 11, b.p1.Orders().All()[2].(*game.Advance).Armies)
	})

	t.Run("no advance without an enemy next to the strongest", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.t["A"].SetArmies(10)
		b.p1.Reinforcements = 4

		b.p1.IssueOrders(b.deck)

		require.Equal(t, []game.OrderKind{game.DeployOrder}, orderKinds(b.p1))
	})

	t.Run("priorities", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		require.Equal(t, []*game.Territory{b.t["B"], b.t["A"]}, b.p1.ToDefend())
		require.Equal(t, []*game.Territory{b.t["C"]}, b.p1.ToAttack())
	})

	t.Run("issued orders execute", func(t *testing.T) {
		b := newBoard(t, Aggressive{})
		b.p1.Reinforcements = 4
		b.p1.IssueOrders(b.deck)

		for {
			o, ok := b.p1.Orders().Pop()
			if !ok {
				break
			}
			o.Execute(b.turn)
			require.True(t, o.Executed(), o.Effect())
		}
		require.Equal(t, 1, b.t["B"].Armies())
	})
}

func TestBenevolent(t *testing.T) {
	t.Run("reinforces the weakest and never attacks", func(t *testing.T) {
		b := newBoard(t, Benevolent{})
		b.p1.Reinforcements = 4

		b.p1.IssueOrders(b.deck)

		orders := b.p1.Orders().All()
		require.Len(t, orders, 2)
		deploy := orders[0].(*game.Deploy)
		require.Equal(t, b.t["A"], deploy.Target)
		require.Equal(t, 4, deploy.Armies)
		advance := orders[1].(*game.Advance)
		require.Equal(t, b.t["B"], advance.Source)
		require.Equal(t, b.t["A"], advance.Target, "Moves armies inward only")
		require.Equal(t, 3, advance.Armies)
		require.Empty(t, b.p1.ToAttack())
	})

	t.Run("plays a reinforcement card at once", func(t *testing.T) {
		b := newBoard(t, Benevolent{})
		b.p1.Reinforcements = 4
		b.p1.AddCard(game.ReinforcementCard)

		b.p1.IssueOrders(b.deck)

		require.False(t, b.p1.HasCard(game.ReinforcementCard))
		require.Equal(t, 9, b.p1.Orders().All()[0].(*game.Deploy).Armies)
	})

	t.Run("negotiates with the threatening neighbor", func(t *testing.T) {
		b := newBoard(t, Benevolent{})
		b.p1.AddCard(game.DiplomacyCard)

		b.p1.IssueOrders(b.deck)

		negotiate := b.p1.Orders().All()[0].(*game.Negotiate)
		require.Equal(t, b.p2, negotiate.Target)
	})

	t.Run("does not negotiate with passive players", func(t *testing.T) {
		b := newBoard(t, Benevolent{})
		b.p2.SetStrategy(Neutral{})
		b.p1.AddCard(game.DiplomacyCard)

		b.p1.IssueOrders(b.deck)

		require.True(t, b.p1.HasCard(game.DiplomacyCard))
		require.NotContains(t, orderKinds(b.p1), game.NegotiateOrder)
	})
}

func TestNeutral(t *testing.T) {
	b := newBoard(t, Neutral{})
	b.p1.Reinforcements = 4

	b.p1.IssueOrders(b.deck)

	require.Equal(t, 0, b.p1.Orders().Len())
	require.Empty(t, b.p1.ToAttack())
}

func TestCheater(t *testing.T) {
	b := newBoard(t, Cheater{})

	b.p1.IssueOrders(b.deck)

	require.Equal(t, b.p1, b.t["C"].Owner())
	require.Equal(t, 1, b.t["C"].Armies())
	require.Equal(t, b.p2, b.t["D"].Owner(), "Only bordering territories are taken")
	require.Equal(t, []*game.Territory{b.t["D"]}, b.p2.Territories())
	require.Equal(t, 0, b.p1.Orders().Len())

	b.p1.IssueOrders(b.deck)
	require.Equal(t, b.p2, b.t["D"].Owner(), "Cheats once per turn")

	b.p1.StartTurn()
	b.p1.IssueOrders(b.deck)
	require.Equal(t, b.p1, b.t["D"].Owner())
	require.Equal(t, 0, b.p2.TerritoryCount())
}

func orderKinds(p *game.Player) []game.OrderKind {
	var kinds []game.OrderKind
	for _, o := range p.Orders().All() {
		kinds = append(kinds, o.Kind())
	}
	return kinds
}
