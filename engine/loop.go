package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"warzone/game"
	"warzone/player"
)

// StartingGarrison is placed on every territory when the map is dealt.
const StartingGarrison = 1

// gameStart deals the map and runs rounds until someone wins or the turn
// limit is reached.
func (e *Engine) gameStart(cmd *Command) error {
	if n := len(e.players); n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("cannot start with %d players: %w", n, ErrPlayerCount)
	}
	e.setup()
	cmd.Effect = fmt.Sprintf("dealt %d territories to %d players", len(e.m.Territories), len(e.players))
	e.accept(*cmd, AssignReinforcement)
	log.Info().Msgf("game started on %s with %v", e.m.Name, e.players)
	return e.play()
}

func (e *Engine) setup() {
	e.deck = game.NewDeck(e.rng, e.cardsPerKind)
	e.neutral = game.NewPlayer(0, "Neutral", player.Neutral{})
	e.neutral.SetDispatcher(e.events)

	e.rng.Shuffle(len(e.players), func(i, j int) {
		e.players[i], e.players[j] = e.players[j], e.players[i]
	})

	territories := make([]*game.Territory, len(e.m.Territories))
	copy(territories, e.m.Territories)
	e.rng.Shuffle(len(territories), func(i, j int) {
		territories[i], territories[j] = territories[j], territories[i]
	})
	for i, t := range territories {
		t.SetOwner(e.players[i%len(e.players)])
		t.SetArmies(StartingGarrison)
	}

	for _, p := range e.players {
		p.Reinforcements = e.initialArmies
		for i := 0; i < e.initialCards; i++ {
			card, err := e.deck.Draw()
			if err != nil {
				log.Warn().Err(err).Msgf("could not deal to %s", p.Name)
				break
			}
			p.AddCard(card)
		}
	}
	e.turn = game.NewTurn(e.rng, e.rules, e.deck, e.neutral, e.events, e.players)
}

func (e *Engine) play() error {
	for {
		e.reinforce()
		if err := e.issueOrders(); err != nil {
			return err
		}
		over, err := e.executeOrders()
		if err != nil || over {
			return err
		}
	}
}

// reinforce removes eliminated players and tops up every pool.
func (e *Engine) reinforce() {
	e.eliminate()
	for _, p := range e.players {
		p.StartTurn()
		armies := e.policy.Reinforcements(p, e.m)
		p.Reinforcements += armies
		log.Debug().Msgf("%s receives %d armies, pool %d", p.Name, armies, p.Reinforcements)
	}
}

func (e *Engine) eliminate() {
	var remaining []*game.Player
	for _, p := range e.players {
		if p.TerritoryCount() > 0 {
			remaining = append(remaining, p)
			continue
		}
		p.Orders().Clear()
		e.events.Emit(game.Event{
			Kind:    game.EliminationEvent,
			Player:  p.Name,
			Message: fmt.Sprintf("%s has been eliminated", p.Name),
		})
		log.Info().Msgf("%s has been eliminated", p.Name)
	}
	e.players = remaining
	e.turn.SetPlayers(remaining)
}

func (e *Engine) issueOrders() error {
	e.turn.NextRound()
	if len(e.players) == 0 {
		return e.step(CmdIssueOrder, "no players left")
	}
	for _, p := range e.players {
		p.IssueOrders(e.deck)
		if err := e.step(CmdIssueOrder, fmt.Sprintf("%s has %d orders queued", p.Name, p.Orders().Len())); err != nil {
			return err
		}
	}
	return e.step(CmdEndIssueOrders, fmt.Sprintf("round %d orders issued", e.turn.Round))
}

// executeOrders takes one order from each queue in turn until all are empty.
// It reports whether the game is over.
func (e *Engine) executeOrders() (bool, error) {
	for {
		if w := e.checkWinner(); w != nil {
			return true, e.finish(w)
		}
		executed := false
		for _, p := range e.players {
			o, ok := p.Orders().Pop()
			if !ok {
				continue
			}
			executed = true
			o.Execute(e.turn)
			if err := e.step(CmdExecOrder, o.Effect()); err != nil {
				return true, err
			}
			if w := e.checkWinner(); w != nil {
				return true, e.finish(w)
			}
		}
		if !executed {
			break
		}
	}

	if e.turn.Round >= e.maxTurns {
		log.Info().Msgf("no winner after %d rounds", e.turn.Round)
		for _, s := range game.Standings(e.players, e.m) {
			log.Info().Msgf("%s: %.2f (territories %.2f, armies %.2f, bonus %.2f, connectivity %.2f)",
				s.Player.Name, s.Score, s.Territories, s.Armies, s.Bonus, s.Connectivity)
		}
		return true, e.step(CmdWin, fmt.Sprintf("draw after %d rounds", e.turn.Round))
	}
	return false, e.step(CmdEndExecOrders, fmt.Sprintf("round %d done", e.turn.Round))
}

// checkWinner returns the player owning every territory, or the last player
// left in the rotation.
func (e *Engine) checkWinner() *game.Player {
	if len(e.players) == 1 {
		return e.players[0]
	}
	for _, p := range e.players {
		if p.TerritoryCount() == len(e.m.Territories) {
			return p
		}
	}
	return nil
}

func (e *Engine) finish(winner *game.Player) error {
	e.winner = winner
	for _, p := range e.players {
		p.Orders().Clear()
	}
	log.Info().Msgf("%s wins after %d rounds", winner.Name, e.turn.Round)
	return e.step(CmdWin, fmt.Sprintf("%s wins after %d rounds", winner.Name, e.turn.Round))
}
