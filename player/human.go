package player

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"warzone/game"
	"warzone/utils"
)

var errUsage = errors.New("usage")

// Prompter is the console a human player types orders into.
type Prompter interface {
	// Prompt shows the prompt and returns the next line, or false once the
	// input is exhausted.
	Prompt(prompt string) (string, bool)
	Say(format string, args ...any)
}

// Human reads orders from a Prompter. Deploy orders are required until the
// pool is empty, after which the player may queue other orders until "end".
type Human struct {
	IO      Prompter
	Map     *game.Map
	Players func() []*game.Player
}

func (h *Human) Name() string { return "human" }

// ToDefend orders owned territories from weakest to strongest.
func (h *Human) ToDefend(p *game.Player) []*game.Territory {
	return byArmies(p.Territories(), false)
}

// ToAttack lists enemy-owned territories next to the player's own.
func (h *Human) ToAttack(p *game.Player) []*game.Territory {
	return utils.Filter(p.Borders(), func(t *game.Territory) bool { return t.Owner() != nil })
}

func (h *Human) IssueOrders(p *game.Player, deck *game.Deck) {
	h.IO.Say("%s: %d armies to deploy, cards %v", p.Name, p.Available(), p.Hand())
	for {
		prompt := fmt.Sprintf("%s (%d available)> ", p.Name, p.Available())
		if p.Available() == 0 {
			prompt = fmt.Sprintf("%s (orders, end)> ", p.Name)
		}
		line, ok := h.IO.Prompt(prompt)
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		verb := strings.ToLower(fields[0])
		if verb == "end" {
			if p.Available() > 0 {
				h.IO.Say("deploy the remaining %d armies first", p.Available())
				continue
			}
			return
		}
		if p.Available() > 0 && verb != "deploy" && verb != "reinforce" && verb != "orders" && verb != "help" {
			h.IO.Say("deploy the remaining %d armies first", p.Available())
			continue
		}
		if err := h.handle(p, deck, verb, fields[1:]); err != nil {
			h.IO.Say("%v", err)
		}
	}
}

func (h *Human) handle(p *game.Player, deck *game.Deck, verb string, args []string) error {
	switch verb {
	case "help":
		h.IO.Say("deploy <territory> <armies> | advance <from> <to> <armies> | airlift <from> <to> <armies>")
		h.IO.Say("bomb <territory> | blockade <territory> | negotiate <player> | reinforce")
		h.IO.Say("orders | cancel <n> | move <n> <position> | end")
		return nil
	case "orders":
		for i, o := range p.Orders().All() {
			h.IO.Say("%d: %s", i, o)
		}
		return nil
	case "reinforce":
		return p.PlayReinforcement(deck)
	case "cancel":
		o, err := h.orderAt(p, args, 1)
		if err != nil {
			return err
		}
		return p.Orders().Remove(o)
	case "move":
		o, err := h.orderAt(p, args, 2)
		if err != nil {
			return err
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position %q: %w", args[1], err)
		}
		return p.Orders().Move(o, to)
	}

	o, err := h.parseOrder(p, verb, args)
	if err != nil {
		return err
	}
	return p.IssueOrder(o)
}

func (h *Human) parseOrder(p *game.Player, verb string, args []string) (game.Order, error) {
	switch verb {
	case "deploy":
		if len(args) != 2 {
			return nil, fmt.Errorf("deploy <territory> <armies>: %w", errUsage)
		}
		target, err := h.territory(args[0])
		if err != nil {
			return nil, err
		}
		armies, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("armies %q: %w", args[1], err)
		}
		return game.NewDeploy(p, target, armies), nil
	case "advance", "airlift":
		if len(args) != 3 {
			return nil, fmt.Errorf("%s <from> <to> <armies>: %w", verb, errUsage)
		}
		source, err := h.territory(args[0])
		if err != nil {
			return nil, err
		}
		target, err := h.territory(args[1])
		if err != nil {
			return nil, err
		}
		armies, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("armies %q: %w", args[2], err)
		}
		if verb == "advance" {
			return game.NewAdvance(p, source, target, armies), nil
		}
		return game.NewAirlift(p, source, target, armies), nil
	case "bomb", "blockade":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s <territory>: %w", verb, errUsage)
		}
		target, err := h.territory(args[0])
		if err != nil {
			return nil, err
		}
		if verb == "bomb" {
			return game.NewBomb(p, target), nil
		}
		return game.NewBlockade(p, target), nil
	case "negotiate":
		if len(args) != 1 {
			return nil, fmt.Errorf("negotiate <player>: %w", errUsage)
		}
		for _, other := range h.Players() {
			if strings.EqualFold(other.Name, args[0]) {
				return game.NewNegotiate(p, other), nil
			}
		}
		return nil, fmt.Errorf("no player named %q", args[0])
	default:
		return nil, fmt.Errorf("unknown command %q, try help", verb)
	}
}

// territory resolves a name, with underscores standing in for spaces, or a
// numeric ID.
func (h *Human) territory(arg string) (*game.Territory, error) {
	if t, ok := h.Map.TerritoryByName(strings.ReplaceAll(arg, "_", " ")); ok {
		return t, nil
	}
	if id, err := strconv.Atoi(arg); err == nil {
		if t, ok := h.Map.Territory(id); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no territory %q", arg)
}

func (h *Human) orderAt(p *game.Player, args []string, want int) (game.Order, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d arguments: %w", want, errUsage)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", args[0], err)
	}
	orders := p.Orders().All()
	if i < 0 || i >= len(orders) {
		return nil, fmt.Errorf("order %d: %w", i, game.ErrIndexOutOfRange)
	}
	return orders[i], nil
}
