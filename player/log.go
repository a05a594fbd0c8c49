package player

import (
	"github.com/rs/zerolog/log"

	"warzone/game"
)

func logRefused(p *game.Player, what string, err error) {
	log.Debug().Err(err).Str("player", p.Name).Msgf("could not issue %s", what)
}
