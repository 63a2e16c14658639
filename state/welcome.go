package state

import (
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString("Welcome to total chaos! \n")
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
