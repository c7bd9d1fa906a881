package entity

type Player struct {
	Mark Mark
	Bot  bool
}

func NewHumanPlayer(mark Mark) *Player {
	return &Player{Mark: mark}
}

func NewBotPlayer(mark Mark) *Player {
	return &Player{Mark: mark, Bot: true}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
