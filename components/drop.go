package components

import (
	"github.com/automoto/skyraid/config"
	"github.com/yohamta/donburi"
)

type DropTableData struct {
	Entries []config.DropEntry
}

type ScoreValueData struct {
	Value int
}

var DropTable = donburi.NewComponentType[DropTableData]()
var ScoreValue = donburi.NewComponentType[ScoreValueData]()
