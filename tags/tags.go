package tags

import "github.com/yohamta/donburi"

var (
	InputController = donburi.NewTag().SetName("InputController")
	EventLog        = donburi.NewTag().SetName("EventLog")
)
