package slither

import (
	"fmt"
	"strconv"

	"slither/internal/core"
)

// Parameters returns a read-only snapshot of session values for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	p := g.player
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Player",
			Params: []core.Parameter{
				intParam("score", "Score", p.Score, "Points from eaten pellets"),
				intParam("length", "Length", len(p.Body), "Body segments including the head"),
				floatParam("speed", "Speed", p.Speed, "Head speed in units per second"),
				boolParam("alive", "Alive", p.Alive, "False after a wall or self collision"),
			},
		},
		{
			Name: "Arena",
			Params: []core.Parameter{
				floatParam("arena_radius", "Radius", g.radius, "Playable circle radius"),
				intParam("food_active", "Food", g.ActiveFood(), fmt.Sprintf("Active pellets out of %d", MaxFood)),
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				boolParam("paused", "Paused", g.paused, "Simulation frozen"),
				boolParam("game_over", "Over", g.cause != "", g.cause),
				floatParam("elapsed", "Time", g.elapsed, "Simulated seconds since reset"),
			},
		},
	}}
}

func intParam(key, label string, v int, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

func floatParam(key, label string, v float64, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 1, 64), Description: desc}
}

func boolParam(key, label string, v bool, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v), Description: desc}
}
