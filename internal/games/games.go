// Package games is the bundled lookup registry of game types and raw query
// protocols the watcher knows how to poll. The control plane only
// re-serializes this data; it never interprets it.
package games

import "fmt"

// Version identifies the bundled registry data, reported by /features
// alongside the service version.
const Version = "4.3.1"

// Game describes one supported game type.
type Game struct {
	ID   string
	Name string
	Year int
}

// Title renders the human-readable label shown by UIs.
func (g Game) Title() string {
	return fmt.Sprintf("%s (%d)", g.Name, g.Year)
}

var supported = []Game{
	{ID: "arma3", Name: "ARMA 3", Year: 2013},
	{ID: "ark", Name: "ARK: Survival Evolved", Year: 2017},
	{ID: "csgo", Name: "Counter-Strike: Global Offensive", Year: 2012},
	{ID: "cs16", Name: "Counter-Strike 1.6", Year: 2000},
	{ID: "dayz", Name: "DayZ", Year: 2018},
	{ID: "eco", Name: "Eco", Year: 2018},
	{ID: "fivem", Name: "FiveM", Year: 2015},
	{ID: "gmod", Name: "Garry's Mod", Year: 2004},
	{ID: "minecraft", Name: "Minecraft", Year: 2009},
	{ID: "minecraftbe", Name: "Minecraft: Bedrock Edition", Year: 2017},
	{ID: "mordhau", Name: "Mordhau", Year: 2019},
	{ID: "projectzomboid", Name: "Project Zomboid", Year: 2013},
	{ID: "quake3", Name: "Quake 3: Arena", Year: 1999},
	{ID: "rust", Name: "Rust", Year: 2013},
	{ID: "squad", Name: "Squad", Year: 2020},
	{ID: "teamspeak3", Name: "Teamspeak 3", Year: 2004},
	{ID: "terraria", Name: "Terraria", Year: 2011},
	{ID: "tf2", Name: "Team Fortress 2", Year: 2007},
	{ID: "unturned", Name: "Unturned", Year: 2014},
	{ID: "valheim", Name: "Valheim", Year: 2021},
	{ID: "vrising", Name: "V Rising", Year: 2022},
}

// protocols are the raw wire protocols usable directly by id when a game
// type is not listed.
var protocols = []string{
	"battleye",
	"doom3",
	"gamespy1",
	"gamespy2",
	"gamespy3",
	"nadeo",
	"quake1",
	"quake2",
	"quake3",
	"unreal2",
	"valve",
	"vcmp",
}

// Supported returns the registered game types in listing order.
func Supported() []Game {
	out := make([]Game, len(supported))
	copy(out, supported)
	return out
}

// Protocols returns the raw protocol identifiers in listing order.
func Protocols() []string {
	out := make([]string, len(protocols))
	copy(out, protocols)
	return out
}

// Enum returns the flattened identifier list and matching titles: every game
// type first, then every protocol as "protocol-<id>". The two slices are
// index-aligned.
func Enum() (ids, titles []string) {
	ids = make([]string, 0, len(supported)+len(protocols))
	titles = make([]string, 0, len(supported)+len(protocols))
	for _, g := range supported {
		ids = append(ids, g.ID)
		titles = append(titles, g.Title())
	}
	for _, p := range protocols {
		ids = append(ids, "protocol-"+p)
		titles = append(titles, "protocol-"+p)
	}
	return ids, titles
}
