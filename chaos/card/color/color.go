package color

import (
	"fmt"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Wild = &colorStruct{
	name:          "wild",
	colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

// Painted are the colors a wild card may be fixed to when played.
var Painted = []Color{Red, Yellow, Green, Blue}

var colors = map[string]Color{
	Wild.name:   Wild,
	Red.name:    Red,
	Yellow.name: Yellow,
	Green.name:  Green,
	Blue.name:   Blue,
}

func ByName(name string) (Color, error) {
	color := colors[name]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}
