package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/chaos/chaos/card/color"
	"github.com/ratel-online/chaos/consts"
)

// Type is the identity of a card face. All types are package singletons, so
// two cards share a type iff their Type values are equal.
type Type interface {
	Name() string
	DrawAmount() int
	Wild() bool
	Skip() bool
	Reverse() bool
	Number() (int, bool)
	String() string
}

type typeStruct struct {
	name       string
	drawAmount int
	wild       bool
	skip       bool
	reverse    bool
	number     int
	isNumber   bool
}

func (t *typeStruct) Name() string {
	return t.name
}

func (t *typeStruct) DrawAmount() int {
	return t.drawAmount
}

func (t *typeStruct) Wild() bool {
	return t.wild
}

func (t *typeStruct) Skip() bool {
	return t.skip
}

func (t *typeStruct) Reverse() bool {
	return t.reverse
}

func (t *typeStruct) Number() (int, bool) {
	return t.number, t.isNumber
}

func (t *typeStruct) String() string {
	return t.name
}

var SkipType = &typeStruct{name: "skip", skip: true}

var ReverseType = &typeStruct{name: "reverse", reverse: true}

var DrawTwoType = &typeStruct{name: "draw 2", drawAmount: 2, skip: true}

var WildDrawFourType = &typeStruct{name: "wild draw 4", drawAmount: 4, skip: true, wild: true}

var WildType = &typeStruct{name: "wild", wild: true}

var numberTypes = func() [10]*typeStruct {
	var types [10]*typeStruct
	for n := 0; n <= 9; n++ {
		types[n] = &typeStruct{name: strconv.Itoa(n), number: n, isNumber: true}
	}
	return types
}()

// NumberType returns the singleton type for number n (0-9).
func NumberType(n int) Type {
	return numberTypes[n]
}

var actionTypes = map[string]Type{
	SkipType.name:         SkipType,
	ReverseType.name:      ReverseType,
	DrawTwoType.name:      DrawTwoType,
	WildDrawFourType.name: WildDrawFourType,
	WildType.name:         WildType,
}

func TypeByName(name string) (Type, error) {
	if n, err := strconv.Atoi(name); err == nil && 0 <= n && n <= 9 {
		return numberTypes[n], nil
	}
	cardType := actionTypes[name]
	if cardType == nil {
		return nil, fmt.Errorf("invalid card type '%s': %w", name, consts.ErrorsInvalidCardSpec)
	}
	return cardType, nil
}

// Card is a value. The only play-time attribute is the color a wild card is
// fixed to, and that is attached to a copy via WithColor, never written back.
type Card struct {
	color         color.Color
	cardType      Type
	ruleAdditions int
	chosen        color.Color
}

// New builds a card from catalog names. Unrecognized names fail with an
// InvalidCardSpec error, callers at input boundaries must handle it.
func New(colorName string, typeName string, ruleAdditions int) (Card, error) {
	cardColor, err := color.ByName(colorName)
	if err != nil {
		return Card{}, fmt.Errorf("%v: %w", err, consts.ErrorsInvalidCardSpec)
	}
	cardType, err := TypeByName(typeName)
	if err != nil {
		return Card{}, err
	}
	if ruleAdditions < 0 {
		return Card{}, fmt.Errorf("negative rule additions %d: %w", ruleAdditions, consts.ErrorsInvalidCardSpec)
	}
	if cardType.Wild() != (cardColor == color.Wild) {
		return Card{}, fmt.Errorf("color %s does not fit type %s: %w", colorName, typeName, consts.ErrorsInvalidCardSpec)
	}
	return Of(cardColor, cardType, ruleAdditions), nil
}

// Of builds a card from known-good catalog values.
func Of(cardColor color.Color, cardType Type, ruleAdditions int) Card {
	return Card{color: cardColor, cardType: cardType, ruleAdditions: ruleAdditions}
}

func (c Card) Color() color.Color {
	return c.color
}

// EffectiveColor is the color the card counts as on the pile: the chosen
// color for a played wild, the printed color otherwise.
func (c Card) EffectiveColor() color.Color {
	if c.chosen != nil {
		return c.chosen
	}
	return c.color
}

func (c Card) Type() Type {
	return c.cardType
}

func (c Card) RuleAdditions() int {
	return c.ruleAdditions
}

// WithColor returns a copy of a wild card fixed to the picked color.
// Non-wild cards are returned unchanged.
func (c Card) WithColor(picked color.Color) Card {
	if !c.cardType.Wild() {
		return c
	}
	c.chosen = picked
	return c
}

// Identical reports whether two cards are the same physical kind of card:
// printed color, type and rule additions all match. Used for duplicate
// jump-in checks.
func (c Card) Identical(other Card) bool {
	return c.color == other.color &&
		c.cardType == other.cardType &&
		c.ruleAdditions == other.ruleAdditions
}

// Compatible reports whether the two cards may follow each other on the
// pile: same effective color, same type, or either is wild. Symmetric.
func (c Card) Compatible(other Card) bool {
	if c.cardType.Wild() || other.cardType.Wild() {
		return true
	}
	if c.EffectiveColor() == other.EffectiveColor() {
		return true
	}
	return c.cardType == other.cardType
}

// Number returns the card's numeric value, when it is a number card.
func (c Card) Number() (int, bool) {
	return c.cardType.Number()
}

func (c Card) DrawAmount() int {
	return c.cardType.DrawAmount()
}

func (c Card) String() string {
	var text string
	switch {
	case c.cardType == SkipType:
		text = c.color.Paint("(S)")
	case c.cardType == ReverseType:
		text = c.color.Paint("(R)")
	case c.cardType == DrawTwoType:
		text = c.color.Paint("+2!")
	case c.cardType == WildDrawFourType:
		text = "+4!(*)"
	case c.cardType == WildType:
		text = "(*)"
	default:
		text = c.color.Paintf("[%s]", c.cardType.Name())
	}
	if c.chosen != nil {
		text += fmt.Sprintf("(%s)", c.chosen.Name())
	}
	if c.ruleAdditions > 0 {
		text += fmt.Sprintf("{+%d rule}", c.ruleAdditions)
	}
	return text
}
