package rulecard

import (
	"github.com/ratel-online/chaos/chaos/rule"
)

// Card is a rule made playable: drawn from the rule deck into a slot, it
// switches engine behavior on while it sits on top and off when buried or
// discarded. Cards are never duplicated, only relocated.
type Card interface {
	Name() string
	Active() bool
	SetActive(active bool, slot *Slot)
}

type ruleCard struct {
	name   string
	active bool
	rules  *rule.Registry
}

func (c *ruleCard) Name() string {
	return c.name
}

func (c *ruleCard) Active() bool {
	return c.active
}

// Basic toggles the rule it is named after, nothing more.
type Basic struct {
	ruleCard
}

func NewBasic(rules *rule.Registry, ruleName string) *Basic {
	return &Basic{ruleCard{name: ruleName, rules: rules}}
}

func (c *Basic) SetActive(active bool, slot *Slot) {
	if active == c.active {
		return
	}
	c.active = active
	if named := c.rules.Get(c.name); named != nil {
		named.SetEnabled(active)
	}
}

// StackingCard carries one stacking condition token and contributes it to
// the shared condition set while active. Stacking itself is enabled while
// any condition is in force.
type StackingCard struct {
	ruleCard
	condition string
}

func NewStackingCard(rules *rule.Registry, condition string) *StackingCard {
	return &StackingCard{
		ruleCard:  ruleCard{name: rule.NameStacking, rules: rules},
		condition: condition,
	}
}

func (c *StackingCard) Condition() string {
	return c.condition
}

func (c *StackingCard) SetActive(active bool, slot *Slot) {
	if active == c.active {
		return
	}
	c.active = active
	stacking := c.rules.Stacking()
	if active {
		stacking.AddCondition(c.condition)
		stacking.SetEnabled(true)
	} else {
		stacking.RemoveCondition(c.condition)
	}
}

// MathCard toggles one math operation.
type MathCard struct {
	ruleCard
	addition bool
}

func NewMathCard(rules *rule.Registry, addition bool) *MathCard {
	return &MathCard{
		ruleCard: ruleCard{name: rule.NameMath, rules: rules},
		addition: addition,
	}
}

func (c *MathCard) SetActive(active bool, slot *Slot) {
	if active == c.active {
		return
	}
	c.active = active
	math := c.rules.Math()
	if c.addition {
		math.SetAddition(active)
	} else {
		math.SetSubtraction(active)
	}
	math.SetEnabled(math.Addition() || math.Subtraction())
}

// MultiplierCard multiplies the shared attack multiplier by its factor on
// activation and divides it back on deactivation, so the change is
// reversible whatever order cards come and go in.
type MultiplierCard struct {
	ruleCard
	factor float64
}

func NewMultiplierCard(rules *rule.Registry, factor float64) *MultiplierCard {
	return &MultiplierCard{
		ruleCard: ruleCard{name: rule.NameMultiplier, rules: rules},
		factor:   factor,
	}
}

func (c *MultiplierCard) SetActive(active bool, slot *Slot) {
	if active == c.active {
		return
	}
	c.active = active
	multiplier := c.rules.Multiplier()
	if active {
		multiplier.Multiply(c.factor)
	} else {
		multiplier.Divide(c.factor)
	}
	multiplier.SetEnabled(multiplier.Factor() != 1)
}

// SlotRemover is one-shot: played into a slot, it sends the whole slot to
// the discard and burns out.
type SlotRemover struct {
	ruleCard
	board *Board
}

func NewSlotRemover(board *Board) *SlotRemover {
	return &SlotRemover{
		ruleCard: ruleCard{name: "slot remover", rules: board.rules},
		board:    board,
	}
}

func (c *SlotRemover) SetActive(active bool, slot *Slot) {
	c.active = false
	if active && slot != nil {
		c.board.DiscardSlot(slot)
	}
}

// ExtraSlotCard is one-shot: it grows the board by one empty slot.
type ExtraSlotCard struct {
	ruleCard
	board *Board
}

func NewExtraSlotCard(board *Board) *ExtraSlotCard {
	return &ExtraSlotCard{
		ruleCard: ruleCard{name: "extra slot", rules: board.rules},
		board:    board,
	}
}

func (c *ExtraSlotCard) SetActive(active bool, slot *Slot) {
	c.active = false
	if active {
		c.board.AddSlot()
	}
}

// ReviveCard digs a buried rule card out of its own slot (slot revive) or
// out of the shared discard (discard revive) and puts it back in force on
// the slot the revive was played into. A bad pick is a no-op.
type ReviveCard struct {
	ruleCard
	board       *Board
	fromDiscard bool
}

func NewReviveCard(board *Board, fromDiscard bool) *ReviveCard {
	name := "slot revive"
	if fromDiscard {
		name = "discard revive"
	}
	return &ReviveCard{
		ruleCard:    ruleCard{name: name, rules: board.rules},
		board:       board,
		fromDiscard: fromDiscard,
	}
}

func (c *ReviveCard) SetActive(active bool, slot *Slot) {
	if active == c.active {
		return
	}
	c.active = active
	if !active || slot == nil {
		return
	}
	source := slot
	if c.fromDiscard {
		source = c.board.Discard()
	}
	if source.Len() == 0 {
		return
	}
	index := c.board.chooser.PickRuleCard(source.Len())
	// RuleCardNotFound recovers as a no-op
	_ = source.Revive(index, slot)
}

// TotalChaosCard force-enables the entire rule set, governed by a lives
// counter. While engaged, activations feed it lives and deactivations
// starve it; at zero it collapses and the whole rule board resets.
type TotalChaosCard struct {
	ruleCard
	board *Board
	lives int
}

func NewTotalChaosCard(board *Board) *TotalChaosCard {
	return &TotalChaosCard{
		ruleCard: ruleCard{name: "total chaos", rules: board.rules},
		board:    board,
	}
}

func (c *TotalChaosCard) Lives() int {
	return c.lives
}

func (c *TotalChaosCard) SetActive(active bool, slot *Slot) {
	if active && !c.active {
		c.active = true
		c.lives = 3
		// wipe the rest of the board before force-enabling, so the
		// discarded cards' deactivations cannot undo it
		c.board.DiscardOthers(slot)
		c.rules.EnableAll()
		c.rules.Math().SetAddition(true)
		c.rules.Math().SetSubtraction(true)
		c.rules.Stacking().SetConditions("reverse", "skip", rule.DrawAny)
		c.rules.Multiplier().Reset()
		return
	}
	if !c.active {
		return
	}
	if active {
		c.lives++
	} else {
		c.lives--
	}
	if c.lives <= 0 {
		c.collapse()
	}
}

// StripLife burns one life; rule-addition cards played while total chaos is
// engaged feed on it instead of drawing new rule cards.
func (c *TotalChaosCard) StripLife() {
	if !c.active {
		return
	}
	c.lives--
	if c.lives <= 0 {
		c.collapse()
	}
}

func (c *TotalChaosCard) collapse() {
	c.active = false
	c.lives = 0
	c.board.Reset()
}
