package rule

import (
	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/move"
)

// Rule names. Rule cards address rules through these.
const (
	NameStacking     = "stacking"
	NameSlapJacks    = "slap jacks"
	NameSwappyZeros  = "swappy zeros"
	NameSwappySevens = "swappy sevens"
	NameMath         = "math"
	NameDepleters    = "depleters"
	NameJumpIns      = "jump ins"
	NameMultiplier   = "attack multiplier"
	NameDrawToPlay   = "draw to play"
	NameRevive       = "revive"
	NameSilentSixes  = "silent sixes"
)

// Stacking condition tokens, alongside color names and type names.
const (
	DrawAny  = "draw any"
	DrawSame = "draw same"
)

// Rule is a named capability that can be switched on and off mid-game.
type Rule interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
}

// MoveContributor produces extra candidate moves for a hand against the
// current top card. duplicate marks an out-of-turn check, where only plays
// keyed to an identical top card qualify.
type MoveContributor interface {
	Rule
	Moves(top card.Card, hand []card.Card, duplicate bool) []move.Move
}

// TurnReactor runs once per completed play against the cards newly appended
// to the pile. The returned error is reported, never fatal.
type TurnReactor interface {
	Rule
	React(t Table, delta []card.Card, top card.Card) error
}

// Table is the slice of the game a rule may see and mutate. The game owns
// all of this state; rules only reach it through here.
type Table interface {
	NumPlayers() int
	Direction() int
	CurrentSeat() int
	HandOf(seat int) []card.Card
	SetHand(seat int, cards []card.Card)
	ForceDraw(seat int, amount int)
	TopSum() (int, bool)

	// PickSwapTarget asks the external decision provider for the seat the
	// given player trades hands with.
	PickSwapTarget(seat int) int
}

type base struct {
	name    string
	enabled bool
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Enabled() bool {
	return b.enabled
}

func (b *base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Switch is a rule that is nothing but its enabled flag; the turn engine
// consults it directly.
type Switch struct {
	base
}

func NewDrawToPlay() *Switch {
	return &Switch{base{name: NameDrawToPlay}}
}

func NewRevive() *Switch {
	return &Switch{base{name: NameRevive}}
}

// Registry maps rule names to live rule instances, keeping a stable order.
// Rule cards hold a reference to it and issue narrowly-scoped mutations
// against named rules.
type Registry struct {
	names []string
	rules map[string]Rule
}

func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: map[string]Rule{}}
	for _, rule := range rules {
		r.Register(rule)
	}
	return r
}

// Default builds the full chaos rule set, everything disabled. A game with
// no rule cards in play is plain UNO.
func Default() *Registry {
	return NewRegistry(
		NewStacking(),
		NewSlapJacks(),
		NewSwappyZero(),
		NewSwappySeven(),
		NewMathRules(),
		NewDepleters(),
		NewJumpIns(),
		NewAttackMultiplier(),
		NewDrawToPlay(),
		NewRevive(),
		NewSilentSixes(),
	)
}

func (r *Registry) Register(rule Rule) {
	if _, ok := r.rules[rule.Name()]; !ok {
		r.names = append(r.names, rule.Name())
	}
	r.rules[rule.Name()] = rule
}

func (r *Registry) Get(name string) Rule {
	return r.rules[name]
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) ForEach(function func(Rule)) {
	for _, name := range r.names {
		function(r.rules[name])
	}
}

// Contributors lists the enabled move-contributing rules.
func (r *Registry) Contributors() []MoveContributor {
	var contributors []MoveContributor
	r.ForEach(func(rule Rule) {
		if contributor, ok := rule.(MoveContributor); ok && rule.Enabled() {
			contributors = append(contributors, contributor)
		}
	})
	return contributors
}

// Reactors lists the enabled turn-reacting rules.
func (r *Registry) Reactors() []TurnReactor {
	var reactors []TurnReactor
	r.ForEach(func(rule Rule) {
		if reactor, ok := rule.(TurnReactor); ok && rule.Enabled() {
			reactors = append(reactors, reactor)
		}
	})
	return reactors
}

func (r *Registry) EnableAll() {
	r.ForEach(func(rule Rule) {
		rule.SetEnabled(true)
	})
}

// Reset returns every rule to its initial configuration: disabled, stacking
// conditions empty, math operations off, multiplier back to 1, silence
// lifted. A running attack stack is deliberately left alone.
func (r *Registry) Reset() {
	r.ForEach(func(rule Rule) {
		rule.SetEnabled(false)
	})
	r.Stacking().SetConditions()
	r.Math().SetAddition(false)
	r.Math().SetSubtraction(false)
	r.Multiplier().Reset()
	r.SilentSixes().silent = false
}

func (r *Registry) Stacking() *Stacking {
	return r.rules[NameStacking].(*Stacking)
}

func (r *Registry) Math() *MathRules {
	return r.rules[NameMath].(*MathRules)
}

func (r *Registry) Multiplier() *AttackMultiplier {
	return r.rules[NameMultiplier].(*AttackMultiplier)
}

func (r *Registry) SlapJacks() *SlapJacks {
	return r.rules[NameSlapJacks].(*SlapJacks)
}

func (r *Registry) SilentSixes() *SilentSixes {
	return r.rules[NameSilentSixes].(*SilentSixes)
}
