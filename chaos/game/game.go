package game

import (
	"math/rand"

	"github.com/ratel-online/chaos/chaos/card"
	"github.com/ratel-online/chaos/chaos/event"
	"github.com/ratel-online/chaos/chaos/rule"
	"github.com/ratel-online/chaos/chaos/rulecard"
	"github.com/ratel-online/chaos/consts"
)

// Options tune the open points of the house rules.
type Options struct {
	// SkipBeforeStackCheck applies a pending skip before checking whether
	// the next player can continue a stack. Off, the default, a player who
	// can counter the stack also dodges the skip.
	SkipBeforeStackCheck bool

	// EternalChaos starts the match with every rule force-enabled.
	EternalChaos bool
}

// TurnResult is what a completed turn transition looks like from outside.
type TurnResult struct {
	Next        int
	ForcedDraws int
	Reversed    bool
	Skipped     bool
	JumpedIn    bool
	MustPlay    bool
	Violations  []error
}

// Game owns the whole table: piles, seats, turn pointer, the rule registry
// and the rule-card board. Everything is mutated synchronously, one
// player intent at a time.
type Game struct {
	deck    *Deck
	pile    *Pile
	players []*playerController
	cycler  *Cycler
	rules   *rule.Registry
	board   *rulecard.Board
	options Options

	// cards committed by the play currently resolving
	pending []card.Card
}

func New(players []Player) (*Game, error) {
	return NewWithOptions(players, Options{})
}

func NewWithOptions(players []Player, options Options) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	shuffled := append([]Player(nil), players...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	g := &Game{
		deck:    NewDeck(),
		pile:    NewPile(),
		cycler:  NewCycler(len(shuffled)),
		rules:   rule.Default(),
		options: options,
	}
	g.board = rulecard.NewBoard(g.rules, g)
	for _, player := range shuffled {
		controller := newPlayerController(player)
		controller.AddCards(g.deck.Draw(consts.StartingHandSize))
		g.players = append(g.players, controller)
		registerListeners(player)
	}
	g.pile.Add(g.deck.DrawOne())
	if options.EternalChaos {
		g.rules.EnableAll()
		g.rules.Math().SetAddition(true)
		g.rules.Math().SetSubtraction(true)
		g.rules.Stacking().SetConditions("reverse", "skip", rule.DrawAny)
	}
	return g, nil
}

// registerListeners subscribes the player to every table event it cares
// about, so connected players hear plays they did not make themselves.
func registerListeners(player Player) {
	if listener, ok := player.(event.CardPlayedListener); ok {
		event.CardPlayed.AddListener(listener)
	}
	if listener, ok := player.(event.ColorPickedListener); ok {
		event.ColorPicked.AddListener(listener)
	}
	if listener, ok := player.(event.StackFlushedListener); ok {
		event.StackFlushed.AddListener(listener)
	}
	if listener, ok := player.(event.RuleCardPlayedListener); ok {
		event.RuleCardPlayed.AddListener(listener)
	}
	if listener, ok := player.(event.TurnEndedListener); ok {
		event.TurnEnded.AddListener(listener)
	}
}

func (g *Game) Rules() *rule.Registry {
	return g.rules
}

func (g *Game) Board() *rulecard.Board {
	return g.board
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Pile() *Pile {
	return g.pile
}

func (g *Game) PlayerName(seat int) string {
	return g.players[seat].Name()
}

// PlayerAt exposes the seated player; seats were shuffled at game start.
func (g *Game) PlayerAt(seat int) Player {
	return g.players[seat].player
}

// Winner reports the first seat with an empty hand, if any.
func (g *Game) Winner() (int, bool) {
	for seat, controller := range g.players {
		if controller.NoCards() {
			return seat, true
		}
	}
	return 0, false
}

// rule.Table implementation -------------------------------------------------

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

func (g *Game) CurrentSeat() int {
	return g.cycler.Current()
}

func (g *Game) HandOf(seat int) []card.Card {
	return g.players[seat].Hand()
}

func (g *Game) SetHand(seat int, cards []card.Card) {
	g.players[seat].hand.SetCards(cards)
}

func (g *Game) ForceDraw(seat int, amount int) {
	if amount <= 0 {
		return
	}
	g.players[seat].AddCards(g.deck.Draw(amount))
}

func (g *Game) TopSum() (int, bool) {
	return g.pile.TopSum()
}

// PickSwapTarget asks the seated player for a swap target. The player
// answers with an offset along the turn order, starting at itself; the
// offset comes back converted to a seat, or -1 for no valid target.
func (g *Game) PickSwapTarget(seat int) int {
	offset := g.players[seat].player.PickSwapTarget(g.ExtractState(seat))
	n := len(g.players)
	if offset <= 0 || offset >= n {
		return -1
	}
	return (seat + offset*g.cycler.Direction() + n*n) % n
}

// rulecard.Chooser implementation -------------------------------------------

func (g *Game) PickRuleCard(size int) int {
	return g.players[g.cycler.Current()].player.PickRuleCard(size)
}

// Buffered play -------------------------------------------------------------

// LegalContinuations flags which of the seat's hand cards may extend its
// buffered play right now. With an empty buffer this starts a fresh
// legality derivation against the current top card.
func (g *Game) LegalContinuations(seat int) []bool {
	controller := g.players[seat]
	if len(controller.buffer) == 0 {
		g.refreshMoves(seat)
	}
	return controller.legalContinuations()
}

// BufferCard moves the seat's hand card at index into its pending play.
func (g *Game) BufferCard(seat int, index int) error {
	controller := g.players[seat]
	if len(controller.buffer) == 0 {
		g.refreshMoves(seat)
	}
	if !controller.bufferCard(index) {
		return consts.ErrorsIllegalMove
	}
	return nil
}

// PopBuffer returns count buffered cards (all for -1) to the seat's hand.
func (g *Game) PopBuffer(seat int, count int) error {
	if !g.players[seat].popBuffer(count) {
		return consts.ErrorsInputInvalid
	}
	return nil
}

func (g *Game) refreshMoves(seat int) {
	top, ok := g.pile.Top()
	if !ok {
		return
	}
	g.players[seat].updateLegalMoves(top, seat == g.cycler.Current(), g.rules)
}

// HasLegalPlay reports whether the seat could start any play right now.
func (g *Game) HasLegalPlay(seat int) bool {
	for _, legal := range g.LegalContinuations(seat) {
		if legal {
			return true
		}
	}
	return false
}

// PlayBuffered commits the seat's buffered cards as its play. An
// incomplete buffer is an illegal move: every card returns to the hand and
// nothing else changes. A complete play from a seat out of turn is a
// jump-in and pulls the turn pointer onto that seat before resolution.
func (g *Game) PlayBuffered(seat int) (TurnResult, error) {
	controller := g.players[seat]
	if len(controller.buffer) == 0 {
		return TurnResult{}, consts.ErrorsIllegalMove
	}
	if !controller.moveComplete() {
		controller.popBuffer(-1)
		return TurnResult{}, consts.ErrorsIllegalMove
	}
	jumpedIn := seat != g.cycler.Current()
	if jumpedIn {
		g.cycler.MoveTo(seat)
	}
	played := controller.takeBuffer()
	last := len(played) - 1
	if played[last].Type().Wild() {
		picked := controller.player.PickColor(g.ExtractState(seat))
		played[last] = played[last].WithColor(picked)
		event.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: controller.Name(),
			Color:      picked,
		})
	}
	g.pile.Add(played...)
	g.pending = played
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: controller.Name(),
		Cards:      played,
		JumpIn:     jumpedIn,
	})
	result, err := g.EndTurn()
	result.JumpedIn = jumpedIn
	return result, err
}

// Turn transitions ----------------------------------------------------------

// EndTurn runs the turn pipeline over the cards committed by the play
// being resolved. The ordering is load-bearing: reactors first, then the
// reverse flip, the mandatory advance, stack resolution against the new
// current player, and only then any pending skip.
func (g *Game) EndTurn() (TurnResult, error) {
	result := TurnResult{}
	delta := g.pending
	g.pending = nil
	if len(delta) == 0 {
		// the player only drew
		result.Next = g.cycler.Next()
		g.emitTurnEnded(result)
		return result, nil
	}
	top, _ := g.pile.Top()

	stacking := g.rules.Stacking()
	if err := stacking.React(g, delta, top); err != nil {
		// the play broke a running stack: reported, and the pending
		// draw lands on the player who broke it
		result.Violations = append(result.Violations, err)
		result.ForcedDraws += stacking.Flush(g, g.cycler.Current(), g.multiplier())
	}
	for _, reactor := range g.rules.Reactors() {
		if reactor.Name() == rule.NameStacking {
			continue
		}
		if err := reactor.React(g, delta, top); err != nil {
			result.Violations = append(result.Violations, err)
		}
	}

	g.applyRuleAdditions(delta)

	pendingSkip := false
	if top.Type().Reverse() {
		g.cycler.Reverse()
		result.Reversed = true
		if len(g.players) == 2 {
			// with two players a reverse is one more skip
			pendingSkip = true
		}
	}
	if top.Type().Skip() {
		pendingSkip = true
	}

	g.cycler.Next()

	if g.options.SkipBeforeStackCheck && pendingSkip {
		g.cycler.Next()
		result.Skipped = true
		pendingSkip = false
	}

	if stacking.Count() > 0 {
		next := g.cycler.Current()
		if len(stacking.Moves(top, g.players[next].Hand(), false)) > 0 {
			// the next player may counter; a pending skip is cancelled
			pendingSkip = false
		} else {
			drawn := stacking.Flush(g, next, g.multiplier())
			result.ForcedDraws += drawn
			event.StackFlushed.Emit(event.StackFlushedPayload{
				PlayerName: g.players[next].Name(),
				CardsDrawn: drawn,
			})
		}
	}

	if pendingSkip {
		g.cycler.Next()
		result.Skipped = true
	}

	result.Next = g.cycler.Current()
	g.interruptBuffers(top)
	g.emitTurnEnded(result)
	return result, nil
}

// DrawInstead is the seat opting to draw rather than play. A running stack
// resolves onto the drawer; otherwise one card is drawn. With draw-to-play
// in force the turn does not end: the player must attempt a play or pass.
func (g *Game) DrawInstead(seat int) (TurnResult, error) {
	if seat != g.cycler.Current() {
		return TurnResult{}, consts.ErrorsNotYourTurn
	}
	stacking := g.rules.Stacking()
	if stacking.Count() > 0 {
		drawn := stacking.Flush(g, seat, g.multiplier())
		event.StackFlushed.Emit(event.StackFlushedPayload{
			PlayerName: g.players[seat].Name(),
			CardsDrawn: drawn,
		})
		result, err := g.EndTurn()
		result.ForcedDraws += drawn
		return result, err
	}
	g.ForceDraw(seat, 1)
	if g.rules.Get(rule.NameDrawToPlay).Enabled() {
		return TurnResult{Next: seat, ForcedDraws: 1, MustPlay: true}, nil
	}
	result, err := g.EndTurn()
	result.ForcedDraws++
	return result, err
}

// Pass ends the seat's turn without a play; only meaningful under
// draw-to-play after drawing.
func (g *Game) Pass(seat int) (TurnResult, error) {
	if seat != g.cycler.Current() {
		return TurnResult{}, consts.ErrorsNotYourTurn
	}
	return g.EndTurn()
}

// Slap records the seat slapping the pile.
func (g *Game) Slap(seat int) {
	g.rules.SlapJacks().Slap(g, seat)
}

// Spoke feeds the external talk-detection signal for the seat.
func (g *Game) Spoke(seat int) {
	g.rules.SilentSixes().Spoke(g, seat)
}

func (g *Game) multiplier() float64 {
	multiplier := g.rules.Multiplier()
	if multiplier.Enabled() {
		return multiplier.Factor()
	}
	return 1
}

// applyRuleAdditions settles the rule-addition counts on the played cards:
// normally that many rule cards are drawn and slotted by the player; while
// total chaos is engaged each addition strips one of its lives instead.
func (g *Game) applyRuleAdditions(delta []card.Card) {
	additions := 0
	for _, played := range delta {
		additions += played.RuleAdditions()
	}
	if additions == 0 {
		return
	}
	if chaos := g.board.Chaos(); chaos != nil {
		for i := 0; i < additions && chaos.Active(); i++ {
			chaos.StripLife()
		}
		return
	}
	seat := g.cycler.Current()
	for i := 0; i < additions; i++ {
		drawn := g.board.Draw()
		if drawn == nil {
			return
		}
		if g.board.NumSlots() == 0 {
			g.board.AddSlot()
		}
		index := g.players[seat].player.PickSlot(g.board.NumSlots())
		if index < 0 || index >= g.board.NumSlots() {
			index = 0
		}
		_ = g.board.Play(drawn, index)
		event.RuleCardPlayed.Emit(event.RuleCardPlayedPayload{
			PlayerName: g.players[seat].Name(),
			RuleName:   drawn.Name(),
			Slot:       index,
		})
	}
}

func (g *Game) interruptBuffers(top card.Card) {
	for seat, controller := range g.players {
		controller.interrupt(top, seat == g.cycler.Current(), g.rules)
	}
}

func (g *Game) emitTurnEnded(result TurnResult) {
	event.TurnEnded.Emit(event.TurnEndedPayload{
		NextPlayerName: g.players[result.Next].Name(),
		ForcedDraws:    result.ForcedDraws,
		Reversed:       result.Reversed,
		Skipped:        result.Skipped,
		JumpedIn:       result.JumpedIn,
	})
}
