package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/model"
	"github.com/ratel-online/tricks/packet"
	"github.com/ratel-online/tricks/player"
	"github.com/ratel-online/tricks/render"
	"github.com/ratel-online/tricks/rule"
)

// Listener receives the packets of one seat. It is called with the table
// locked, in mutation order, so it must neither block nor call back into the
// Table. Network listeners queue the packet and write it elsewhere.
type Listener interface {
	OnPacket(seat int, data []byte)
	OnClosed(seat int, reason error)
}

type Options struct {
	HandSize int
	Rules    rule.Evaluator
	// Source seeds the deck of every round; nil uses the global source.
	Source rand.Source
}

type seat struct {
	state    *player.State
	listener Listener
}

// Table is the coordinator of one three seat game. Every seat owns its own
// player.State; the table keeps them in step and is their only writer.
type Table struct {
	sync.Mutex

	ID         string
	No         int64
	CreatedAt  time.Time
	ActiveTime time.Time

	seats [consts.Seats]*seat
	phase consts.PhaseID
	lead  int
	round int
	opts  Options
}

func NewTable(id string, opts Options) *Table {
	if opts.HandSize <= 0 || opts.HandSize*consts.Seats > card.Total {
		opts.HandSize = consts.HandSize
	}
	if opts.Rules == nil {
		opts.Rules = rule.FollowSuit
	}
	now := time.Now()
	return &Table{
		ID:         id,
		CreatedAt:  now,
		ActiveTime: now,
		phase:      consts.PhaseWaiting,
		lead:       consts.NoTurn,
		opts:       opts,
	}
}

// Join gives listener the lowest free seat. The third join deals.
func (t *Table) Join(listener Listener) (int, error) {
	t.Lock()
	defer t.Unlock()
	if t.phase == consts.PhaseClosed {
		return consts.NoTurn, consts.ErrorsTableClosed
	}
	if t.phase != consts.PhaseWaiting {
		return consts.NoTurn, consts.ErrorsTableFull
	}
	no := consts.NoTurn
	for i, s := range t.seats {
		if s == nil {
			no = i
			break
		}
	}
	if no == consts.NoTurn {
		return no, consts.ErrorsTableFull
	}
	state, err := player.New(no)
	if err != nil {
		return consts.NoTurn, err
	}
	t.seats[no] = &seat{state: state, listener: listener}
	t.ActiveTime = time.Now()
	if err := t.syncReadiness(); err != nil {
		return consts.NoTurn, err
	}
	log.Infof("table %s: seat %d joined, %d/%d ready\n", t.ID, no, t.players(), consts.Ready)
	t.emit()
	if t.players() == consts.Ready {
		if err := t.deal(); err != nil {
			return no, err
		}
	}
	return no, nil
}

// Leave frees a seat while waiting. Once cards are dealt a missing seat ends
// the game and the table is closed.
func (t *Table) Leave(no int) {
	t.Lock()
	defer t.Unlock()
	if no < 0 || no >= consts.Seats || t.seats[no] == nil {
		return
	}
	t.seats[no] = nil
	t.ActiveTime = time.Now()
	log.Infof("table %s: seat %d left\n", t.ID, no)
	if t.phase == consts.PhaseWaiting {
		if err := t.syncReadiness(); err != nil {
			log.Error(err)
		}
		t.emit()
		return
	}
	t.close(fmt.Errorf("%wSeat %d left. ", consts.ErrorsTableClosed, no))
}

func (t *Table) Close(reason error) {
	t.Lock()
	defer t.Unlock()
	t.close(reason)
}

// Play puts card id of seat no on the table. The third card of a trick
// completes it; the last trick of a round ends the round.
func (t *Table) Play(no int, id int) error {
	t.Lock()
	defer t.Unlock()
	switch t.phase {
	case consts.PhaseDealt, consts.PhaseInTrick, consts.PhaseTrickComplete:
	case consts.PhaseClosed:
		return consts.ErrorsTableClosed
	default:
		return consts.ErrorsGameNotStarted
	}
	if no < 0 || no >= consts.Seats || t.seats[no] == nil {
		return consts.ErrorsSeatInvalid
	}
	c, err := card.New(id)
	if err != nil {
		return err
	}
	own := t.seats[no].state
	if own.Turn() != no {
		return consts.ErrorsNotYourTurn
	}
	if own.Table().Empty() {
		t.lead = no
	}
	if err := t.opts.Rules.Playable(own.Hand(), own.Table(), t.lead, c); err != nil {
		return err
	}
	if err := own.ApplyCardPlayed(no, c); err != nil {
		return err
	}
	for i, s := range t.seats {
		if i == no {
			continue
		}
		if err := s.state.ApplyCardPlayed(no, c); err != nil {
			return err
		}
	}
	t.phase = consts.PhaseInTrick
	t.ActiveTime = time.Now()
	log.Infof("table %s: seat %d played %s\n", t.ID, no, render.Card(c))
	t.emit()

	table := own.Table()
	if !table.Full() {
		return nil
	}
	winner := t.opts.Rules.Winner(table, t.lead)
	for _, s := range t.seats {
		if err := s.state.CompleteTrick(winner); err != nil {
			return err
		}
	}
	t.phase = consts.PhaseTrickComplete
	t.lead = winner
	log.Infof("table %s: seat %d takes %s\n", t.ID, winner, render.Table(table))
	if len(own.Hand()) == 0 {
		t.phase = consts.PhaseRoundComplete
		for _, s := range t.seats {
			s.state.EndRound()
		}
		log.Infof("table %s: round %d complete, %s\n", t.ID, t.round, render.Scores(own.Scores()))
	}
	t.emit()
	return nil
}

// NextRound deals again after a completed round. Scores carry over and the
// lead moves to the next seat.
func (t *Table) NextRound() error {
	t.Lock()
	defer t.Unlock()
	if t.phase != consts.PhaseRoundComplete {
		return consts.ErrorsRoundRunning
	}
	t.round++
	return t.deal()
}

func (t *Table) Phase() consts.PhaseID {
	t.Lock()
	defer t.Unlock()
	return t.phase
}

func (t *Table) Players() int {
	t.Lock()
	defer t.Unlock()
	return t.players()
}

// Open reports whether the table still takes players.
func (t *Table) Open() bool {
	t.Lock()
	defer t.Unlock()
	return t.phase == consts.PhaseWaiting && t.players() < consts.Seats
}

func (t *Table) Packet(no int) ([]byte, error) {
	snapshot, err := t.Snapshot(no)
	if err != nil {
		return nil, err
	}
	return packet.EncodeSnapshot(snapshot), nil
}

func (t *Table) Snapshot(no int) (player.Snapshot, error) {
	t.Lock()
	defer t.Unlock()
	if no < 0 || no >= consts.Seats || t.seats[no] == nil {
		return player.Snapshot{}, consts.ErrorsSeatInvalid
	}
	return t.seats[no].state.Snapshot(), nil
}

func (t *Table) Model() model.Table {
	t.Lock()
	defer t.Unlock()
	m := model.Table{
		ID:        t.ID,
		Phase:     int(t.phase),
		PhaseDesc: consts.Phases[t.phase],
		Players:   t.players(),
		Round:     t.round,
		Turn:      consts.NoTurn,
		Seats:     make([]model.Seat, 0, consts.Seats),
	}
	for i, s := range t.seats {
		if s == nil {
			continue
		}
		snapshot := s.state.Snapshot()
		m.Turn = snapshot.Turn
		m.Seats = append(m.Seats, model.Seat{
			Seat:   i,
			Cards:  len(snapshot.Hand),
			Played: snapshot.Table[i].ID(),
			Tricks: snapshot.Scores[i].Tricks,
			Total:  snapshot.Scores[i].Cards,
		})
	}
	return m
}

func (t *Table) deal() error {
	deck := card.NewDeck(t.opts.Source)
	hands := deck.Deal(consts.Seats, t.opts.HandSize)
	leader := t.round % consts.Seats
	for i, s := range t.seats {
		if err := s.state.Deal(hands[i], leader); err != nil {
			return err
		}
	}
	t.phase = consts.PhaseDealt
	t.lead = leader
	log.Infof("table %s: round %d dealt, %d cards undealt, seat %d leads\n", t.ID, t.round, deck.Size(), leader)
	t.emit()
	return nil
}

func (t *Table) syncReadiness() error {
	ready := t.players()
	for _, s := range t.seats {
		if s == nil {
			continue
		}
		if err := s.state.SetReadiness(ready); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) players() int {
	n := 0
	for _, s := range t.seats {
		if s != nil {
			n++
		}
	}
	return n
}

func (t *Table) emit() {
	for i, s := range t.seats {
		if s == nil || s.listener == nil {
			continue
		}
		s.listener.OnPacket(i, packet.Encode(s.state))
	}
}

func (t *Table) close(reason error) {
	if t.phase == consts.PhaseClosed {
		return
	}
	t.phase = consts.PhaseClosed
	log.Infof("table %s: closed, %v\n", t.ID, reason)
	for i, s := range t.seats {
		if s == nil {
			continue
		}
		if s.listener != nil {
			s.listener.OnClosed(i, reason)
		}
		t.seats[i] = nil
	}
}
