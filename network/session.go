package network

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/model"
)

type writer interface {
	Write(packet protocol.Packet) error
	Close() error
}

type reader interface {
	Read() (*protocol.Packet, error)
}

// table is the part of game.Table a session drives.
type table interface {
	Play(seat int, id int) error
	NextRound() error
}

// session is the connection of one seat. It is the table's Listener for that
// seat and turns the client's text commands into table operations. Packets go
// out through a queue drained by one writer, so the table never waits on the
// network and the seat still sees them in order.
type session struct {
	sync.Mutex

	conn   writer
	login  *model.Login
	table  table
	seat   int
	outbox chan protocol.Packet
	shut   bool
	done   chan struct{}
}

func newSession(conn writer, login *model.Login) *session {
	s := &session{
		conn:   conn,
		login:  login,
		seat:   consts.NoTurn,
		outbox: make(chan protocol.Packet, consts.OutboxSize),
		done:   make(chan struct{}),
	}
	async.Async(s.drain)
	return s
}

func (s *session) sit(t table, seat int) {
	s.Lock()
	defer s.Unlock()
	s.table = t
	s.seat = seat
}

func (s *session) OnPacket(seat int, data []byte) {
	s.send(protocol.Packet{Body: data})
}

// OnClosed sends the reason and then ends the session.
func (s *session) OnClosed(seat int, reason error) {
	s.send(protocol.ErrorPacket(reason))
	s.shutdown()
}

// send queues packet. A seat too far behind is dropped instead of blocking.
func (s *session) send(packet protocol.Packet) {
	s.Lock()
	defer s.Unlock()
	if s.shut {
		return
	}
	select {
	case s.outbox <- packet:
	default:
		log.Errorf("seat %d fell %d packets behind, dropping connection\n", s.seat, consts.OutboxSize)
		s.stop()
	}
}

// shutdown stops taking packets. The queued ones are still written before
// the connection is closed.
func (s *session) shutdown() {
	s.Lock()
	defer s.Unlock()
	s.stop()
}

func (s *session) stop() {
	if s.shut {
		return
	}
	s.shut = true
	close(s.outbox)
}

// drain is the only writer of conn and the only place it is closed.
func (s *session) drain() {
	defer close(s.done)
	for packet := range s.outbox {
		if err := s.conn.Write(packet); err != nil {
			log.Errorf("write packet to %s: %v\n", s.login.Name, err)
		}
	}
	if err := s.conn.Close(); err != nil {
		log.Error(err)
	}
}

func (s *session) listen(r reader) error {
	for {
		packet, err := r.Read()
		if err != nil {
			return err
		}
		err = s.dispatch(packet.String())
		if err == nil {
			continue
		}
		var e consts.Error
		if errors.As(err, &e) && e.Exit {
			return err
		}
		s.send(protocol.ErrorPacket(err))
	}
}

func (s *session) dispatch(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}
	s.Lock()
	t, seat := s.table, s.seat
	s.Unlock()
	if t == nil {
		return consts.ErrorsTableInvalid
	}
	switch fields[0] {
	case consts.CommandPlay:
		if len(fields) != 2 {
			return consts.ErrorsInputInvalid
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return consts.ErrorsInputInvalid
		}
		return t.Play(seat, id)
	case consts.CommandAgain:
		return t.NextRound()
	case consts.CommandExit:
		return consts.ErrorsExist
	}
	return consts.ErrorsInputInvalid
}
