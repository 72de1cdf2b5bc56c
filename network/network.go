package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/model"
	"github.com/ratel-online/tricks/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle serves one seat for the lifetime of a connection. Once a session
// exists it owns the connection and is the one to close it.
func handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	log.Info("new player connected! ")
	login, err := loginAuth(c)
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		if err := c.Close(); err != nil {
			log.Error(err)
		}
		return err
	}
	s := newSession(c, login)
	defer s.shutdown()
	table, seat, err := service.QuickJoin(s)
	if err != nil {
		s.send(protocol.ErrorPacket(err))
		return err
	}
	s.sit(table, seat)
	log.Infof("player %s[%d] seated at table %s seat %d\n", login.Name, login.ID, table.ID, seat)
	defer table.Leave(seat)
	return s.listen(c)
}

func loginAuth(c *network.Conn) (*model.Login, error) {
	loginChan := make(chan *model.Login, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		login := &model.Login{}
		err = packet.Unmarshal(login)
		if err != nil {
			log.Error(err)
			return
		}
		loginChan <- login
	})
	select {
	case login := <-loginChan:
		if login.Name == "" {
			return nil, consts.ErrorsAuthFail
		}
		return login, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
