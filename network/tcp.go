package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	addr string
}

func NewTcpServer(addr string) Tcp {
	return Tcp{addr: addr}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", listener.Addr())
	return serve(listener)
}

// serve gives every accepted connection a seat until listener is closed.
func serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			remote := conn.RemoteAddr()
			if err := handle(protocol.NewTcpReadWriteCloser(conn)); err != nil {
				log.Errorf("tcp %s: %v\n", remote, err)
			}
		})
	}
}
