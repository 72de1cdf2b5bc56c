// Command client is a line based debug client. It logs in, prints the seat
// after every packet and sends each stdin line as a command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tricks/model"
	"github.com/ratel-online/tricks/packet"
	"github.com/ratel-online/tricks/player"
	"github.com/ratel-online/tricks/render"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9999", "server address")
	name := flag.String("name", "guest", "player name")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	c := network.Wrapper(protocol.NewTcpReadWriteCloser(conn))
	defer func() {
		_ = c.Close()
	}()

	body, _ := jsoniter.Marshal(model.Login{ID: time.Now().UnixNano(), Name: *name})
	if err := c.Write(protocol.Packet{Body: body}); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	async.Async(func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := c.Write(protocol.Packet{Body: scanner.Bytes()}); err != nil {
				log.Error(err)
				return
			}
		}
	})

	state, _ := player.New(0)
	for {
		p, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		if err := packet.Apply(state, p.Body); err != nil {
			fmt.Println(string(p.Body))
			continue
		}
		fmt.Println(render.State(state))
	}
}
