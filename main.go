package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tricks/card"
	"github.com/ratel-online/tricks/config"
	"github.com/ratel-online/tricks/httpapi"
	"github.com/ratel-online/tricks/network"
	"github.com/ratel-online/tricks/service"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg := config.Load()

	faces, err := card.LoadFaces(cfg.Faces)
	if err != nil {
		log.Infof("card faces unavailable: %v\n", err)
	}

	service.Configure(service.Config{HandSize: cfg.HandSize, Seed: cfg.Seed})
	service.StartSweeper(cfg.Sweep)

	if cfg.WSAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.WSAddr).Serve())
		})
	}
	if cfg.HTTPAddr != "" {
		async.Async(func() {
			log.Infof("Http server listening on %s\n", cfg.HTTPAddr)
			log.Error(httpapi.NewRouter(faces).Run(cfg.HTTPAddr))
		})
	}
	server := network.NewTcpServer(cfg.TCPAddr)
	log.Error(server.Serve())
}
