package service

import (
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tricks/consts"
	"github.com/ratel-online/tricks/game"
	"github.com/ratel-online/tricks/rule"
)

// IdleTimeout removes tables nobody touched for this long.
const IdleTimeout = 24 * time.Hour

type Config struct {
	HandSize int
	Rules    rule.Evaluator
	// Seed makes every table's deck reproducible when non zero.
	Seed int64
}

var (
	tables    = hashmap.New()
	tableNos  int64
	config    Config
	quickLock sync.Mutex
)

func Configure(c Config) {
	config = c
}

// StartSweeper removes closed and idle tables every interval.
func StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = consts.SweepTimeout
	}
	async.Async(func() {
		for {
			time.Sleep(interval)
			if n := Sweep(time.Now()); n > 0 {
				log.Infof("swept %d tables\n", n)
			}
		}
	})
}

func CreateTable() *game.Table {
	no := atomic.AddInt64(&tableNos, 1)
	opts := game.Options{
		HandSize: config.HandSize,
		Rules:    config.Rules,
	}
	if config.Seed != 0 {
		opts.Source = rand.NewSource(config.Seed + no)
	}
	table := game.NewTable(uuid.NewString(), opts)
	table.No = no
	tables.Set(table.ID, table)
	log.Infof("table %s created\n", table.ID)
	return table
}

func GetTable(id string) *game.Table {
	if v, ok := tables.Get(id); ok {
		return v.(*game.Table)
	}
	return nil
}

func GetTables() []*game.Table {
	list := make([]*game.Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*game.Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].No < list[j].No
	})
	return list
}

func DeleteTable(id string) {
	if table := GetTable(id); table != nil {
		table.Close(consts.ErrorsTableClosed)
		tables.Del(id)
	}
}

// QuickJoin seats listener at the oldest table still waiting for players,
// opening a new table when none is.
func QuickJoin(listener game.Listener) (*game.Table, int, error) {
	quickLock.Lock()
	defer quickLock.Unlock()
	for _, table := range GetTables() {
		if !table.Open() {
			continue
		}
		if seat, err := table.Join(listener); err == nil {
			return table, seat, nil
		}
	}
	table := CreateTable()
	seat, err := table.Join(listener)
	if err != nil {
		return nil, consts.NoTurn, err
	}
	return table, seat, nil
}

// Sweep drops closed tables and tables idle past IdleTimeout.
func Sweep(now time.Time) int {
	removed := 0
	for _, table := range GetTables() {
		table.Lock()
		idle := table.ActiveTime.Add(IdleTimeout).Before(now)
		table.Unlock()
		if table.Phase() == consts.PhaseClosed || idle {
			DeleteTable(table.ID)
			removed++
		}
	}
	return removed
}
