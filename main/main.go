package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/rawbytedev/vector"
)

var logger = log.With(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), "ts", log.DefaultTimestampUTC)

type entry struct {
	Key  string
	Vals []float64
}

func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		level.Error(logger).Log("msg", "can not create profile", "err", err)
		os.Exit(1)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	var v vector.Of[entry]
	lastCap := v.Cap()
	for i := 0; i < 100000; i++ {
		if err := v.PushBack(entry{Key: "k", Vals: []float64{float64(i)}}); err != nil {
			level.Error(logger).Log("msg", "push back failed", "n", v.Len(), "err", err)
			os.Exit(1)
		}
		if v.Cap() != lastCap {
			level.Debug(logger).Log("msg", "grew", "len", v.Len(), "cap", v.Cap())
			lastCap = v.Cap()
		}
	}
	level.Info(logger).Log("msg", "append loop done", "len", v.Len(), "cap", v.Cap(), "footprint", footprint(&v))

	for i := 0; i < 1000; i++ {
		if _, err := v.Insert(i*7%v.Len(), entry{Key: "ins"}); err != nil {
			level.Error(logger).Log("msg", "insert failed", "err", err)
			os.Exit(1)
		}
		if _, err := v.Erase(i * 13 % v.Len()); err != nil {
			level.Error(logger).Log("msg", "erase failed", "err", err)
			os.Exit(1)
		}
	}
	level.Info(logger).Log("msg", "insert/erase loop done", "len", v.Len(), "cap", v.Cap())

	var small vector.Of[entry]
	for i := 0; i < 10; i++ {
		if err := small.Assign(&v); err != nil {
			level.Error(logger).Log("msg", "assign failed", "err", err)
			os.Exit(1)
		}
		small.Clear()
	}
	level.Info(logger).Log("msg", "assign loop done", "footprint", footprint(&small))

	small.Destroy()
	v.Destroy()
	if err := pprof.WriteHeapProfile(f); err != nil {
		level.Error(logger).Log("msg", "can not write heap profile", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "heap profile written", "file", f.Name())
}

func footprint(v *vector.Of[entry]) string {
	return humanize.Bytes(v.Footprint())
}
