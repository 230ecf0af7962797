package inserter

import (
	"sync"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/sirupsen/logrus"
)

const QUEUE_SIZE = 512

// Background drains Add calls through a channel so that database
// round trips overlap with CSV reading. Close waits for the queue to
// drain and returns the first error seen by the insert loop.
func Background(inserter common.Inserter) common.Inserter {
	backgroundInserter := backgroundInserter{
		inserter: inserter,
		dataChan: make(chan []string, QUEUE_SIZE),
	}
	backgroundInserter.wg.Add(1)
	go backgroundInserter.insertLoop()
	return &backgroundInserter
}

type backgroundInserter struct {
	inserter common.Inserter
	dataChan chan []string
	wg       sync.WaitGroup
	err      error
}

func (this *backgroundInserter) insertLoop() {
	defer this.wg.Done()
	for args := range this.dataChan {
		if this.err != nil {
			continue
		}
		if err := this.inserter.Add(args...); err != nil {
			logrus.Error("Can not insert: ", err)
			this.err = err
		}
	}
	if err := this.inserter.Close(); err != nil && this.err == nil {
		this.err = err
	}
}

func (this *backgroundInserter) Add(args ...string) error {
	this.dataChan <- args
	return nil
}

func (this *backgroundInserter) Close() error {
	close(this.dataChan)
	this.wg.Wait()
	return this.err
}
