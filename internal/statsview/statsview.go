// Package statsview launches a web viewer for Go runtime statistics of the
// running emulator, served by github.com/go-echarts/statsview at
//
//	http://localhost:12600/debug/statsview
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address is the listen address of the viewer.
const Address = "localhost:12600"

const url = "/debug/statsview"

// URL returns the address the viewer is reachable at.
func URL() string {
	return "http://" + Address + url
}

// Launch starts the viewer in a new goroutine. The returned function stops it.
func Launch(logger *log.Logger) (stop func()) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Debug("Stats viewer stopped", log.Err(err))
		}
	}()

	logger.Info("Stats viewer available", log.String("url", URL()))
	return mgr.Stop
}
