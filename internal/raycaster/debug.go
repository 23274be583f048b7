package raycaster

import (
	"sync"

	"github.com/golang/glog"
)

// DebugLog is verbose kernel tracing, enabled with -v=2.
func DebugLog(format string, args ...interface{}) {
	glog.V(2).Infof(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		glog.V(2).Infof(format, args...)
	})
}
