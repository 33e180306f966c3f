package assimp

/*
#include <stddef.h>
#include <assimp/cimport.h>

extern void goAssimpLog(char* message, char* user);

static void go_attach_log_stream(void) {
	struct aiLogStream stream;
	stream.callback = (aiLogStreamCallback)goAssimpLog;
	stream.user = NULL;
	aiAttachLogStream(&stream);
}

static void go_detach_log_streams(void) {
	aiDetachAllLogStreams();
}
*/
import "C"

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/go-assimp/internal/logger"
)

var (
	logMu       sync.Mutex
	logTarget   *zap.Logger
	logAttached bool
)

// EnableLogging routes the import library's log output through the
// given zap logger, mapping the library's severity prefixes to zap
// levels. A nil logger selects the package default. With verbose set,
// the library also reports per-step debug detail. Attach and detach
// are serialized; the stream stays attached until DisableLogging.
func EnableLogging(l *zap.Logger, verbose bool) {
	logMu.Lock()
	defer logMu.Unlock()

	if l == nil {
		l = logger.Default()
	}
	logTarget = l

	if verbose {
		C.aiEnableVerboseLogging(C.AI_TRUE)
	} else {
		C.aiEnableVerboseLogging(C.AI_FALSE)
	}
	if !logAttached {
		C.go_attach_log_stream()
		logAttached = true
	}
}

// DisableLogging detaches the import library's log stream.
func DisableLogging() {
	logMu.Lock()
	defer logMu.Unlock()

	if logAttached {
		C.go_detach_log_streams()
		logAttached = false
	}
	logTarget = nil
}
