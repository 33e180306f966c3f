package assimp

/*
#include <assimp/cimport.h>
*/
import "C"

import "strings"

// goAssimpLog receives one message from the import library's log
// stream. Messages arrive as "Level, Ttid: text".
//
//export goAssimpLog
func goAssimpLog(message *C.char, _ *C.char) {
	logMu.Lock()
	l := logTarget
	logMu.Unlock()
	if l == nil {
		return
	}

	msg := strings.TrimRight(C.GoString(message), "\n")
	switch {
	case strings.HasPrefix(msg, "Debug"):
		l.Debug(msg)
	case strings.HasPrefix(msg, "Info"):
		l.Info(msg)
	case strings.HasPrefix(msg, "Warn"):
		l.Warn(msg)
	case strings.HasPrefix(msg, "Error"):
		l.Error(msg)
	default:
		l.Info(msg)
	}
}
