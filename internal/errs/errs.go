// Package errs defines the sentinel errors the run loop distinguishes
// between fatal and absorbed failures (spec §7), following the teacher's
// plain-error-plus-%w-wrapping convention rather than a third-party
// errors package.
package errs

import "errors"

// ErrTerminalIO marks a failure from the terminal backend (write, read,
// resize query). Per spec §7 this is the only error kind that escapes
// App.Run; everything else is absorbed.
var ErrTerminalIO = errors.New("app: terminal I/O failure")

// ErrEffectPanic marks a recovered panic inside a running effect. It
// never propagates out of Run — it is only ever passed to the
// OnEffectPanic hook / internal/obs reporter for logging.
var ErrEffectPanic = errors.New("app: effect panic")
