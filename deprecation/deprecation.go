// Package deprecation defines how deprecation warnings are reported.
//
// It covers the emitter only. Wrapping functions or properties so that they warn
// on use is left to callers.
package deprecation

import (
	"fmt"
	"runtime"

	"github.com/on-the-ground/lazy_ive_go/log"
	"go.uber.org/zap"
)

// Warning describes a deprecated feature.
type Warning struct {
	Description string
	// Deprecation is the version that first deprecates the feature. When set, the
	// warning is pending: the feature still works but is scheduled for deprecation.
	Deprecation string
	Removal     string
	Alternative string
	// StackDepth is how many frames above the caller of Warn to report as the call site.
	StackDepth int
}

// Pending reports whether w announces a future deprecation rather than a current one.
func (w Warning) Pending() bool {
	return w.Deprecation != ""
}

func (w Warning) String() string {
	if w.Pending() {
		return fmt.Sprintf("%s is scheduled for deprecation in version %s and removal in version v%s. %s",
			w.Description, w.Deprecation, w.Removal, w.Alternative)
	}
	return fmt.Sprintf("%s is deprecated and scheduled for removal in version %s. %s",
		w.Description, w.Removal, w.Alternative)
}

type Emitter interface {
	Warn(w Warning)
}

// ZapEmitter logs pending deprecations at info level and active ones at warn level.
type ZapEmitter struct {
	logger *zap.Logger
}

var _ Emitter = (*ZapEmitter)(nil)

func NewZapEmitter(logger *zap.Logger) *ZapEmitter {
	return &ZapEmitter{logger: log.OrNop(logger)}
}

func (e *ZapEmitter) Warn(w Warning) {
	fields := map[string]interface{}{
		"description": w.Description,
		"removal":     w.Removal,
	}
	if w.Deprecation != "" {
		fields["deprecation"] = w.Deprecation
	}
	if w.Alternative != "" {
		fields["alternative"] = w.Alternative
	}
	if _, file, line, ok := runtime.Caller(w.StackDepth + 1); ok {
		fields["caller"] = fmt.Sprintf("%s:%d", file, line)
	}

	if w.Pending() {
		log.Emit(e.logger, log.LogInfo, "pending deprecation: "+w.String(), fields)
		return
	}
	log.Emit(e.logger, log.LogWarn, "deprecated: "+w.String(), fields)
}
