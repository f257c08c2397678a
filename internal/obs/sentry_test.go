package obs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessui/tessui/pkg/runtime"
)

func TestNilReporterIsNoOp(t *testing.T) {
	var r *Reporter
	assert.NotPanics(t, func() {
		r.ReportEffectPanic(runtime.RootIdentity, 0, errors.New("boom"))
		r.ReportFatal(errors.New("fatal"))
		r.Flush()
	})
}

func TestNewReporterWithEmptyDSNDisablesSending(t *testing.T) {
	r, err := NewReporter("")
	assert.NoError(t, err)
	assert.NotPanics(t, func() {
		r.ReportEffectPanic(runtime.RootIdentity, 0, errors.New("boom"))
		r.Flush()
	})
}
