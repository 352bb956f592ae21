package seq

import (
	"github.com/kbukum/gomonad/logger"
)

const component = "seq"

// fuseNoop is implemented by iterators for which Fuse adds nothing.
type fuseNoop interface {
	fuseDiagnostic() (adapter, msg string)
}

// skipNoop is implemented by iterators for which Skip is pointless.
type skipNoop interface {
	skipDiagnostic() (adapter, msg string)
}

func diagnoseFuse(it any) {
	if d, ok := it.(fuseNoop); ok {
		adapter, msg := d.fuseDiagnostic()
		logger.Get(component).Warn(msg, logger.AdapterFields(adapter, "Fuse"))
	}
}

func diagnoseSkip(it any) {
	if d, ok := it.(skipNoop); ok {
		adapter, msg := d.skipDiagnostic()
		logger.Get(component).Warn(msg, logger.AdapterFields(adapter, "Skip"))
	}
}
