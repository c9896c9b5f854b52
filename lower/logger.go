package lower

import "go.uber.org/zap"

// Logger wraps the lowering trace logger.
type Logger struct {
	*zap.SugaredLogger
}
