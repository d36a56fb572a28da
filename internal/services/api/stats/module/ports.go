package module

import (
	"careerpath/internal/services/api/stats/domain"
)

// Ports is what stats offers other modules
type Ports struct {
	Service  domain.ServicePort
	Recorder domain.Recorder
}
