package cli

import (
	"fmt"
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// roleValue is a pflag.Value that accepts only known roles.
type roleValue domain.Role

func (r *roleValue) String() string { return string(*r) }

func (r *roleValue) Set(s string) error {
	s = strings.ToLower(s)
	if !domain.ValidRoles[s] {
		return fmt.Errorf("invalid role %q (agent, client_buyer, client_seller)", s)
	}
	*r = roleValue(s)
	return nil
}

func (r *roleValue) Type() string { return "role" }

// temperatureValue is a pflag.Value that accepts hot, warm, or cold.
type temperatureValue domain.Temperature

func (t *temperatureValue) String() string { return string(*t) }

func (t *temperatureValue) Set(s string) error {
	switch domain.Temperature(strings.ToLower(s)) {
	case domain.TempHot, domain.TempWarm, domain.TempCold:
		*t = temperatureValue(strings.ToLower(s))
		return nil
	}
	return fmt.Errorf("invalid temperature %q (hot, warm, cold)", s)
}

func (t *temperatureValue) Type() string { return "temperature" }

// stageValue is a pflag.Value that accepts the five pipeline stages,
// case-insensitively.
type stageValue domain.Stage

func (s *stageValue) String() string { return string(*s) }

func (s *stageValue) Set(v string) error {
	for _, stage := range domain.PipelineStages {
		if strings.EqualFold(v, string(stage)) {
			*s = stageValue(stage)
			return nil
		}
	}
	return fmt.Errorf("invalid stage %q (New, Contacted, Qualified, Proposal, Won)", v)
}

func (s *stageValue) Type() string { return "stage" }
