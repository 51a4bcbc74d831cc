package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	folderRules = []validation.Rule{validation.Required.Error("folder id is required"), notBlank("folder id is required")}
	idRules     = []validation.Rule{validation.Required.Error("must be a positive id"), validation.Min(int64(1)).Error("must be a positive id")}
	nameRules   = []validation.Rule{validation.Required}
	filterRules = []validation.Rule{validation.Required.Error("filter expression is required"), notBlank("filter expression is required")}
	guidRule    = validation.By(func(value any) error {
		s, _ := value.(string)
		if _, err := uuid.Parse(s); err != nil {
			return errors.New("must be a GUID")
		}
		return nil
	})
	priorityRule = validation.In(PriorityLow, PriorityNormal, PriorityHigh).Error("must be Low, Normal or High")
	strategyRule = validation.In(StopSoft, StopKill).Error("must be 1 (soft stop) or 2 (kill)")
)

// notBlank rejects strings made only of whitespace, which Required lets through.
func notBlank(message string) validation.Rule {
	return validation.By(func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	})
}

// checkArgs returns ErrInvalidArgument wrapping every failed field, or nil.
func checkArgs(fields validation.Errors) error {
	if err := fields.Filter(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}
