// Package authz wraps a casbin enforcer holding the role → resource policy.
package authz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"go.uber.org/zap"
)

// Mode controls whether policy decisions are applied
type Mode string

const (
	ModeEnforce  Mode = "enforce"
	ModeShadow   Mode = "shadow"
	ModeDisabled Mode = "disabled"
)

// ParseMode parses a configured mode; empty means enforce
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return ModeEnforce, nil
	case ModeEnforce, ModeShadow, ModeDisabled:
		return m, nil
	default:
		return "", fmt.Errorf("authz: invalid mode %q (expected enforce|shadow|disabled)", raw)
	}
}

// Actions
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// Authorizer answers whether a role may perform an action on a resource
type Authorizer struct {
	enforcer *casbin.Enforcer
	mode     Mode
	logger   *zap.Logger
}

// NewAuthorizer loads the casbin model and the CSV policy file
func NewAuthorizer(modelPath, policyPath string, mode Mode, logger *zap.Logger) (*Authorizer, error) {
	enforcer, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("authz: load model: %w", err)
	}
	enforcer.SetAdapter(fileadapter.NewAdapter(policyPath))
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("authz: load policy: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authorizer{enforcer: enforcer, mode: mode, logger: logger}, nil
}

// SubjectFromRole maps an employee role to a policy subject
func SubjectFromRole(role string) string {
	role = strings.TrimSpace(strings.ToLower(role))
	if role == "" {
		role = "anonymous"
	}
	return "role:" + role
}

// Mode returns the configured mode
func (a *Authorizer) Mode() Mode {
	return a.mode
}

// Authorize evaluates the policy. In shadow mode a denial is logged and
// reported with enforced=false so callers let the request through.
func (a *Authorizer) Authorize(role, object, action string) (allowed bool, enforced bool, err error) {
	subject := SubjectFromRole(role)
	switch a.mode {
	case ModeDisabled:
		return true, false, nil
	case ModeShadow:
		ok, err := a.enforcer.Enforce(subject, object, action)
		if err != nil {
			return false, false, err
		}
		if !ok {
			a.logger.Warn("authz shadow deny",
				zap.String("subject", subject),
				zap.String("object", object),
				zap.String("action", action))
		}
		return ok, false, nil
	case ModeEnforce:
		ok, err := a.enforcer.Enforce(subject, object, action)
		if err != nil {
			return false, true, err
		}
		return ok, true, nil
	default:
		return false, false, errors.New("authz: unknown mode")
	}
}

// Allowed is Authorize collapsed to a single decision
func (a *Authorizer) Allowed(role, object, action string) bool {
	ok, enforced, err := a.Authorize(role, object, action)
	if err != nil {
		return false
	}
	return ok || !enforced
}
